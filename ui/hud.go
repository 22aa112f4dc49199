package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"infinite-canvas/canvas"
	"infinite-canvas/input"
)

// DrawTextFunc draws s with its top-left corner at (x, y).
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// HUD is the debug overlay in the top-left corner.
type HUD struct {
	Face     font.Face
	DrawText DrawTextFunc
	Color    color.Color
	Visible  bool
}

// StatusLines describes the transform and gesture state, one fact per line.
func StatusLines(t canvas.Transform, g *input.GestureState) []string {
	pan := "idle"
	if g.Pan() == input.PanDragging {
		pan = "dragging"
	}
	pinch := "idle"
	if g.Pinch() == input.PinchActive {
		p := g.PinchPivot()
		pinch = fmt.Sprintf("active pivot (%.1f, %.1f)", p.X, p.Y)
	}
	return []string{
		fmt.Sprintf("Offset: (%.1f, %.1f)  Scale: %.3f", t.Offset.X, t.Offset.Y, t.Scale),
		"Modifiers: " + modifierNames(g),
		"Pan: " + pan,
		"Pinch: " + pinch,
		"Space+Drag: pan  Wheel/Pinch: zoom",
	}
}

func modifierNames(g *input.GestureState) string {
	var names []string
	if g.SpaceHeld() {
		names = append(names, "Space")
	}
	if g.ShiftHeld() {
		names = append(names, "Shift")
	}
	if g.ControlHeld() {
		names = append(names, "Control")
	}
	if g.AltHeld() {
		names = append(names, "Alt")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// Draw renders the overlay. It is a no-op when hidden or unconfigured.
func (h *HUD) Draw(screen *ebiten.Image, t canvas.Transform, g *input.GestureState) {
	if h == nil || !h.Visible || h.DrawText == nil || h.Face == nil {
		return
	}
	lines := StatusLines(t, g)

	lineHeight := h.Face.Metrics().Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
	}
	bg := color.RGBA{40, 40, 40, 200}
	vector.DrawFilledRect(screen, 6, 6, 320, float32(len(lines)*lineHeight+8), bg, false)

	clr := h.Color
	if clr == nil {
		clr = color.White
	}
	h.DrawText(screen, h.Face, strings.Join(lines, "\n"), 10, 10, clr)
}
