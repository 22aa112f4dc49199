package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderFunc paints scene content onto dst as seen through t.
type RenderFunc func(dst *ebiten.Image, t Transform)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Placeholder world-space square drawn when no scene is supplied.
var (
	PlaceholderRect  = Rect{X: 100, Y: 100, Width: 200, Height: 200}
	PlaceholderColor = color.RGBA{0, 0, 255, 255}
)

// ProjectRect maps a world-space rectangle to screen space.
func ProjectRect(r Rect, t Transform) Rect {
	p := t.WorldToScreen(Point{r.X, r.Y})
	return Rect{X: p.X, Y: p.Y, Width: r.Width * t.Scale, Height: r.Height * t.Scale}
}

// Placeholder returns a RenderFunc that clears dst to bg, optionally draws
// the grid, then draws the placeholder square.
func Placeholder(bg color.Color, grid *GridStyle) RenderFunc {
	return func(dst *ebiten.Image, t Transform) {
		dst.Fill(bg)
		if grid != nil {
			DrawBackgroundGrid(dst, t, *grid)
		}
		r := ProjectRect(PlaceholderRect, t)
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), PlaceholderColor, false)
	}
}
