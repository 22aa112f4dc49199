package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridStyle configures DrawBackgroundGrid.
type GridStyle struct {
	Spacing     float64 // world units between lines
	Line        color.Color
	OriginCross color.Color
}

// gridLines returns the screen positions of the vertical and horizontal grid
// lines visible in a width x height surface.
func gridLines(t Transform, width, height int, spacing float64) (xs, ys []float64) {
	if spacing <= 0 || t.Scale <= 0 {
		return nil, nil
	}
	// Skip the grid when lines would be closer than 4px.
	if spacing*t.Scale < 4 {
		return nil, nil
	}
	topLeft := t.ScreenToWorld(Point{0, 0})
	bottomRight := t.ScreenToWorld(Point{float64(width), float64(height)})

	for wx := math.Floor(topLeft.X/spacing) * spacing; wx <= bottomRight.X; wx += spacing {
		xs = append(xs, t.WorldToScreen(Point{wx, 0}).X)
	}
	for wy := math.Floor(topLeft.Y/spacing) * spacing; wy <= bottomRight.Y; wy += spacing {
		ys = append(ys, t.WorldToScreen(Point{0, wy}).Y)
	}
	return xs, ys
}

// DrawBackgroundGrid renders the infinite coordinate grid for the given transform.
func DrawBackgroundGrid(screen *ebiten.Image, t Transform, style GridStyle) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	xs, ys := gridLines(t, w, h, style.Spacing)

	for _, sx := range xs {
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(h), 1, style.Line, false)
	}
	for _, sy := range ys {
		vector.StrokeLine(screen, 0, float32(sy), float32(w), float32(sy), 1, style.Line, false)
	}

	origin := t.WorldToScreen(Point{0, 0})
	ox, oy := float32(origin.X), float32(origin.Y)
	vector.StrokeLine(screen, ox-15, oy, ox+15, oy, 2, style.OriginCross, false)
	vector.StrokeLine(screen, ox, oy-15, ox, oy+15, 2, style.OriginCross, false)
}
