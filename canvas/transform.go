package canvas

import "math"

// Point is an (x, y) pair in either screen or world space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Finite reports whether both coordinates are real numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Limits bounds the scale a Transform may reach. A zero field is unbounded.
type Limits struct {
	MinScale float64
	MaxScale float64
}

// clamp returns s restricted to the limits.
func (l Limits) clamp(s float64) float64 {
	if l.MinScale > 0 && s < l.MinScale {
		s = l.MinScale
	}
	if l.MaxScale > 0 && s > l.MaxScale {
		s = l.MaxScale
	}
	return s
}

// Transform maps the infinite world plane onto the screen:
// screen = world*Scale + Offset.
type Transform struct {
	Offset Point   // screen-space translation
	Scale  float64 // uniform zoom, always > 0
	Limits Limits
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	return &Transform{Scale: 1}
}

// ScreenToWorld converts a screen point to world space.
func ScreenToWorld(screen, offset Point, scale float64) Point {
	return Point{(screen.X - offset.X) / scale, (screen.Y - offset.Y) / scale}
}

// WorldToScreen converts a world point to screen space.
func WorldToScreen(world, offset Point, scale float64) Point {
	return Point{world.X*scale + offset.X, world.Y*scale + offset.Y}
}

// ScreenToWorld converts a screen point using the current transform.
func (t *Transform) ScreenToWorld(p Point) Point {
	return ScreenToWorld(p, t.Offset, t.Scale)
}

// WorldToScreen converts a world point using the current transform.
func (t *Transform) WorldToScreen(p Point) Point {
	return WorldToScreen(p, t.Offset, t.Scale)
}

// ApplyPan translates the view by delta screen pixels.
func (t *Transform) ApplyPan(delta Point) {
	t.Offset = t.Offset.Add(delta)
}

// SetOffset places the view at an absolute screen offset.
func (t *Transform) SetOffset(offset Point) {
	t.Offset = offset
}

// ApplyZoomAroundPivot changes the scale while keeping pivot (world space)
// at the same screen position. It reports false and leaves the transform
// alone when newScale is not a positive finite number.
func (t *Transform) ApplyZoomAroundPivot(pivot Point, newScale float64) bool {
	if math.IsNaN(newScale) || math.IsInf(newScale, 0) || newScale <= 0 {
		return false
	}
	newScale = t.Limits.clamp(newScale)
	old := t.Scale
	t.Offset = t.Offset.Sub(pivot.Mul(newScale - old))
	t.Scale = newScale
	return true
}

// Snapshot returns a copy detached from later mutations.
func (t *Transform) Snapshot() Transform {
	return *t
}
