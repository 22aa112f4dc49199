package canvas

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func approxPoint(a, b Point) bool {
	return approxEqual(a.X, b.X, 1e-6) && approxEqual(a.Y, b.Y, 1e-6)
}

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()
	if tr.Scale != 1 || tr.Offset != (Point{}) {
		t.Errorf("NewTransform() = %+v, want offset (0,0) scale 1", *tr)
	}
	p := Point{X: 12, Y: -7}
	if got := tr.ScreenToWorld(p); got != p {
		t.Errorf("ScreenToWorld(%v) = %v, want identity", p, got)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	offsets := []Point{{0, 0}, {120, -45}, {-3000.5, 0.25}}
	scales := []float64{1, 0.1, 2.5, 37}
	screens := []Point{{0, 0}, {100, 100}, {-250, 640}, {1e5, -1e5}}

	for _, off := range offsets {
		for _, s := range scales {
			for _, q := range screens {
				got := WorldToScreen(ScreenToWorld(q, off, s), off, s)
				if !approxPoint(got, q) {
					t.Errorf("round trip of %v at offset %v scale %v = %v", q, off, s, got)
				}
			}
		}
	}
}

func TestApplyPan(t *testing.T) {
	tr := NewTransform()
	tr.ApplyPan(Point{X: 10, Y: -5})
	tr.ApplyPan(Point{X: 2, Y: 2})
	if tr.Offset != (Point{X: 12, Y: -3}) {
		t.Errorf("Offset = %v, want (12,-3)", tr.Offset)
	}
	if tr.Scale != 1 {
		t.Errorf("Scale = %f, want 1", tr.Scale)
	}
}

func TestZoomAroundPivotKeepsPivotOnScreen(t *testing.T) {
	tests := []struct {
		name   string
		offset Point
		s0, s1 float64
		pivot  Point
	}{
		{"zoom in at origin", Point{}, 1, 2, Point{}},
		{"zoom in off-center", Point{40, -20}, 1, 1.1, Point{300, 300}},
		{"zoom out", Point{-150, -150}, 1.5, 1, Point{300, 300}},
		{"tiny scale", Point{5, 5}, 0.01, 0.009, Point{-1e4, 2e4}},
		{"large scale", Point{-9e3, 1e3}, 50, 80, Point{17.5, -3.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Transform{Offset: tt.offset, Scale: tt.s0}
			before := tr.WorldToScreen(tt.pivot)
			if !tr.ApplyZoomAroundPivot(tt.pivot, tt.s1) {
				t.Fatal("ApplyZoomAroundPivot returned false")
			}
			after := tr.WorldToScreen(tt.pivot)
			if !approxPoint(before, after) {
				t.Errorf("pivot moved on screen: %v -> %v", before, after)
			}
			if tr.Scale != tt.s1 {
				t.Errorf("Scale = %f, want %f", tr.Scale, tt.s1)
			}
		})
	}
}

func TestZoomAroundPivotWheelExample(t *testing.T) {
	tr := NewTransform()
	tr.ApplyZoomAroundPivot(Point{200, 200}, 1.1)
	if !approxPoint(tr.Offset, Point{-20, -20}) {
		t.Errorf("Offset = %v, want (-20,-20)", tr.Offset)
	}
}

func TestZoomAroundPivotRejectsInvalidScale(t *testing.T) {
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		tr := &Transform{Offset: Point{3, 4}, Scale: 2}
		if tr.ApplyZoomAroundPivot(Point{10, 10}, s) {
			t.Errorf("ApplyZoomAroundPivot(_, %v) = true, want false", s)
		}
		if tr.Scale != 2 || tr.Offset != (Point{3, 4}) {
			t.Errorf("transform mutated by scale %v: %+v", s, *tr)
		}
	}
}

func TestZoomLimitsClampAndKeepPivot(t *testing.T) {
	tr := &Transform{Scale: 1, Limits: Limits{MinScale: 0.5, MaxScale: 4}}
	pivot := Point{120, 80}
	before := tr.WorldToScreen(pivot)

	tr.ApplyZoomAroundPivot(pivot, 10)
	if tr.Scale != 4 {
		t.Errorf("Scale = %f, want clamped to 4", tr.Scale)
	}
	if !approxPoint(before, tr.WorldToScreen(pivot)) {
		t.Error("pivot moved while clamping to MaxScale")
	}

	tr.ApplyZoomAroundPivot(pivot, 0.01)
	if tr.Scale != 0.5 {
		t.Errorf("Scale = %f, want clamped to 0.5", tr.Scale)
	}
	if !approxPoint(before, tr.WorldToScreen(pivot)) {
		t.Error("pivot moved while clamping to MinScale")
	}
}

func TestRepeatedZoomOutStaysPositive(t *testing.T) {
	tr := NewTransform()
	for i := 0; i < 2000; i++ {
		tr.ApplyZoomAroundPivot(Point{1, 1}, tr.Scale*0.9)
	}
	if tr.Scale <= 0 {
		t.Errorf("Scale = %g after repeated zoom out, want > 0", tr.Scale)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	tr := NewTransform()
	snap := tr.Snapshot()
	tr.ApplyPan(Point{1, 1})
	if snap.Offset != (Point{}) {
		t.Errorf("snapshot changed to %v", snap.Offset)
	}
}
