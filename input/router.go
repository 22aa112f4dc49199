package input

import (
	"math"

	"infinite-canvas/canvas"
)

// DefaultZoomIntensity is the fractional scale change of one wheel tick.
const DefaultZoomIntensity = 0.1

// Host is the drawing surface the router drives.
type Host interface {
	SetSize(width, height int)
	RequestRedraw()
}

// Options tunes a Router. Zero values select the defaults.
type Options struct {
	ZoomIntensity float64
	Observer      Observer
}

// Router turns raw input events into Transform mutations. It owns the
// transform and the gesture state; all calls must come from one goroutine.
type Router struct {
	host      Host
	transform *canvas.Transform
	gestures  GestureState
	intensity float64
	observer  Observer
}

// NewRouter returns a Router mutating t and redrawing through h.
func NewRouter(h Host, t *canvas.Transform, opts Options) *Router {
	r := &Router{
		host:      h,
		transform: t,
		intensity: opts.ZoomIntensity,
		observer:  opts.Observer,
	}
	if r.intensity <= 0 {
		r.intensity = DefaultZoomIntensity
	}
	if r.observer == nil {
		r.observer = NopObserver{}
	}
	return r
}

// Transform returns the live transform.
func (r *Router) Transform() *canvas.Transform { return r.transform }

// Gestures returns the live gesture state.
func (r *Router) Gestures() *GestureState { return &r.gestures }

// Handle applies ev. The result reports whether the host should suppress
// its native default for the event (context menu, page scroll).
func (r *Router) Handle(ev Event) bool {
	switch e := ev.(type) {
	case KeyEvent:
		r.handleKey(e)
	case PointerEvent:
		r.handlePointer(e)
		return e.Button == ButtonSecondary
	case WheelEvent:
		r.handleWheel(e)
		return true
	case TouchMoveEvent:
		r.handleTouchMove(e)
	case TouchEndEvent:
		r.handleTouchEnd()
	case ResizeEvent:
		r.host.SetSize(e.Width, e.Height)
		r.host.RequestRedraw()
	}
	return false
}

func (r *Router) handleKey(e KeyEvent) {
	if e.Key == KeyOther {
		return
	}
	down := e.Phase == PhaseDown
	r.gestures.setModifier(e.Key, down)
	if e.Key == KeySpace && !down && r.gestures.pan.state == PanDragging {
		r.endDrag()
	}
}

func (r *Router) handlePointer(e PointerEvent) {
	p := canvas.Point{X: e.X, Y: e.Y}
	switch e.Phase {
	case PhaseDown:
		if r.gestures.SpaceHeld() {
			r.gestures.startDrag(p, r.transform.Offset)
			r.observer.GestureStarted(GesturePan, *r.transform)
		}
	case PhaseMove:
		if r.gestures.pan.state != PanDragging {
			return
		}
		r.transform.SetOffset(p.Sub(r.gestures.pan.anchor))
		r.changed("pan")
	case PhaseUp:
		if r.gestures.pan.state == PanDragging {
			r.endDrag()
		}
	}
}

func (r *Router) endDrag() {
	r.gestures.endDrag()
	r.observer.GestureEnded(GesturePan, *r.transform)
}

func (r *Router) handleWheel(e WheelEvent) {
	if e.DeltaY == 0 {
		return
	}
	cursor := canvas.Point{X: e.X, Y: e.Y}
	if !cursor.Finite() {
		return
	}
	pivot := r.transform.ScreenToWorld(cursor)
	factor := 1 + r.intensity
	if e.DeltaY > 0 {
		factor = 1 - r.intensity
	}
	r.zoom(pivot, r.transform.Scale*factor, "wheel")
}

func (r *Router) handleTouchMove(e TouchMoveEvent) {
	if len(e.Touches) < 2 {
		r.endPinch()
		return
	}
	if len(e.Touches) != 2 {
		return
	}
	t1, t2 := e.Touches[0], e.Touches[1]
	if !t1.Finite() || !t2.Finite() {
		return
	}
	dist := math.Hypot(t2.X-t1.X, t2.Y-t1.Y)

	if r.gestures.pinch.state != PinchActive {
		mid := canvas.Point{X: (t1.X + t2.X) / 2, Y: (t1.Y + t2.Y) / 2}
		r.gestures.startPinch(r.transform.ScreenToWorld(mid), dist)
		r.observer.GestureStarted(GesturePinch, *r.transform)
		return
	}

	prev := r.gestures.pinch.prevDist
	r.gestures.pinch.prevDist = dist
	if prev <= 0 || dist <= 0 {
		return
	}
	r.zoom(r.gestures.pinch.pivot, r.transform.Scale*(dist/prev), "pinch")
}

func (r *Router) handleTouchEnd() {
	r.endPinch()
}

func (r *Router) endPinch() {
	if r.gestures.pinch.state != PinchActive {
		return
	}
	r.gestures.endPinch()
	r.observer.GestureEnded(GesturePinch, *r.transform)
}

// zoom is the only path that changes scale.
func (r *Router) zoom(pivot canvas.Point, newScale float64, cause string) {
	if !r.transform.ApplyZoomAroundPivot(pivot, newScale) {
		return
	}
	r.changed(cause)
}

func (r *Router) changed(cause string) {
	r.observer.TransformChanged(cause, *r.transform)
	r.host.RequestRedraw()
}
