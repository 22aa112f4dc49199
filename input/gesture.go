package input

import "infinite-canvas/canvas"

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModSpace Modifiers = 1 << iota
	ModShift
	ModControl
	ModAlt
)

// Has reports whether every bit in m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

func modifierFor(k Key) Modifiers {
	switch k {
	case KeySpace:
		return ModSpace
	case KeyShift:
		return ModShift
	case KeyControl:
		return ModControl
	case KeyAlt:
		return ModAlt
	}
	return 0
}

// PanState is Idle or Dragging.
type PanState uint8

const (
	PanIdle PanState = iota
	PanDragging
)

// PinchState is Idle or Active.
type PinchState uint8

const (
	PinchIdle PinchState = iota
	PinchActive
)

// panGesture holds the drag anchor: the pointer position minus the offset
// captured when the drag began.
type panGesture struct {
	state  PanState
	anchor canvas.Point
}

// pinchGesture holds the finger separation of the previous frame and the
// world-space pivot fixed for the whole gesture.
type pinchGesture struct {
	state    PinchState
	prevDist float64
	pivot    canvas.Point
}

// GestureState is the transient interaction state between events. It never
// stores offset or scale itself.
type GestureState struct {
	modifiers Modifiers
	pan       panGesture
	pinch     pinchGesture
}

// Modifiers returns the currently held modifier keys.
func (g *GestureState) Modifiers() Modifiers { return g.modifiers }

// SpaceHeld reports whether panning is enabled.
func (g *GestureState) SpaceHeld() bool { return g.modifiers.Has(ModSpace) }

// ShiftHeld reports whether Shift is down.
func (g *GestureState) ShiftHeld() bool { return g.modifiers.Has(ModShift) }

// ControlHeld reports whether Control is down.
func (g *GestureState) ControlHeld() bool { return g.modifiers.Has(ModControl) }

// AltHeld reports whether Alt is down.
func (g *GestureState) AltHeld() bool { return g.modifiers.Has(ModAlt) }

// Pan returns the pan state.
func (g *GestureState) Pan() PanState { return g.pan.state }

// Anchor returns the drag anchor; meaningful only while dragging.
func (g *GestureState) Anchor() canvas.Point { return g.pan.anchor }

// Pinch returns the pinch state.
func (g *GestureState) Pinch() PinchState { return g.pinch.state }

// PinchPivot returns the world-space pivot of the active pinch.
func (g *GestureState) PinchPivot() canvas.Point { return g.pinch.pivot }

// PreviousDistance returns the finger distance of the last pinch frame.
func (g *GestureState) PreviousDistance() float64 { return g.pinch.prevDist }

func (g *GestureState) setModifier(k Key, down bool) {
	m := modifierFor(k)
	if down {
		g.modifiers |= m
	} else {
		g.modifiers &^= m
	}
}

func (g *GestureState) startDrag(pointer, offset canvas.Point) {
	g.pan = panGesture{state: PanDragging, anchor: pointer.Sub(offset)}
}

func (g *GestureState) endDrag() {
	g.pan = panGesture{}
}

func (g *GestureState) startPinch(pivot canvas.Point, dist float64) {
	g.pinch = pinchGesture{state: PinchActive, prevDist: dist, pivot: pivot}
}

func (g *GestureState) endPinch() {
	g.pinch = pinchGesture{}
}
