package input

import "infinite-canvas/canvas"

// Key identifies a keyboard key the router cares about.
type Key uint8

const (
	KeyOther Key = iota
	KeySpace
	KeyShift
	KeyControl
	KeyAlt
)

var keyNames = map[string]Key{
	"Space":   KeySpace,
	" ":       KeySpace,
	"Shift":   KeyShift,
	"Control": KeyControl,
	"Alt":     KeyAlt,
}

// ParseKey maps a key name ("Space", "Shift", "Control", "Alt") to a Key.
// Unknown names map to KeyOther.
func ParseKey(name string) Key {
	if k, ok := keyNames[name]; ok {
		return k
	}
	return KeyOther
}

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyShift:
		return "Shift"
	case KeyControl:
		return "Control"
	case KeyAlt:
		return "Alt"
	}
	return "Other"
}

// Phase is the stage of a key or pointer interaction.
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	}
	return "unknown"
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	}
	return "unknown"
}

// Event is one of KeyEvent, PointerEvent, WheelEvent, TouchMoveEvent,
// TouchEndEvent or ResizeEvent.
type Event interface {
	isEvent()
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key   Key
	Phase Phase // PhaseDown or PhaseUp
}

// PointerEvent is a mouse press, move or release in screen coordinates.
type PointerEvent struct {
	X, Y   float64
	Button Button
	Phase  Phase
}

// WheelEvent is a single wheel tick at the cursor. DeltaY < 0 scrolls up.
type WheelEvent struct {
	X, Y   float64
	DeltaY float64
}

// TouchMoveEvent carries every touch point currently on the surface.
type TouchMoveEvent struct {
	Touches []canvas.Point
}

// TouchEndEvent fires when a finger lifts.
type TouchEndEvent struct {
	Remaining int
}

// ResizeEvent reports a new surface size in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (KeyEvent) isEvent()       {}
func (PointerEvent) isEvent()   {}
func (WheelEvent) isEvent()     {}
func (TouchMoveEvent) isEvent() {}
func (TouchEndEvent) isEvent()  {}
func (ResizeEvent) isEvent()    {}
