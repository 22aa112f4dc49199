package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"infinite-canvas/canvas"
)

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	btn Button
}{
	{ebiten.MouseButtonLeft, ButtonPrimary},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
	{ebiten.MouseButtonRight, ButtonSecondary},
}

// modifierKeys lists the physical keys folded into each modifier.
var modifierKeys = [...]struct {
	key  Key
	keys []ebiten.Key
}{
	{KeyShift, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{KeyControl, []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight}},
	{KeyAlt, []ebiten.Key{ebiten.KeyAltLeft, ebiten.KeyAltRight}},
}

// Poller samples Ebitengine's input state once per tick and converts the
// differences since the previous tick into Events.
type Poller struct {
	events []Event

	modsDown  [len(modifierKeys)]bool
	cursor    canvas.Point
	hasCursor bool

	touchIDs   []ebiten.TouchID
	touches    []canvas.Point
	prevTouch  []canvas.Point
	touchCount int
}

// NewPoller returns a Poller with no prior input state.
func NewPoller() *Poller {
	return &Poller{}
}

// Poll returns the events for the current tick. The slice is reused on the
// next call.
func (p *Poller) Poll() []Event {
	p.events = p.events[:0]
	p.pollKeys()
	p.pollMouse()
	p.pollWheel()
	p.pollTouches()
	return p.events
}

func (p *Poller) pollKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.events = append(p.events, KeyEvent{Key: KeySpace, Phase: PhaseDown})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		p.events = append(p.events, KeyEvent{Key: KeySpace, Phase: PhaseUp})
	}
	for i, mk := range modifierKeys {
		down := false
		for _, k := range mk.keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		if down == p.modsDown[i] {
			continue
		}
		p.modsDown[i] = down
		phase := PhaseUp
		if down {
			phase = PhaseDown
		}
		p.events = append(p.events, KeyEvent{Key: mk.key, Phase: phase})
	}
}

func (p *Poller) pollMouse() {
	mx, my := ebiten.CursorPosition()
	pos := canvas.Point{X: float64(mx), Y: float64(my)}

	if p.hasCursor && pos != p.cursor {
		p.events = append(p.events, PointerEvent{X: pos.X, Y: pos.Y, Phase: PhaseMove})
	}
	p.cursor = pos
	p.hasCursor = true

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			p.events = append(p.events, PointerEvent{X: pos.X, Y: pos.Y, Button: mb.btn, Phase: PhaseDown})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			p.events = append(p.events, PointerEvent{X: pos.X, Y: pos.Y, Button: mb.btn, Phase: PhaseUp})
		}
	}
}

func (p *Poller) pollWheel() {
	// Ebitengine reports scrolling up as positive; events use the browser
	// convention where up is negative.
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	p.events = append(p.events, WheelEvent{X: p.cursor.X, Y: p.cursor.Y, DeltaY: -dy})
}

func (p *Poller) pollTouches() {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	slices.Sort(p.touchIDs)

	p.prevTouch = append(p.prevTouch[:0], p.touches...)
	p.touches = p.touches[:0]
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		p.touches = append(p.touches, canvas.Point{X: float64(x), Y: float64(y)})
	}

	prevCount := p.touchCount
	p.touchCount = len(p.touches)

	switch {
	case p.touchCount >= 2:
		if prevCount == p.touchCount && slices.Equal(p.prevTouch, p.touches) {
			return
		}
		p.events = append(p.events, TouchMoveEvent{Touches: slices.Clone(p.touches)})
	case prevCount >= 2:
		p.events = append(p.events, TouchEndEvent{Remaining: p.touchCount})
	}
}
