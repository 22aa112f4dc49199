package script

import (
	"math"
	"strings"
	"testing"

	"infinite-canvas/canvas"
	"infinite-canvas/input"
)

type nullHost struct{ redraws int }

func (*nullHost) SetSize(int, int) {}
func (h *nullHost) RequestRedraw() { h.redraws++ }

func TestExecuteEmitsEventsInOrder(t *testing.T) {
	src := `
key("Space", "down")
pointer(100, 100, "down")
pointer(150.5, 130, "move", button="middle")
wheel(200, 200, -1)
touch([(250, 300), (350, 300)])
touch_end()
resize(800, 600)
`
	events, err := Execute("order.star", src)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []input.Event{
		input.KeyEvent{Key: input.KeySpace, Phase: input.PhaseDown},
		input.PointerEvent{X: 100, Y: 100, Phase: input.PhaseDown},
		input.PointerEvent{X: 150.5, Y: 130, Button: input.ButtonMiddle, Phase: input.PhaseMove},
		input.WheelEvent{X: 200, Y: 200, DeltaY: -1},
		nil, // touch, compared below
		input.TouchEndEvent{},
		input.ResizeEvent{Width: 800, Height: 600},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, w := range want {
		if w == nil {
			continue
		}
		if events[i] != w {
			t.Errorf("event %d = %#v, want %#v", i, events[i], w)
		}
	}
	tm, ok := events[4].(input.TouchMoveEvent)
	if !ok || len(tm.Touches) != 2 || tm.Touches[1] != (canvas.Point{X: 350, Y: 300}) {
		t.Errorf("event 4 = %#v, want two touches", events[4])
	}
}

func TestExecuteLoops(t *testing.T) {
	src := `
for d in [100, 110, 120]:
    touch([(300 - d / 2, 300), (300 + d / 2, 300)])
`
	events, err := Execute("loop.star", src)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("got %d events, want 3", len(events))
	}
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad phase", `key("Space", "move")`, "phase"},
		{"bad button", `pointer(1, 2, "down", button="fourth")`, "unknown button"},
		{"bad coordinate", `wheel("a", 2, 1)`, "x must be a number"},
		{"bad touch point", `touch([(1, 2, 3)])`, "(x, y) tuple"},
		{"negative size", `resize(-1, 10)`, "negative size"},
		{"syntax", `pointer(`, "order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute("bad.star", tt.src)
			if err == nil {
				t.Fatal("Execute succeeded, want error")
			}
			if tt.name != "syntax" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestReplayPinchScript(t *testing.T) {
	src := `
touch([(250, 300), (350, 300)])
touch([(225, 300), (375, 300)])
touch([(250, 300), (350, 300)])
touch_end()
`
	events, err := Execute("pinch.star", src)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	h := &nullHost{}
	r := input.NewRouter(h, canvas.NewTransform(), input.Options{})
	steps := Replay(r, events)

	if len(steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(steps))
	}
	if s := steps[1].Transform.Scale; math.Abs(s-1.5) > 1e-9 {
		t.Errorf("scale after second frame = %f, want 1.5", s)
	}
	if s := steps[2].Transform.Scale; math.Abs(s-1) > 1e-9 {
		t.Errorf("scale after third frame = %f, want 1", s)
	}
	if h.redraws != 2 {
		t.Errorf("redraws = %d, want 2", h.redraws)
	}
}

func TestFingerprint(t *testing.T) {
	a := canvas.Transform{Offset: canvas.Point{X: 1, Y: 2}, Scale: 1.5}
	b := a
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("equal transforms have different fingerprints")
	}
	b.Scale = 1.6
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("different transforms share a fingerprint")
	}
}
