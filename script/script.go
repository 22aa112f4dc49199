// Package script builds input event sequences from Starlark programs so
// gestures can be replayed without a window.
//
// A script calls one builtin per event:
//
//	key("Space", "down")
//	pointer(100, 100, "down")
//	pointer(150, 130, "move")
//	wheel(200, 200, -1)
//	touch([(250, 300), (350, 300)])
//	touch_end()
//	resize(800, 600)
package script

import (
	"fmt"

	"go.starlark.net/starlark"

	"infinite-canvas/canvas"
	"infinite-canvas/input"
)

// recorder collects the events emitted by the builtins of one run.
type recorder struct {
	events []input.Event
}

// Execute runs src and returns the events it emitted, in call order.
func Execute(filename string, src any) ([]input.Event, error) {
	rec := &recorder{}
	thread := &starlark.Thread{Name: filename, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}

	if _, err := starlark.ExecFile(thread, filename, src, rec.builtins()); err != nil {
		return nil, fmt.Errorf("script %s: %w", filename, err)
	}
	return rec.events, nil
}

func (r *recorder) builtins() starlark.StringDict {
	return starlark.StringDict{
		"key":       starlark.NewBuiltin("key", r.key),
		"pointer":   starlark.NewBuiltin("pointer", r.pointer),
		"wheel":     starlark.NewBuiltin("wheel", r.wheel),
		"touch":     starlark.NewBuiltin("touch", r.touch),
		"touch_end": starlark.NewBuiltin("touch_end", r.touchEnd),
		"resize":    starlark.NewBuiltin("resize", r.resize),
	}
}

func (r *recorder) key(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name, phase string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "phase", &phase); err != nil {
		return nil, err
	}
	p, err := parsePhase(phase)
	if err != nil || p == input.PhaseMove {
		return nil, fmt.Errorf("%s: phase must be \"down\" or \"up\", got %q", b.Name(), phase)
	}
	r.events = append(r.events, input.KeyEvent{Key: input.ParseKey(name), Phase: p})
	return starlark.None, nil
}

func (r *recorder) pointer(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y starlark.Value
	var phase string
	button := "primary"
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "phase", &phase, "button?", &button); err != nil {
		return nil, err
	}
	pt, err := toPoint(b.Name(), x, y)
	if err != nil {
		return nil, err
	}
	p, err := parsePhase(phase)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	btn, err := parseButton(button)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	r.events = append(r.events, input.PointerEvent{X: pt.X, Y: pt.Y, Button: btn, Phase: p})
	return starlark.None, nil
}

func (r *recorder) wheel(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y, dy starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y, "dy", &dy); err != nil {
		return nil, err
	}
	pt, err := toPoint(b.Name(), x, y)
	if err != nil {
		return nil, err
	}
	d, ok := starlark.AsFloat(dy)
	if !ok {
		return nil, fmt.Errorf("%s: dy must be a number, got %s", b.Name(), dy.Type())
	}
	r.events = append(r.events, input.WheelEvent{X: pt.X, Y: pt.Y, DeltaY: d})
	return starlark.None, nil
}

func (r *recorder) touch(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var points *starlark.List
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "points", &points); err != nil {
		return nil, err
	}
	ev := input.TouchMoveEvent{Touches: make([]canvas.Point, 0, points.Len())}
	for i := 0; i < points.Len(); i++ {
		tup, ok := points.Index(i).(starlark.Tuple)
		if !ok || len(tup) != 2 {
			return nil, fmt.Errorf("%s: point %d must be an (x, y) tuple", b.Name(), i)
		}
		pt, err := toPoint(b.Name(), tup[0], tup[1])
		if err != nil {
			return nil, err
		}
		ev.Touches = append(ev.Touches, pt)
	}
	r.events = append(r.events, ev)
	return starlark.None, nil
}

func (r *recorder) touchEnd(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	remaining := 0
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "remaining?", &remaining); err != nil {
		return nil, err
	}
	r.events = append(r.events, input.TouchEndEvent{Remaining: remaining})
	return starlark.None, nil
}

func (r *recorder) resize(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var w, h int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "w", &w, "h", &h); err != nil {
		return nil, err
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%s: negative size %dx%d", b.Name(), w, h)
	}
	r.events = append(r.events, input.ResizeEvent{Width: w, Height: h})
	return starlark.None, nil
}

// Helpers for type conversion

func toPoint(fn string, x, y starlark.Value) (canvas.Point, error) {
	fx, ok := starlark.AsFloat(x)
	if !ok {
		return canvas.Point{}, fmt.Errorf("%s: x must be a number, got %s", fn, x.Type())
	}
	fy, ok := starlark.AsFloat(y)
	if !ok {
		return canvas.Point{}, fmt.Errorf("%s: y must be a number, got %s", fn, y.Type())
	}
	return canvas.Point{X: fx, Y: fy}, nil
}

func parsePhase(s string) (input.Phase, error) {
	switch s {
	case "down":
		return input.PhaseDown, nil
	case "move":
		return input.PhaseMove, nil
	case "up":
		return input.PhaseUp, nil
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

func parseButton(s string) (input.Button, error) {
	switch s {
	case "primary":
		return input.ButtonPrimary, nil
	case "middle":
		return input.ButtonMiddle, nil
	case "secondary":
		return input.ButtonSecondary, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}
