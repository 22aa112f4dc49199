package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"infinite-canvas/input"
	"infinite-canvas/script"
)

// headlessHost stands in for a window during replay.
type headlessHost struct {
	width, height int
	redraws       int
}

func (h *headlessHost) SetSize(width, height int) {
	h.width, h.height = width, height
}

func (h *headlessHost) RequestRedraw() {
	h.redraws++
}

// Replay runs the Starlark script at filename against a headless router and
// writes a report to w.
func Replay(w io.Writer, cfg Config, filename string, verbose bool) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	events, err := script.Execute(filename, src)
	if err != nil {
		return err
	}

	host := &headlessHost{width: cfg.Window.Width, height: cfg.Window.Height}
	opts := input.Options{ZoomIntensity: cfg.Input.ZoomIntensity}
	if cfg.Debug {
		opts.Observer = input.NewLogObserver(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	router := input.NewRouter(host, cfg.NewTransform(), opts)
	steps := script.Replay(router, events)

	if verbose {
		for i, s := range steps {
			suppressed := ""
			if s.Suppressed {
				suppressed = " (default suppressed)"
			}
			fmt.Fprintf(w, "%3d %-28s offset=(%.3f, %.3f) scale=%.6f%s\n",
				i, describe(s.Event), s.Transform.Offset.X, s.Transform.Offset.Y, s.Transform.Scale, suppressed)
		}
	}

	t := router.Transform()
	fmt.Fprintf(w, "events:      %d\n", len(events))
	fmt.Fprintf(w, "redraws:     %d\n", host.redraws)
	fmt.Fprintf(w, "surface:     %dx%d\n", host.width, host.height)
	fmt.Fprintf(w, "offset:      (%.6f, %.6f)\n", t.Offset.X, t.Offset.Y)
	fmt.Fprintf(w, "scale:       %.6f\n", t.Scale)
	fmt.Fprintf(w, "fingerprint: %s\n", script.Fingerprint(*t))
	return nil
}

func describe(ev input.Event) string {
	switch e := ev.(type) {
	case input.KeyEvent:
		return fmt.Sprintf("key %s %s", e.Key, e.Phase)
	case input.PointerEvent:
		return fmt.Sprintf("pointer %s %s (%g,%g)", e.Button, e.Phase, e.X, e.Y)
	case input.WheelEvent:
		return fmt.Sprintf("wheel %g at (%g,%g)", e.DeltaY, e.X, e.Y)
	case input.TouchMoveEvent:
		return fmt.Sprintf("touch x%d", len(e.Touches))
	case input.TouchEndEvent:
		return fmt.Sprintf("touch_end %d left", e.Remaining)
	case input.ResizeEvent:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	}
	return fmt.Sprintf("%T", ev)
}
