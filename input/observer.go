package input

import (
	"log/slog"

	"infinite-canvas/canvas"
)

// Gesture names a multi-event interaction.
type Gesture string

const (
	GesturePan   Gesture = "pan"
	GesturePinch Gesture = "pinch"
)

// Observer is notified at gesture and transform transitions. Calls happen
// synchronously inside Router.Handle.
type Observer interface {
	GestureStarted(g Gesture, t canvas.Transform)
	GestureEnded(g Gesture, t canvas.Transform)
	TransformChanged(cause string, t canvas.Transform)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) GestureStarted(Gesture, canvas.Transform)  {}
func (NopObserver) GestureEnded(Gesture, canvas.Transform)    {}
func (NopObserver) TransformChanged(string, canvas.Transform) {}

// LogObserver writes notifications to a structured logger at debug level.
type LogObserver struct {
	log *slog.Logger
}

// NewLogObserver returns an Observer backed by l.
func NewLogObserver(l *slog.Logger) *LogObserver {
	return &LogObserver{log: l}
}

func (o *LogObserver) GestureStarted(g Gesture, t canvas.Transform) {
	o.log.Debug("gesture started", slog.String("gesture", string(g)), transformAttr(t))
}

func (o *LogObserver) GestureEnded(g Gesture, t canvas.Transform) {
	o.log.Debug("gesture ended", slog.String("gesture", string(g)), transformAttr(t))
}

func (o *LogObserver) TransformChanged(cause string, t canvas.Transform) {
	o.log.Debug("transform changed", slog.String("cause", cause), transformAttr(t))
}

func transformAttr(t canvas.Transform) slog.Attr {
	return slog.Group("transform",
		slog.Float64("x", t.Offset.X),
		slog.Float64("y", t.Offset.Y),
		slog.Float64("scale", t.Scale),
	)
}
