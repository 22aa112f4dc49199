package script

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"infinite-canvas/canvas"
	"infinite-canvas/input"
)

// Step is the outcome of one replayed event.
type Step struct {
	Event      input.Event
	Suppressed bool
	Transform  canvas.Transform
}

// Replay feeds events to r in order and records the transform after each.
func Replay(r *input.Router, events []input.Event) []Step {
	steps := make([]Step, 0, len(events))
	for _, ev := range events {
		suppressed := r.Handle(ev)
		steps = append(steps, Step{Event: ev, Suppressed: suppressed, Transform: r.Transform().Snapshot()})
	}
	return steps
}

// Fingerprint hashes a transform so replays can be compared across runs.
func Fingerprint(t canvas.Transform) string {
	data := map[string]float64{
		"x":     t.Offset.X,
		"y":     t.Offset.Y,
		"scale": t.Scale,
	}
	jsonData, _ := json.Marshal(data)
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%x", hash)
}
