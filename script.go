package gesture

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidScript is returned by LoadScript for malformed scripts.
var ErrInvalidScript = errors.New("invalid gesture script")

// scriptStep is a single action in a gesture script. Times are milliseconds.
type scriptStep struct {
	Action string  `json:"action"`
	ID     int     `json:"id,omitempty"`
	ID2    int     `json:"id2,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	From   float64 `json:"from,omitempty"`
	To     float64 `json:"to,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	MS     int     `json:"ms,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"wait": true, "tap": true, "swipe": true, "pinch": true, "scroll": true,
}

// Runner replays a recorded pointer sequence against a Surface. Waits and the
// durations of tap and swipe steps advance the surface clock when it is a
// ManualClock, which makes replays deterministic.
//
// Script format:
//
//	{"steps": [
//		{"action": "press", "id": 1, "x": 100, "y": 100},
//		{"action": "wait", "ms": 150},
//		{"action": "move", "id": 1, "x": 100, "y": 180},
//		{"action": "release", "id": 1, "x": 100, "y": 180},
//		{"action": "tap", "id": 1, "x": 50, "y": 50, "ms": 120},
//		{"action": "swipe", "id": 1, "fromX": 0, "fromY": 0, "toX": 120, "toY": 0, "steps": 4, "ms": 200},
//		{"action": "pinch", "id": 1, "id2": 2, "x": 200, "y": 200, "from": 100, "to": 160, "steps": 3, "ms": 90},
//		{"action": "scroll", "y": 0},
//		{"action": "cancel", "id": 1}
//	]}
type Runner struct {
	steps  []scriptStep
	cursor int
}

// LoadScript parses a JSON gesture script.
func LoadScript(data []byte) (*Runner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: %w: no steps", ErrInvalidScript)
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: %w: step %d: unknown action %q", ErrInvalidScript, i, st.Action)
		}
		if st.Action == "pinch" && (st.ID == st.ID2 || st.From <= 0 || st.To <= 0) {
			return nil, fmt.Errorf("parse gesture script: %w: step %d: pinch needs two ids and positive distances", ErrInvalidScript, i)
		}
		if st.MS < 0 {
			return nil, fmt.Errorf("parse gesture script: %w: step %d: negative ms", ErrInvalidScript, i)
		}
	}
	return &Runner{steps: sc.Steps}, nil
}

// Len returns the number of steps.
func (r *Runner) Len() int {
	return len(r.steps)
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Step runs the next step against s and reports whether one ran.
func (r *Runner) Step(s *Surface) bool {
	if r.Done() {
		return false
	}
	st := r.steps[r.cursor]
	r.cursor++

	id := PointerID(st.ID)
	d := time.Duration(st.MS) * time.Millisecond
	switch st.Action {
	case "press":
		s.InjectPress(id, st.X, st.Y)
	case "move":
		s.InjectMove(id, st.X, st.Y)
	case "release":
		s.InjectRelease(id, st.X, st.Y)
	case "cancel":
		s.InjectCancel(id)
	case "wait":
		s.advance(d)
	case "tap":
		s.InjectTap(id, st.X, st.Y, d)
	case "swipe":
		s.InjectSwipe(id, st.FromX, st.FromY, st.ToX, st.ToY, st.Steps, d)
	case "pinch":
		s.InjectPinch(id, PointerID(st.ID2), st.X, st.Y, st.From, st.To, st.Steps, d)
	case "scroll":
		s.SetScrollOffset(st.Y)
	}
	return true
}

// Run runs every remaining step against s.
func (r *Runner) Run(s *Surface) {
	for r.Step(s) {
	}
}
