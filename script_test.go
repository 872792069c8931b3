package gesture

import (
	"errors"
	"testing"
	"time"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "press", "id": 1, "x": 100, "y": 100},
			{"action": "wait", "ms": 150},
			{"action": "move", "id": 1, "x": 100, "y": 180},
			{"action": "release", "id": 1, "x": 100, "y": 180}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.Len() != 4 {
		t.Fatalf("expected 4 steps, got %d", runner.Len())
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].MS != 150 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].X != 100 || runner.steps[2].Y != 180 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"not json", `not json`, false},
		{"empty", `{"steps": []}`, true},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`, true},
		{"negative wait", `{"steps": [{"action": "wait", "ms": -5}]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidScript) != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidScript) = %v, want %v (%v)", !tt.invalid, tt.invalid, err)
			}
		})
	}
}

func TestRunnerReplaysSwipe(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "id": 1, "x": 100, "y": 100},
		{"action": "wait", "ms": 50},
		{"action": "move", "id": 1, "x": 100, "y": 120},
		{"action": "wait", "ms": 50},
		{"action": "move", "id": 1, "x": 100, "y": 150},
		{"action": "wait", "ms": 50},
		{"action": "move", "id": 1, "x": 100, "y": 180},
		{"action": "release", "id": 1, "x": 100, "y": 180}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	clock := NewManualClock(testEpoch)
	s := NewSurface(WithClock(clock))
	var swipes []Swipe
	Bind(s, Options{OnSwipe: func(sw Swipe) { swipes = append(swipes, sw) }})

	runner.Run(s)
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if runner.Step(s) {
		t.Error("Step after Done should report false")
	}
	if len(swipes) != 1 {
		t.Fatalf("swipes = %d, want 1", len(swipes))
	}
	if sw := swipes[0]; sw.Direction != DirectionDown || sw.Distance != 80 || sw.Elapsed != 150*time.Millisecond {
		t.Errorf("swipe = %+v, want down/80/150ms", sw)
	}
}

func TestRunnerStepByStep(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "scroll", "y": 12},
		{"action": "tap", "id": 2, "x": 5, "y": 6, "ms": 40},
		{"action": "swipe", "id": 2, "fromX": 0, "fromY": 0, "toX": 90, "toY": 0, "steps": 3, "ms": 90},
		{"action": "press", "id": 4, "x": 1, "y": 1},
		{"action": "cancel", "id": 4}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	clock := NewManualClock(testEpoch)
	s := NewSurface(WithClock(clock))
	var types []PointerEventType
	s.OnPointer(func(e PointerEvent) { types = append(types, e.Type) })

	runner.Step(s)
	if s.ScrollOffset() != 12 || len(types) != 0 {
		t.Errorf("scroll step: offset %v, %d events", s.ScrollOffset(), len(types))
	}
	runner.Step(s)
	if len(types) != 2 || clock.Now().Sub(testEpoch) != 40*time.Millisecond {
		t.Errorf("tap step: %d events at %v", len(types), clock.Now().Sub(testEpoch))
	}
	runner.Step(s)
	if len(types) != 7 {
		t.Errorf("swipe step: %d events, want 7", len(types))
	}
	runner.Run(s)
	if types[len(types)-1] != PointerCancel {
		t.Errorf("last event = %v, want PointerCancel", types[len(types)-1])
	}
}

func TestRunnerPinch(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "pinch", "id": 1, "id2": 2, "x": 200, "y": 200, "from": 100, "to": 160, "steps": 3, "ms": 90}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewSurface(WithClock(NewManualClock(testEpoch)))
	var scales []float64
	Bind(s, Options{OnPinch: func(p Pinch) { scales = append(scales, p.Scale) }})
	runner.Run(s)

	// Every move widens the pair, ending 160 apart against a 100 baseline.
	if len(scales) == 0 || !approxEqual(scales[len(scales)-1], 1.6) {
		t.Fatalf("scales = %v, want to end at 1.6", scales)
	}
	for i := 1; i < len(scales); i++ {
		if scales[i] < scales[i-1] {
			t.Errorf("scales not monotonic: %v", scales)
		}
	}
}

func TestLoadScript_InvalidPinch(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": [{"action": "pinch", "id": 1, "id2": 1, "from": 10, "to": 20}]}`))
	if !errors.Is(err, ErrInvalidScript) {
		t.Errorf("err = %v, want ErrInvalidScript", err)
	}
}
