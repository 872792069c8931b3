package gesture

import (
	"math"
	"testing"
	"time"
)

var testEpoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTrackerStart_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty contact list")
		}
	}()
	NewTracker(NewManualClock(testEpoch)).Start(nil)
}

func TestTrackerDeltaDistanceElapsed(t *testing.T) {
	clock := NewManualClock(testEpoch)
	tr := NewTracker(clock)
	tr.Start([]Contact{{ID: 1, X: 100, Y: 100}})

	clock.Advance(150 * time.Millisecond)
	tr.Update([]Contact{{ID: 1, X: 130, Y: 140}})

	if d := tr.Delta(); d != (Vec2{30, 40}) {
		t.Errorf("Delta = %v, want {30 40}", d)
	}
	if d := tr.Distance(); !approxEqual(d, 50) {
		t.Errorf("Distance = %v, want 50", d)
	}
	if e := tr.Elapsed(); e != 150*time.Millisecond {
		t.Errorf("Elapsed = %v, want 150ms", e)
	}
}

func TestTrackerInactiveIsNeutral(t *testing.T) {
	clock := NewManualClock(testEpoch)
	tr := NewTracker(clock)

	check := func(label string) {
		t.Helper()
		if d := tr.Delta(); d != (Vec2{}) {
			t.Errorf("%s: Delta = %v, want zero", label, d)
		}
		if d := tr.Distance(); d != 0 {
			t.Errorf("%s: Distance = %v, want 0", label, d)
		}
		if s := tr.Scale(); s != 1 {
			t.Errorf("%s: Scale = %v, want 1", label, s)
		}
		if e := tr.Elapsed(); e != 0 {
			t.Errorf("%s: Elapsed = %v, want 0", label, e)
		}
		if c := tr.Contacts(); c != nil {
			t.Errorf("%s: Contacts = %v, want nil", label, c)
		}
	}
	check("fresh")

	tr.Start([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 100, Y: 0}})
	clock.Advance(time.Second)
	tr.Update([]Contact{{ID: 1, X: 50, Y: 50}, {ID: 2, X: 300, Y: 0}})
	tr.End()
	check("after end")
}

func TestTrackerUpdateWhileInactiveIsNoop(t *testing.T) {
	tr := NewTracker(NewManualClock(testEpoch))
	tr.Update([]Contact{{ID: 1, X: 10, Y: 10}})
	if tr.Active() {
		t.Error("Update must not activate the tracker")
	}
	if d := tr.Delta(); d != (Vec2{}) {
		t.Errorf("Delta = %v, want zero", d)
	}
}

func TestTrackerRestartHasNoCorrelation(t *testing.T) {
	clock := NewManualClock(testEpoch)
	tr := NewTracker(clock)
	tr.Start([]Contact{{ID: 1, X: 0, Y: 0}})
	clock.Advance(400 * time.Millisecond)
	tr.Update([]Contact{{ID: 1, X: 200, Y: 200}})
	tr.End()

	tr.Start([]Contact{{ID: 7, X: 500, Y: 500}})
	if d := tr.Delta(); d != (Vec2{}) {
		t.Errorf("Delta after restart = %v, want zero", d)
	}
	if e := tr.Elapsed(); e != 0 {
		t.Errorf("Elapsed after restart = %v, want 0", e)
	}
	if s := tr.Scale(); s != 1 {
		t.Errorf("Scale after restart = %v, want 1", s)
	}
}

func TestTrackerStartOverwritesActiveSession(t *testing.T) {
	clock := NewManualClock(testEpoch)
	tr := NewTracker(clock)
	tr.Start([]Contact{{ID: 1, X: 0, Y: 0}})
	tr.Update([]Contact{{ID: 1, X: 80, Y: 0}})
	clock.Advance(100 * time.Millisecond)

	tr.Start([]Contact{{ID: 1, X: 80, Y: 0}})
	if d := tr.Distance(); d != 0 {
		t.Errorf("Distance = %v, want 0 after overwrite", d)
	}
	if e := tr.Elapsed(); e != 0 {
		t.Errorf("Elapsed = %v, want 0 after overwrite", e)
	}
}

func TestTrackerSwipeDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
	}{
		{"right", 80, 10, DirectionRight},
		{"left", -80, 10, DirectionLeft},
		{"down", 10, 80, DirectionDown},
		{"up", 10, -80, DirectionUp},
		{"tie resolves horizontal right", 50, 50, DirectionRight},
		{"tie resolves horizontal left", -50, 50, DirectionLeft},
		{"tie negative both", -50, -50, DirectionLeft},
		{"vertical only", 0, -1, DirectionUp},
		{"no movement", 0, 0, DirectionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(NewManualClock(testEpoch))
			tr.Start([]Contact{{ID: 1, X: 100, Y: 100}})
			tr.Update([]Contact{{ID: 1, X: 100 + tt.dx, Y: 100 + tt.dy}})
			if got := tr.SwipeDirection(); got != tt.want {
				t.Errorf("SwipeDirection(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestTrackerScale(t *testing.T) {
	tr := NewTracker(NewManualClock(testEpoch))
	tr.Start([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 100, Y: 0}})

	tr.Update([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 200, Y: 0}})
	if s := tr.Scale(); !approxEqual(s, 2) {
		t.Errorf("Scale = %v, want 2", s)
	}

	tr.Update([]Contact{{ID: 1, X: 25, Y: 0}, {ID: 2, X: 75, Y: 0}})
	if s := tr.Scale(); !approxEqual(s, 0.5) {
		t.Errorf("Scale = %v, want 0.5", s)
	}
	if c := tr.Center(); c != (Vec2{50, 0}) {
		t.Errorf("Center = %v, want {50 0}", c)
	}
}

func TestTrackerScale_SingleContact(t *testing.T) {
	tr := NewTracker(NewManualClock(testEpoch))
	tr.Start([]Contact{{ID: 1, X: 0, Y: 0}})
	tr.Update([]Contact{{ID: 1, X: 300, Y: 0}})
	if s := tr.Scale(); s != 1 {
		t.Errorf("Scale = %v, want 1 with a single contact", s)
	}
}

func TestTrackerScale_CoincidentStart(t *testing.T) {
	tr := NewTracker(NewManualClock(testEpoch))
	tr.Start([]Contact{{ID: 1, X: 10, Y: 10}, {ID: 2, X: 10, Y: 10}})
	tr.Update([]Contact{{ID: 1, X: 10, Y: 10}, {ID: 2, X: 50, Y: 10}})
	if s := tr.Scale(); s != 1 {
		t.Errorf("Scale = %v, want 1 for a zero baseline", s)
	}
}

func TestTrackerJoinMidSession(t *testing.T) {
	tr := NewTracker(NewManualClock(testEpoch))
	tr.Start([]Contact{{ID: 1, X: 0, Y: 0}})
	tr.Update([]Contact{{ID: 1, X: 20, Y: 0}})

	// Second finger joins: the pair baseline is where the pair formed.
	tr.Update([]Contact{{ID: 1, X: 20, Y: 0}, {ID: 2, X: 120, Y: 0}})
	if s := tr.Scale(); s != 1 {
		t.Errorf("Scale at join = %v, want 1", s)
	}
	tr.Update([]Contact{{ID: 1, X: 20, Y: 0}, {ID: 2, X: 170, Y: 0}})
	if s := tr.Scale(); !approxEqual(s, 1.5) {
		t.Errorf("Scale = %v, want 1.5", s)
	}

	// The primary contact keeps its original start.
	if d := tr.Delta(); d != (Vec2{20, 0}) {
		t.Errorf("Delta = %v, want {20 0}", d)
	}
}

func TestTrackerLiftKeepsIdentifiersMatched(t *testing.T) {
	tr := NewTracker(NewManualClock(testEpoch))
	tr.Start([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 100, Y: 100}})

	// Contact 1 lifts; contact 2 becomes primary, measured from its own start.
	tr.Update([]Contact{{ID: 2, X: 130, Y: 100}})
	if d := tr.Delta(); d != (Vec2{30, 0}) {
		t.Errorf("Delta = %v, want {30 0}", d)
	}
	if len(tr.start) != 1 || tr.start[0].ID != 2 {
		t.Errorf("start snapshot = %v, want only contact 2", tr.start)
	}
	if s := tr.Scale(); s != 1 {
		t.Errorf("Scale = %v, want 1 after lift", s)
	}
}

func TestTrackerRotation(t *testing.T) {
	tr := NewTracker(NewManualClock(testEpoch))
	tr.Start([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 100, Y: 0}})
	tr.Update([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 0, Y: 100}})
	if r := tr.Rotation(); !approxEqual(r, math.Pi/2) {
		t.Errorf("Rotation = %v, want pi/2", r)
	}
	if a := tr.Angle(); !approxEqual(a, math.Pi/2) {
		t.Errorf("Angle = %v, want pi/2", a)
	}
}

func TestTrackerContactsIsCopy(t *testing.T) {
	tr := NewTracker(NewManualClock(testEpoch))
	in := []Contact{{ID: 1, X: 5, Y: 5}}
	tr.Start(in)
	in[0].X = 999

	got := tr.Contacts()
	if got[0].X != 5 {
		t.Errorf("tracker aliased caller slice: X = %v", got[0].X)
	}
	got[0].X = 42
	if cur, _, _ := tr.Primary(); cur.X != 5 {
		t.Errorf("Contacts returned internal slice: X = %v", cur.X)
	}
}
