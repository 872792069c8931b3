package gesture

import (
	"math"
	"time"
)

// Tracker records the geometry of one gesture session: the contacts at
// session start, the latest contacts and the start time. It does no I/O and
// schedules nothing; every getter is a pure function of the recorded state.
//
// Contacts are matched to their start snapshot by identifier. A contact that
// joins mid-session is snapshotted at its join position and a lifted contact
// is dropped from both snapshots, so the start and current sets always hold
// the same identifiers in the same order while the tracker is active.
//
// Getters on an inactive tracker return neutral values: zero delta and
// distance, scale 1, elapsed 0.
type Tracker struct {
	clock Clock

	start     []Contact
	current   []Contact
	startTime time.Time
	active    bool

	// Pairwise distance of the first two contacts when they became a pair.
	pairIDs  [2]PointerID
	pairBase float64
	pairAng  float64
	paired   bool
}

// NewTracker returns an inactive tracker that reads time from clock.
func NewTracker(clock Clock) *Tracker {
	return &Tracker{clock: clock}
}

func (t *Tracker) now() time.Time {
	if t.clock == nil {
		return time.Now()
	}
	return t.clock.Now()
}

// Start begins a new session with contacts as both the start and the current
// snapshot. Calling Start on an active tracker discards the previous session.
// Start panics if contacts is empty.
func (t *Tracker) Start(contacts []Contact) {
	if len(contacts) == 0 {
		panic("gesture: Tracker.Start called with no contacts")
	}
	t.start = append(t.start[:0], contacts...)
	t.current = append(t.current[:0], contacts...)
	t.startTime = t.now()
	t.active = true
	t.paired = false
	t.rebasePair()
}

// Update replaces the current snapshot. It is a no-op when the tracker is
// inactive. Contacts absent from the start snapshot are added to it at their
// current position; start entries with no current contact are dropped.
func (t *Tracker) Update(contacts []Contact) {
	if !t.active {
		return
	}
	start := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if s, ok := t.startOf(c.ID); ok {
			start = append(start, s)
		} else {
			start = append(start, c)
		}
	}
	t.start = start
	t.current = append(t.current[:0], contacts...)
	t.rebasePair()
}

// End closes the session.
func (t *Tracker) End() {
	t.active = false
	t.start = t.start[:0]
	t.current = t.current[:0]
	t.paired = false
}

// Active reports whether a session is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Contacts returns a copy of the current snapshot.
func (t *Tracker) Contacts() []Contact {
	if !t.active {
		return nil
	}
	out := make([]Contact, len(t.current))
	copy(out, t.current)
	return out
}

// Primary returns the first current contact and its start snapshot.
func (t *Tracker) Primary() (current, start Contact, ok bool) {
	if !t.active || len(t.current) == 0 {
		return Contact{}, Contact{}, false
	}
	current = t.current[0]
	start, _ = t.startOf(current.ID)
	return current, start, true
}

// Delta returns the primary contact's displacement from its start.
func (t *Tracker) Delta() Vec2 {
	cur, start, ok := t.Primary()
	if !ok {
		return Vec2{}
	}
	return cur.Pos().Sub(start.Pos())
}

// Distance returns the length of Delta.
func (t *Tracker) Distance() float64 {
	return t.Delta().Len()
}

// Elapsed returns the time since Start.
func (t *Tracker) Elapsed() time.Duration {
	if !t.active {
		return 0
	}
	return t.now().Sub(t.startTime)
}

// SwipeDirection returns the dominant axis of Delta. Equal magnitudes resolve
// to the horizontal axis. A zero delta yields DirectionNone.
func (t *Tracker) SwipeDirection() Direction {
	d := t.Delta()
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	switch {
	case ax == 0 && ay == 0:
		return DirectionNone
	case ax >= ay:
		if d.X > 0 {
			return DirectionRight
		}
		return DirectionLeft
	default:
		if d.Y > 0 {
			return DirectionDown
		}
		return DirectionUp
	}
}

// Scale returns the ratio of the current distance between the first two
// contacts to their distance when they became a pair. It returns 1 when
// fewer than two contacts are tracked or the pair started coincident.
func (t *Tracker) Scale() float64 {
	if !t.paired || t.pairBase == 0 {
		return 1
	}
	return pairDistance(t.current[0], t.current[1]) / t.pairBase
}

// Angle returns the current angle in radians of the line from the first to
// the second contact, or 0 with fewer than two contacts.
func (t *Tracker) Angle() float64 {
	if !t.paired {
		return 0
	}
	return pairAngle(t.current[0], t.current[1])
}

// Rotation returns the change of Angle since the pair formed.
func (t *Tracker) Rotation() float64 {
	if !t.paired {
		return 0
	}
	return t.Angle() - t.pairAng
}

// Center returns the midpoint of the first two contacts, or the primary
// contact position with a single contact.
func (t *Tracker) Center() Vec2 {
	switch {
	case !t.active || len(t.current) == 0:
		return Vec2{}
	case len(t.current) == 1:
		return t.current[0].Pos()
	default:
		a, b := t.current[0], t.current[1]
		return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	}
}

func (t *Tracker) startOf(id PointerID) (Contact, bool) {
	for _, c := range t.start {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// rebasePair records the pinch baseline whenever the first two contacts
// change identity.
func (t *Tracker) rebasePair() {
	if len(t.current) < 2 {
		t.paired = false
		return
	}
	ids := [2]PointerID{t.current[0].ID, t.current[1].ID}
	if t.paired && ids == t.pairIDs {
		return
	}
	// Measured from where the pair formed. At Start that is the start
	// snapshot itself.
	a, b := t.current[0], t.current[1]
	t.pairIDs = ids
	t.pairBase = pairDistance(a, b)
	t.pairAng = pairAngle(a, b)
	t.paired = true
}

func pairDistance(a, b Contact) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func pairAngle(a, b Contact) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
