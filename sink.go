package gesture

import (
	"time"

	"github.com/google/uuid"
)

// EventSink receives every gesture a Binding fires, after the typed callback
// has run. Use it to forward gestures to an ECS world, metrics or logs
// without touching the callbacks.
type EventSink interface {
	EmitGesture(event Event)
}

// Event is the flattened form of a recognized gesture. Only the fields of
// its Kind are set.
type Event struct {
	Kind Kind
	// SessionID groups the events of one gesture session.
	SessionID uuid.UUID

	// Position is set for KindTap and KindLongPress; it is the pinch center
	// for KindPinch.
	Position Vec2
	Elapsed  time.Duration

	// Swipe fields.
	Direction Direction
	Distance  float64

	// Pan fields; DeltaX/DeltaY also carry the swipe delta.
	DeltaX, DeltaY float64
	StepX, StepY   float64

	// Pinch fields.
	Scale       float64
	ScaleChange float64
	Rotation    float64

	// Pull fields. PullDistance is also set for KindRefresh and
	// KindPullRelease.
	PullDistance float64
	Progress     float64
}

// MultiSink fans events out to several sinks in order. Nil entries are
// skipped.
type MultiSink []EventSink

// EmitGesture implements EventSink.
func (m MultiSink) EmitGesture(event Event) {
	for _, s := range m {
		if s != nil {
			s.EmitGesture(event)
		}
	}
}

func tapEvent(id uuid.UUID, r Tap) Event {
	return Event{Kind: KindTap, SessionID: id, Position: r.Position, Elapsed: r.Elapsed}
}

func longPressEvent(id uuid.UUID, r LongPress) Event {
	return Event{Kind: KindLongPress, SessionID: id, Position: r.Position, Elapsed: r.Elapsed}
}

func swipeEvent(id uuid.UUID, r Swipe) Event {
	return Event{
		Kind: KindSwipe, SessionID: id,
		Direction: r.Direction, Distance: r.Distance, Elapsed: r.Elapsed,
		DeltaX: r.Delta.X, DeltaY: r.Delta.Y,
	}
}

func panEvent(id uuid.UUID, r Pan) Event {
	return Event{
		Kind: KindPan, SessionID: id,
		DeltaX: r.DeltaX, DeltaY: r.DeltaY, StepX: r.StepX, StepY: r.StepY,
	}
}

func pinchEvent(id uuid.UUID, r Pinch) Event {
	return Event{
		Kind: KindPinch, SessionID: id, Position: r.Center,
		Scale: r.Scale, ScaleChange: r.ScaleChange, Rotation: r.Rotation,
	}
}

func pullEvent(id uuid.UUID, r Pull) Event {
	return Event{Kind: KindPull, SessionID: id, PullDistance: r.Distance, Progress: r.Progress}
}

func refreshEvent(id uuid.UUID, r Refresh) Event {
	return Event{Kind: KindRefresh, SessionID: id, PullDistance: r.PullDistance, Progress: 1}
}

func pullReleaseEvent(id uuid.UUID, r Pull) Event {
	return Event{Kind: KindPullRelease, SessionID: id, PullDistance: r.Distance, Progress: r.Progress}
}
