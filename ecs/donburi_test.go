package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/gesture"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitGesture(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []gesture.Event
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.Event) {
		received = append(received, e)
	})

	id := uuid.New()
	sink.EmitGesture(gesture.Event{
		Kind:      gesture.KindSwipe,
		SessionID: id,
		Direction: gesture.DirectionDown,
		Distance:  80,
	})
	sink.EmitGesture(gesture.Event{
		Kind:        gesture.KindPinch,
		Scale:       2.0,
		ScaleChange: 1.0,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Kind != gesture.KindSwipe || e0.SessionID != id || e0.Direction != gesture.DirectionDown {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Kind != gesture.KindPinch || e1.Scale != 2.0 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.Event) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.Event) {
		count2++
	})

	sink.EmitGesture(gesture.Event{Kind: gesture.KindTap})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestEntitySink_RecordsState(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create()
	sink := NewEntitySink(world, entity)

	sink.EmitGesture(gesture.Event{Kind: gesture.KindTap})
	sink.EmitGesture(gesture.Event{Kind: gesture.KindLongPress, Elapsed: 500 * time.Millisecond})

	entry := world.Entry(entity)
	if !entry.HasComponent(GestureStateComponent) {
		t.Fatal("GestureStateComponent not added")
	}
	st := GestureStateComponent.Get(entry)
	if st.Count != 2 || st.Last.Kind != gesture.KindLongPress {
		t.Errorf("state = %+v", st)
	}

	world.Remove(entity)
	sink.EmitGesture(gesture.Event{Kind: gesture.KindTap}) // must not panic
}

func TestDonburiSink_FromBinding(t *testing.T) {
	world := donburi.NewWorld()
	clock := gesture.NewManualClock(time.Unix(0, 0))
	surface := gesture.NewSurface(gesture.WithClock(clock))

	var kinds []gesture.Kind
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.Event) {
		kinds = append(kinds, e.Kind)
	})

	dispose := gesture.Bind(surface, gesture.Options{
		OnTap: func(gesture.Tap) {},
		Sink:  NewDonburiSink(world),
	})
	defer dispose()

	surface.InjectTap(1, 20, 20, 30*time.Millisecond)
	GestureEventType.ProcessEvents(world)

	if len(kinds) != 1 || kinds[0] != gesture.KindTap {
		t.Errorf("kinds = %v, want [tap]", kinds)
	}
}
