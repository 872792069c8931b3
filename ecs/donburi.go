package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
var GestureEventType = events.NewEventType[gesture.Event]()

// GestureState records the gestures delivered to one entity.
type GestureState struct {
	Last  gesture.Event
	Count int
}

// GestureStateComponent stores a GestureState on an entity.
var GestureStateComponent = donburi.NewComponentType[GestureState]()

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
	track  bool
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Gestures are
// published to GestureEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) gesture.EventSink {
	return &donburiSink{world: world}
}

// NewEntitySink is NewDonburiSink that also stores each gesture on entity's
// GestureStateComponent, adding the component on first use. Gestures for an
// entity that no longer exists are still published.
func NewEntitySink(world donburi.World, entity donburi.Entity) gesture.EventSink {
	return &donburiSink{world: world, entity: entity, track: true}
}

func (s *donburiSink) EmitGesture(event gesture.Event) {
	if s.track && s.world.Valid(s.entity) {
		entry := s.world.Entry(s.entity)
		if !entry.HasComponent(GestureStateComponent) {
			entry.AddComponent(GestureStateComponent)
		}
		st := GestureStateComponent.Get(entry)
		st.Last = event
		st.Count++
	}
	GestureEventType.Publish(s.world, event)
}
