// Package ecs publishes recognized gestures into a [Donburi] world.
//
// [NewDonburiSink] turns every gesture a binding fires into a typed Donburi
// event. Subscribe to [GestureEventType] in your ECS systems to receive them.
// [NewEntitySink] additionally records the latest gesture on one entity's
// [GestureState] component, for systems that poll instead of subscribing.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	dispose := gesture.Bind(surface, gesture.Options{
//		OnSwipe: func(gesture.Swipe) {},
//		Sink:    sink,
//	})
//
//	// in a system:
//	ecs.GestureEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
