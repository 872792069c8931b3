// Package gesture turns raw multi-touch pointer streams into classified,
// typed gestures: tap, long press, swipe with direction, pinch, pan and
// pull-to-refresh.
//
// # Quick start
//
// Bind a set of callbacks to a [Target]. A [Surface] is the in-memory
// target; [TouchSource] feeds it from [Ebitengine] touch and mouse input:
//
//	surface := gesture.NewSurface()
//	touches := gesture.NewTouchSource(surface)
//
//	dispose := gesture.Bind(surface, gesture.Options{
//		OnTap:   func(t gesture.Tap) { fmt.Println("tap at", t.Position) },
//		OnSwipe: func(s gesture.Swipe) { fmt.Println("swipe", s.Direction) },
//		OnPinch: func(p gesture.Pinch) { zoom = baseZoom * p.Scale },
//	})
//	defer dispose()
//
//	// in ebiten.Game.Update:
//	touches.Update()
//
// # Recognition
//
// A [Binding] runs one gesture session at a time, from the first contact down
// to the last contact up. A [Tracker] records the geometry of the session and
// pure classifiers ([ClassifyTap], [ClassifySwipe], ...) decide which gesture
// it was against a [ThresholdTable].
//
// Pan, Pinch and Pull are continuous: they are reported on every move that
// qualifies. Tap, LongPress, Swipe and Refresh are terminal: on release the
// binding tries them in the fixed order LongPress, Tap, Swipe, pull-to-refresh
// and reports only the first that matches. A long press that already fired
// during the hold is never reported again as a tap.
//
// Only classifiers whose callbacks are set run, and the long-press timer is
// only scheduled when OnLongPress is set.
//
// # Timers
//
// The long-press delay uses a [Clock]. [FrameClock] fires due timers from
// [FrameClock.Tick], which [TouchSource.Update] calls every frame, so timer
// callbacks and pointer events run on the same goroutine and a cancelled
// timer never fires. [ManualClock] drives virtual time in tests and replays.
//
// # Integration
//
// Every fired gesture is also forwarded to an optional [EventSink] as a
// flattened [Event]. The gesture/ecs module publishes them into a [Donburi]
// world and the gesture/metrics package counts them with Prometheus.
// Threshold tables can be loaded from YAML and the environment with
// gesture/config.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gesture
