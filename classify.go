package gesture

import "math"

// The classifiers below are pure: each reads a Tracker and a ThresholdTable
// and reports whether its gesture occurred. They do not fire callbacks,
// touch timers or mutate the tracker. An inactive tracker never qualifies.

// ClassifyTap reports a tap when the primary contact stayed within
// TapMaxDistance and the session is no older than TapMaxTime.
func ClassifyTap(t *Tracker, th ThresholdTable) (Tap, bool) {
	_, start, ok := t.Primary()
	if !ok {
		return Tap{}, false
	}
	elapsed := t.Elapsed()
	if t.Distance() > th.TapMaxDistance || elapsed > th.TapMaxTime {
		return Tap{}, false
	}
	return Tap{Position: start.Pos(), Elapsed: elapsed}, true
}

// ClassifyLongPress reports a long press when the primary contact is still
// within TapMaxDistance. The caller decides when to ask: normally when the
// LongPressDelay timer fires.
func ClassifyLongPress(t *Tracker, th ThresholdTable) (LongPress, bool) {
	cur, _, ok := t.Primary()
	if !ok || t.Distance() > th.TapMaxDistance {
		return LongPress{}, false
	}
	return LongPress{Position: cur.Pos(), Elapsed: t.Elapsed()}, true
}

// ClassifySwipe reports a swipe when the primary contact travelled at least
// SwipeMinDistance within SwipeMaxTime.
func ClassifySwipe(t *Tracker, th ThresholdTable) (Swipe, bool) {
	if !t.Active() {
		return Swipe{}, false
	}
	dist := t.Distance()
	elapsed := t.Elapsed()
	if dist < th.SwipeMinDistance || elapsed > th.SwipeMaxTime {
		return Swipe{}, false
	}
	return Swipe{
		Direction: t.SwipeDirection(),
		Distance:  dist,
		Delta:     t.Delta(),
		Elapsed:   elapsed,
	}, true
}

// ClassifyPan reports the cumulative pan delta once the primary contact has
// travelled at least PanMinDistance. Step fields are left for the caller.
func ClassifyPan(t *Tracker, th ThresholdTable) (Pan, bool) {
	if !t.Active() || t.Distance() < th.PanMinDistance {
		return Pan{}, false
	}
	d := t.Delta()
	return Pan{DeltaX: d.X, DeltaY: d.Y}, true
}

// ClassifyPinch reports a pinch when two or more contacts are tracked and
// the scale moved at least PinchMinScaleDelta away from 1.
func ClassifyPinch(t *Tracker, th ThresholdTable) (Pinch, bool) {
	if !t.Active() || len(t.current) < 2 {
		return Pinch{}, false
	}
	scale := t.Scale()
	if math.Abs(scale-1) < th.PinchMinScaleDelta {
		return Pinch{}, false
	}
	return Pinch{
		Scale:       scale,
		ScaleChange: scale - 1,
		Rotation:    t.Rotation(),
		Center:      t.Center(),
	}, true
}

// ClassifyPull reports pull progress while the primary contact is below its
// start point. Whether the container was at its top when the session began
// is the caller's concern.
func ClassifyPull(t *Tracker, th ThresholdTable) (Pull, bool) {
	if !t.Active() {
		return Pull{}, false
	}
	dy := t.Delta().Y
	if dy <= 0 {
		return Pull{}, false
	}
	dist := math.Min(dy, th.PullMaxDistance)
	return Pull{
		Distance: dist,
		Progress: math.Min(dist/th.PullThreshold, 1),
	}, true
}

// ClassifyRefresh reports a refresh when the downward travel exceeds
// PullThreshold. Done is left for the caller.
func ClassifyRefresh(t *Tracker, th ThresholdTable) (Refresh, bool) {
	if !t.Active() {
		return Refresh{}, false
	}
	dy := t.Delta().Y
	if dy <= th.PullThreshold {
		return Refresh{}, false
	}
	return Refresh{PullDistance: math.Min(dy, th.PullMaxDistance)}, true
}
