package gesture

import "time"

// Tap is reported when a contact is pressed and released quickly without
// moving past the tap tolerance.
type Tap struct {
	// Position is where the contact went down.
	Position Vec2
	Elapsed  time.Duration
}

// LongPress is reported while the contact is still down, once it has been
// held for the long-press delay without moving past the tap tolerance.
type LongPress struct {
	Position Vec2
	Elapsed  time.Duration
}

// Swipe is reported on release after a fast stroke.
type Swipe struct {
	Direction Direction
	Distance  float64
	Delta     Vec2
	Elapsed   time.Duration
}

// Pinch is reported on every move while two or more contacts are down and
// the scale has changed enough.
type Pinch struct {
	// Scale is the current pair distance over the pair distance when the
	// second contact joined.
	Scale float64
	// ScaleChange is Scale-1: positive when spreading, negative when pinching.
	ScaleChange float64
	// Rotation is the change in pair angle in radians since the pair formed.
	Rotation float64
	Center   Vec2
}

// Pan is reported on every move once the primary contact has travelled the
// pan minimum.
type Pan struct {
	// DeltaX and DeltaY are the travel of the primary contact from its
	// start or join position. They restart when the primary lifts.
	DeltaX, DeltaY float64
	// StepX and StepY are the travel since the previous Pan of this session.
	StepX, StepY float64
}

// Pull is the progress of a pull-to-refresh gesture, reported on every move
// while pulling down from the top of the scroll container.
type Pull struct {
	// Distance is the downward travel, capped at PullMaxDistance.
	Distance float64
	// Progress is Distance over PullThreshold, clamped to [0, 1].
	Progress float64
}

// Refresh is reported when a pull is released past the threshold.
type Refresh struct {
	PullDistance float64
	// Done ends the refreshing phase. Until it is called, pulls on the
	// binding are ignored. Calling it more than once is harmless.
	Done func()
}
