package gesture

import "math"

// Vec2 is a 2D vector used for positions, offsets and deltas throughout the
// API.
type Vec2 struct {
	X, Y float64
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// PointerID identifies one contact for its lifetime, from PointerDown to
// PointerUp or PointerCancel.
type PointerID int

// Contact is one active touch point at its last observed position.
type Contact struct {
	ID   PointerID
	X, Y float64
}

// Pos returns the contact position as a vector.
func (c Contact) Pos() Vec2 {
	return Vec2{c.X, c.Y}
}

// PointerEventType identifies a low-level pointer event.
type PointerEventType uint8

const (
	PointerDown   PointerEventType = iota // a contact touched the element
	PointerMove                           // a contact moved while down
	PointerUp                             // a contact was lifted
	PointerCancel                         // the platform interrupted the interaction
)

func (t PointerEventType) String() string {
	switch t {
	case PointerDown:
		return "PointerDown"
	case PointerMove:
		return "PointerMove"
	case PointerUp:
		return "PointerUp"
	case PointerCancel:
		return "PointerCancel"
	default:
		panic("invalid PointerEventType")
	}
}

// PointerEvent is a single low-level event for one contact. Positions are in
// the element's coordinate space.
type PointerEvent struct {
	Type PointerEventType
	ID   PointerID
	X, Y float64
}

// Contact returns the contact described by e.
func (e PointerEvent) Contact() Contact {
	return Contact{ID: e.ID, X: e.X, Y: e.Y}
}

// Kind identifies a recognized gesture.
type Kind uint8

const (
	KindTap         Kind = iota // short press and release without movement
	KindLongPress               // press held past the long-press delay
	KindSwipe                   // fast directional stroke
	KindPan                     // continuous drag, reported on every move
	KindPinch                   // two-contact scale change, reported on every move
	KindPull                    // pull-to-refresh progress, reported on every move
	KindRefresh                 // pull released past the refresh threshold
	KindPullRelease             // pull released below the refresh threshold
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindLongPress:
		return "long_press"
	case KindSwipe:
		return "swipe"
	case KindPan:
		return "pan"
	case KindPinch:
		return "pinch"
	case KindPull:
		return "pull"
	case KindRefresh:
		return "refresh"
	case KindPullRelease:
		return "pull_release"
	default:
		panic("invalid Kind")
	}
}

// Terminal reports whether k is reported at most once, at session end.
// Pan, Pinch and Pull are continuous.
func (k Kind) Terminal() bool {
	switch k {
	case KindPan, KindPinch, KindPull:
		return false
	default:
		return true
	}
}

// Direction is the dominant axis and sign of a swipe.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		panic("invalid Direction")
	}
}

// Horizontal reports whether d lies on the X axis.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}
