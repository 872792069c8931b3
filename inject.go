package gesture

import "time"

// InjectPress dispatches a PointerDown for contact id at (x, y).
func (s *Surface) InjectPress(id PointerID, x, y float64) {
	s.Dispatch(PointerEvent{Type: PointerDown, ID: id, X: x, Y: y})
}

// InjectMove dispatches a PointerMove for contact id to (x, y).
func (s *Surface) InjectMove(id PointerID, x, y float64) {
	s.Dispatch(PointerEvent{Type: PointerMove, ID: id, X: x, Y: y})
}

// InjectRelease dispatches a PointerUp for contact id at (x, y).
func (s *Surface) InjectRelease(id PointerID, x, y float64) {
	s.Dispatch(PointerEvent{Type: PointerUp, ID: id, X: x, Y: y})
}

// InjectCancel dispatches a PointerCancel for contact id.
func (s *Surface) InjectCancel(id PointerID) {
	s.Dispatch(PointerEvent{Type: PointerCancel, ID: id})
}

// InjectTap presses and releases contact id at (x, y), holding for hold.
// Time only passes if the surface clock is a ManualClock.
func (s *Surface) InjectTap(id PointerID, x, y float64, hold time.Duration) {
	s.InjectPress(id, x, y)
	s.advance(hold)
	s.InjectRelease(id, x, y)
}

// InjectSwipe presses contact id at (fromX, fromY), moves it in steps linear
// increments to (toX, toY) spread evenly over d, and releases it there.
// Minimum steps is 1.
func (s *Surface) InjectSwipe(id PointerID, fromX, fromY, toX, toY float64, steps int, d time.Duration) {
	if steps < 1 {
		steps = 1
	}
	s.InjectPress(id, fromX, fromY)
	step := d / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.advance(step)
		s.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(id, toX, toY)
}

func (s *Surface) advance(d time.Duration) {
	if mc, ok := s.clock.(*ManualClock); ok && d > 0 {
		mc.Advance(d)
	}
}

// InjectPinch presses contacts a and b on the horizontal line through
// (cx, cy), fromDist apart, spreads them in steps increments to toDist over
// d, then releases b and a.
func (s *Surface) InjectPinch(a, b PointerID, cx, cy, fromDist, toDist float64, steps int, d time.Duration) {
	if steps < 1 {
		steps = 1
	}
	half := fromDist / 2
	s.InjectPress(a, cx-half, cy)
	s.InjectPress(b, cx+half, cy)
	step := d / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		half = (fromDist + (toDist-fromDist)*float64(i)/float64(steps)) / 2
		s.advance(step)
		s.InjectMove(a, cx-half, cy)
		s.InjectMove(b, cx+half, cy)
	}
	s.InjectRelease(b, cx+half, cy)
	s.InjectRelease(a, cx-half, cy)
}
