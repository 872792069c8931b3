package gesture

// Target is an element that delivers pointer events. OnPointer registers a
// listener and returns the function that unregisters it.
type Target interface {
	OnPointer(fn func(PointerEvent)) (remove func())
}

// Scroller is implemented by targets that sit in a scroll container. Pull to
// refresh only starts when ScrollOffset is zero at pointer down. Targets that
// do not implement Scroller are treated as always at the top.
type Scroller interface {
	ScrollOffset() float64
}

// --- Surface ---

type pointerListener struct {
	id uint32
	fn func(PointerEvent)
}

// Surface is an in-memory Target. Input drivers (see TouchSource) and tests
// feed it pointer events through Dispatch or the Inject helpers, and it
// delivers them synchronously to every registered listener in registration
// order.
type Surface struct {
	listeners []pointerListener
	nextID    uint32
	scrollY   float64
	clock     Clock
}

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithClock makes bindings on the surface use c. The default is a
// FrameClock.
func WithClock(c Clock) SurfaceOption {
	return func(s *Surface) {
		if c != nil {
			s.clock = c
		}
	}
}

// NewSurface creates an empty surface.
func NewSurface(opts ...SurfaceOption) *Surface {
	s := &Surface{}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewFrameClock()
	}
	return s
}

// Clock returns the clock bindings on this surface schedule timers on.
func (s *Surface) Clock() Clock {
	return s.clock
}

// OnPointer registers fn and returns its remover. Removing twice is a no-op.
func (s *Surface) OnPointer(fn func(PointerEvent)) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, pointerListener{id: id, fn: fn})
	return func() { s.removeListener(id) }
}

func (s *Surface) removeListener(id uint32) {
	for i := range s.listeners {
		if s.listeners[i].id == id {
			copy(s.listeners[i:], s.listeners[i+1:])
			s.listeners[len(s.listeners)-1] = pointerListener{}
			s.listeners = s.listeners[:len(s.listeners)-1]
			return
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (s *Surface) ListenerCount() int {
	return len(s.listeners)
}

// Dispatch delivers e to the listeners registered when the call began.
// A listener removed during dispatch by an earlier listener is skipped.
func (s *Surface) Dispatch(e PointerEvent) {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := make([]pointerListener, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		if !s.hasListener(l.id) {
			continue
		}
		l.fn(e)
	}
}

func (s *Surface) hasListener(id uint32) bool {
	for i := range s.listeners {
		if s.listeners[i].id == id {
			return true
		}
	}
	return false
}

// ScrollOffset implements Scroller.
func (s *Surface) ScrollOffset() float64 {
	return s.scrollY
}

// SetScrollOffset sets the vertical scroll offset of the surface's content.
func (s *Surface) SetScrollOffset(y float64) {
	s.scrollY = y
}
