package gesture

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Options selects the gestures a Binding recognizes. Every callback is
// optional; a classifier only runs when its callback is set, and the
// long-press timer is only scheduled when OnLongPress is set.
type Options struct {
	OnTap       func(Tap)
	OnLongPress func(LongPress)
	OnSwipe     func(Swipe)
	OnPan       func(Pan)
	OnPinch     func(Pinch)
	// OnPull reports pull-to-refresh progress while pulling.
	OnPull func(Pull)
	// OnRefresh fires when a pull is released past the threshold.
	OnRefresh func(Refresh)
	// OnPullRelease fires when a pull is released below the threshold.
	OnPullRelease func(Pull)

	// Thresholds overrides DefaultThresholds for this binding.
	Thresholds *ThresholdTable
	// Clock overrides the target's clock. Required for OnLongPress when the
	// target does not implement ClockSource.
	Clock Clock
	// Sink receives every fired gesture after its callback.
	Sink EventSink
	// Logger receives debug logs. Nil discards.
	Logger *slog.Logger
}

// BindingState is the state of a Binding's gesture session.
type BindingState uint8

const (
	StateIdle     BindingState = iota // no contact is down
	StateTracking                     // a session is in progress
	StateDisposed                     // the binding was disposed
)

func (s BindingState) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateTracking:
		return "StateTracking"
	case StateDisposed:
		return "StateDisposed"
	default:
		panic("invalid BindingState")
	}
}

// Binding recognizes gestures on one Target. It owns one gesture session at
// a time and must be driven from a single goroutine: the one that dispatches
// the target's pointer events and ticks its clock.
type Binding struct {
	opts   Options
	th     ThresholdTable
	clock  Clock
	log    *slog.Logger
	target Target
	remove func()

	state    BindingState
	tracker  *Tracker
	contacts []Contact
	session  uuid.UUID

	longPressTimer Timer
	longPressFired bool

	pinchLost bool // a paired contact lifted; no pinch until the next session

	pullArmed  bool // session began with the container at its top
	pulled     bool // OnPull fired at least once this session
	refreshing bool

	lastPan Vec2

	// Terminal classifiers in priority order, built from the registered
	// callbacks. The first one that reports true ends classification.
	release []func() bool
}

// Bind attaches a Binding to target and returns its disposer. See NewBinding.
func Bind(target Target, opts Options) (dispose func()) {
	return NewBinding(target, opts).Dispose
}

// NewBinding registers a pointer listener on target and returns the Binding.
// It panics if target is nil, if opts.Thresholds is invalid, or if
// OnLongPress is set and no clock can be resolved.
func NewBinding(target Target, opts Options) *Binding {
	if target == nil {
		panic("gesture: Bind called with a nil target")
	}
	th := DefaultThresholds()
	if opts.Thresholds != nil {
		th = *opts.Thresholds
	}
	if err := th.Validate(); err != nil {
		panic("gesture: " + err.Error())
	}
	clock := opts.Clock
	if clock == nil {
		if cs, ok := target.(ClockSource); ok {
			clock = cs.Clock()
		}
	}
	if clock == nil {
		if opts.OnLongPress != nil {
			panic("gesture: OnLongPress needs a Clock; set Options.Clock or bind to a ClockSource")
		}
		clock = NewFrameClock()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	b := &Binding{
		opts:    opts,
		th:      th,
		clock:   clock,
		log:     log,
		target:  target,
		tracker: NewTracker(clock),
	}
	b.release = append(b.release, b.releaseLongPress)
	if opts.OnTap != nil {
		b.release = append(b.release, b.releaseTap)
	}
	if opts.OnSwipe != nil {
		b.release = append(b.release, b.releaseSwipe)
	}
	if opts.OnRefresh != nil || opts.OnPullRelease != nil {
		b.release = append(b.release, b.releasePull)
	}
	b.remove = target.OnPointer(b.handle)
	b.log.Debug("gesture binding attached", slog.Int("release_classifiers", len(b.release)))
	return b
}

// State returns the current session state.
func (b *Binding) State() BindingState {
	return b.state
}

// Thresholds returns the table the binding classifies with.
func (b *Binding) Thresholds() ThresholdTable {
	return b.th
}

// Dispose removes the pointer listener and cancels any pending long press.
// No callback fires after Dispose returns, including from a session that was
// in progress. Dispose is idempotent and may be called from a callback.
func (b *Binding) Dispose() {
	if b.state == StateDisposed {
		return
	}
	wasTracking := b.state == StateTracking
	b.reset()
	b.state = StateDisposed
	if b.remove != nil {
		b.remove()
		b.remove = nil
	}
	b.log.Debug("gesture binding disposed", slog.Bool("mid_gesture", wasTracking))
}

func (b *Binding) handle(e PointerEvent) {
	switch e.Type {
	case PointerDown:
		b.pointerDown(e)
	case PointerMove:
		b.pointerMove(e)
	case PointerUp:
		b.pointerUp(e)
	case PointerCancel:
		b.pointerCancel(e)
	}
}

func (b *Binding) pointerDown(e PointerEvent) {
	switch b.state {
	case StateDisposed:
		return
	case StateIdle:
		b.begin(e.Contact())
	case StateTracking:
		if b.indexOf(e.ID) >= 0 {
			b.log.Debug("ignoring duplicate pointer down", slog.Int("pointer", int(e.ID)))
			return
		}
		b.contacts = append(b.contacts, e.Contact())
		b.tracker.Update(b.contacts)
		b.stopLongPress()
		b.log.Debug("contact joined session",
			slog.String("session", b.session.String()), slog.Int("contacts", len(b.contacts)))
	}
}

func (b *Binding) begin(c Contact) {
	b.contacts = append(b.contacts[:0], c)
	b.tracker.Start(b.contacts)
	b.state = StateTracking
	b.session = uuid.New()
	b.longPressFired = false
	b.pinchLost = false
	b.pulled = false
	b.lastPan = Vec2{}
	b.pullArmed = b.pullEnabled() && !b.refreshing && b.atTop()
	if b.opts.OnLongPress != nil {
		b.longPressTimer = b.clock.AfterFunc(b.th.LongPressDelay, b.longPressDue)
	}
	b.log.Debug("gesture session started",
		slog.String("session", b.session.String()),
		slog.Float64("x", c.X), slog.Float64("y", c.Y),
		slog.Bool("pull_armed", b.pullArmed))
}

func (b *Binding) pointerMove(e PointerEvent) {
	if b.state != StateTracking {
		return
	}
	i := b.indexOf(e.ID)
	if i < 0 {
		return
	}
	b.contacts[i].X, b.contacts[i].Y = e.X, e.Y
	b.tracker.Update(b.contacts)

	if b.longPressTimer != nil && b.tracker.Distance() > b.th.TapMaxDistance {
		b.stopLongPress()
	}

	pinching := false
	if b.opts.OnPinch != nil && !b.pinchLost && len(b.contacts) >= 2 {
		pinching = true
		if r, ok := ClassifyPinch(b.tracker, b.th); ok {
			b.opts.OnPinch(r)
			b.emit(pinchEvent(b.session, r))
		}
	}
	if b.state != StateTracking {
		return
	}
	if b.opts.OnPan != nil && !pinching {
		if r, ok := ClassifyPan(b.tracker, b.th); ok {
			r.StepX = r.DeltaX - b.lastPan.X
			r.StepY = r.DeltaY - b.lastPan.Y
			b.lastPan = Vec2{r.DeltaX, r.DeltaY}
			b.opts.OnPan(r)
			b.emit(panEvent(b.session, r))
		}
	}
	if b.state != StateTracking {
		return
	}
	if b.opts.OnPull != nil && b.pullArmed && !b.refreshing {
		if r, ok := ClassifyPull(b.tracker, b.th); ok {
			b.pulled = true
			b.opts.OnPull(r)
			b.emit(pullEvent(b.session, r))
		}
	}
}

func (b *Binding) pointerUp(e PointerEvent) {
	if b.state != StateTracking {
		return
	}
	i := b.indexOf(e.ID)
	if i < 0 {
		return
	}
	if len(b.contacts) > 1 {
		// One finger of several lifted: the session continues with the rest.
		// Losing either contact of the pinch pair ends pinching for good.
		if i < 2 {
			b.pinchLost = true
		}
		b.contacts = append(b.contacts[:i], b.contacts[i+1:]...)
		b.tracker.Update(b.contacts)
		if i == 0 {
			// Pan steps continue from the new primary's join position.
			b.lastPan = b.tracker.Delta()
		}
		b.log.Debug("contact left session",
			slog.String("session", b.session.String()), slog.Int("contacts", len(b.contacts)))
		return
	}
	b.contacts[i].X, b.contacts[i].Y = e.X, e.Y
	b.tracker.Update(b.contacts)
	b.stopLongPress()
	session := b.session
	recognized := false
	for _, classify := range b.release {
		if classify() {
			recognized = true
			break
		}
	}
	b.log.Debug("gesture session ended", slog.String("session", session.String()), slog.Bool("recognized", recognized))
	if b.state == StateTracking {
		b.reset()
	}
}

func (b *Binding) pointerCancel(e PointerEvent) {
	if b.state != StateTracking {
		return
	}
	b.log.Debug("gesture session cancelled",
		slog.String("session", b.session.String()), slog.Int("pointer", int(e.ID)))
	b.reset()
}

// reset ends the session without classifying it.
func (b *Binding) reset() {
	b.stopLongPress()
	b.tracker.End()
	b.contacts = b.contacts[:0]
	b.state = StateIdle
	b.pullArmed = false
	b.pulled = false
}

func (b *Binding) longPressDue() {
	b.longPressTimer = nil
	if b.state != StateTracking {
		return
	}
	r, ok := ClassifyLongPress(b.tracker, b.th)
	if !ok {
		return
	}
	b.longPressFired = true
	b.log.Debug("long press recognized", slog.String("session", b.session.String()))
	b.opts.OnLongPress(r)
	b.emit(longPressEvent(b.session, r))
}

func (b *Binding) stopLongPress() {
	if b.longPressTimer != nil {
		b.longPressTimer.Stop()
		b.longPressTimer = nil
	}
}

// --- release classifiers, in priority order ---

// releaseLongPress claims the release when the long press already fired, so
// the same hold is never also reported as a tap or swipe.
func (b *Binding) releaseLongPress() bool {
	return b.longPressFired
}

func (b *Binding) releaseTap() bool {
	r, ok := ClassifyTap(b.tracker, b.th)
	if !ok {
		return false
	}
	b.opts.OnTap(r)
	b.emit(tapEvent(b.session, r))
	return true
}

func (b *Binding) releaseSwipe() bool {
	r, ok := ClassifySwipe(b.tracker, b.th)
	if !ok {
		return false
	}
	b.opts.OnSwipe(r)
	b.emit(swipeEvent(b.session, r))
	return true
}

func (b *Binding) releasePull() bool {
	if !b.pullArmed || b.refreshing {
		return false
	}
	if b.opts.OnRefresh != nil {
		if r, ok := ClassifyRefresh(b.tracker, b.th); ok {
			b.refreshing = true
			r.Done = b.refreshDone
			b.log.Debug("refresh triggered", slog.Float64("pull", r.PullDistance))
			b.opts.OnRefresh(r)
			b.emit(refreshEvent(b.session, r))
			return true
		}
	}
	if b.opts.OnPullRelease == nil {
		return false
	}
	p, ok := ClassifyPull(b.tracker, b.th)
	if !ok && !b.pulled {
		return false
	}
	b.opts.OnPullRelease(p)
	b.emit(pullReleaseEvent(b.session, p))
	return true
}

func (b *Binding) refreshDone() {
	b.refreshing = false
}

// --- helpers ---

func (b *Binding) emit(e Event) {
	if b.opts.Sink == nil || b.state == StateDisposed {
		return
	}
	b.opts.Sink.EmitGesture(e)
	if b.log.Enabled(context.Background(), slog.LevelDebug) {
		b.log.Debug("gesture emitted", slog.String("kind", e.Kind.String()), slog.String("session", e.SessionID.String()))
	}
}

func (b *Binding) indexOf(id PointerID) int {
	for i := range b.contacts {
		if b.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *Binding) pullEnabled() bool {
	return b.opts.OnPull != nil || b.opts.OnRefresh != nil || b.opts.OnPullRelease != nil
}

func (b *Binding) atTop() bool {
	sc, ok := b.target.(Scroller)
	return !ok || sc.ScrollOffset() <= 0
}
