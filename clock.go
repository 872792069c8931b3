package gesture

import (
	"sort"
	"time"
)

// Clock supplies the current time and single-shot timers to a Binding.
// Timer callbacks must run on the goroutine that dispatches pointer events;
// both implementations in this package fire them synchronously from Tick or
// Advance, so a Stop before that call always prevents the callback.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// ClockSource is implemented by targets that own the clock their bindings
// should use.
type ClockSource interface {
	Clock() Clock
}

// --- timer queue shared by FrameClock and ManualClock ---

type pendingTimer struct {
	q       *timerQueue
	seq     uint64
	when    time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *pendingTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.q.remove(t)
	return true
}

type timerQueue struct {
	timers []*pendingTimer
	seq    uint64
}

func (q *timerQueue) add(when time.Time, fn func()) *pendingTimer {
	q.seq++
	t := &pendingTimer{q: q, seq: q.seq, when: when, fn: fn}
	q.timers = append(q.timers, t)
	return t
}

func (q *timerQueue) remove(t *pendingTimer) {
	for i := range q.timers {
		if q.timers[i] == t {
			copy(q.timers[i:], q.timers[i+1:])
			q.timers[len(q.timers)-1] = nil
			q.timers = q.timers[:len(q.timers)-1]
			return
		}
	}
}

// fire runs every timer due at now, earliest first. Timers scheduled by a
// callback are eligible in the same pass if they are already due.
func (q *timerQueue) fire(now time.Time) int {
	n := 0
	for {
		next := q.nextDue(now)
		if next == nil {
			return n
		}
		q.remove(next)
		next.fired = true
		next.fn()
		n++
	}
}

func (q *timerQueue) nextDue(now time.Time) *pendingTimer {
	var best *pendingTimer
	for _, t := range q.timers {
		if t.when.After(now) {
			continue
		}
		if best == nil || t.when.Before(best.when) || (t.when.Equal(best.when) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (q *timerQueue) deadlines() []time.Time {
	out := make([]time.Time, len(q.timers))
	for i, t := range q.timers {
		out[i] = t.when
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// --- FrameClock ---

// FrameClock reads wall time and fires due timers when Tick is called. Call
// Tick once per frame from the update loop that also dispatches input.
type FrameClock struct {
	now   func() time.Time
	queue timerQueue
}

// NewFrameClock returns a FrameClock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Now returns the current wall time.
func (c *FrameClock) Now() time.Time {
	return c.now()
}

// AfterFunc schedules fn to run on the first Tick at or after d from now.
func (c *FrameClock) AfterFunc(d time.Duration, fn func()) Timer {
	return c.queue.add(c.now().Add(d), fn)
}

// Tick runs all due timers and returns how many fired.
func (c *FrameClock) Tick() int {
	return c.queue.fire(c.now())
}

// Pending returns the number of scheduled timers.
func (c *FrameClock) Pending() int {
	return len(c.queue.timers)
}

// --- ManualClock ---

// ManualClock is a virtual clock for tests and scripted replays. Time only
// moves through Advance and Set.
type ManualClock struct {
	t     time.Time
	queue timerQueue
}

// NewManualClock returns a ManualClock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the virtual time.
func (c *ManualClock) Now() time.Time {
	return c.t
}

// AfterFunc schedules fn to run once the virtual time reaches now+d.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) Timer {
	return c.queue.add(c.t.Add(d), fn)
}

// Advance moves the virtual time forward by d, firing due timers in
// deadline order with the clock set to each timer's deadline.
func (c *ManualClock) Advance(d time.Duration) {
	c.Set(c.t.Add(d))
}

// Set moves the virtual time to t. A t before Now is ignored.
func (c *ManualClock) Set(t time.Time) {
	if t.Before(c.t) {
		return
	}
	for {
		next := c.queue.nextDue(t)
		if next == nil {
			break
		}
		if next.when.After(c.t) {
			c.t = next.when
		}
		c.queue.remove(next)
		next.fired = true
		next.fn()
	}
	c.t = t
}

// Pending returns the number of scheduled timers.
func (c *ManualClock) Pending() int {
	return len(c.queue.timers)
}

// Deadlines returns the scheduled deadlines in order.
func (c *ManualClock) Deadlines() []time.Time {
	return c.queue.deadlines()
}
