package fruit

import "time"

// Scheduler is the timed-callback capability components are handed.
// Callbacks run on the caller's goroutine during Clock.Advance.
type Scheduler interface {
	// Every runs fn each period, first firing one period from now.
	Every(period time.Duration, fn func())
	// After runs fn once, delay from now.
	After(delay time.Duration, fn func())
}

// Clock is a virtual-time Scheduler driven by the frame loop.
// Time only moves when Advance is called, which keeps sessions
// deterministic under test and frozen while paused.
type Clock struct {
	now    time.Duration
	timers []*timer
	seq    uint64
}

type timer struct {
	at     time.Duration
	period time.Duration // 0 for one-shot
	seq    uint64
	fn     func()
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the virtual time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Every schedules a repeating callback. Non-positive periods are raised to
// one millisecond so Advance always terminates.
func (c *Clock) Every(period time.Duration, fn func()) {
	if period <= 0 {
		period = time.Millisecond
	}
	c.add(&timer{at: c.now + period, period: period, fn: fn})
}

// After schedules a one-shot callback.
func (c *Clock) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	c.add(&timer{at: c.now + delay, fn: fn})
}

func (c *Clock) add(t *timer) {
	c.seq++
	t.seq = c.seq
	c.timers = append(c.timers, t)
}

// Pending returns the number of scheduled callbacks.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// Advance moves time forward by dt, firing due callbacks in time order.
// Callbacks due at the same instant fire in scheduling order. A callback
// scheduled during Advance fires in the same call if it falls due in range.
func (c *Clock) Advance(dt time.Duration) {
	target := c.now + dt
	for {
		idx := c.nextDue(target)
		if idx < 0 {
			break
		}
		t := c.timers[idx]
		c.now = t.at
		if t.period > 0 {
			t.at += t.period
		} else {
			c.timers = append(c.timers[:idx], c.timers[idx+1:]...)
		}
		t.fn()
	}
	c.now = target
}

// nextDue returns the index of the earliest timer due by target, or -1.
func (c *Clock) nextDue(target time.Duration) int {
	best := -1
	for i, t := range c.timers {
		if t.at > target {
			continue
		}
		if best < 0 || t.at < c.timers[best].at ||
			(t.at == c.timers[best].at && t.seq < c.timers[best].seq) {
			best = i
		}
	}
	return best
}
