package game

import "time"

// Timer is a one-shot window: active from Start until duration has elapsed
// on the caller's clock. It never reads the real clock itself.
type Timer struct {
	duration time.Duration
	start    time.Time
	active   bool
}

// NewTimer returns an inactive timer of the given length.
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// Start (re)activates the timer at now.
func (t *Timer) Start(now time.Time) {
	t.start = now
	t.active = true
}

// Active reports whether the timer is running. It does not expire the timer;
// call Expire for that.
func (t *Timer) Active() bool { return t.active }

// Expire clears the timer once strictly more than its duration has elapsed
// and reports whether it did so on this call.
func (t *Timer) Expire(now time.Time) bool {
	if !t.active || now.Sub(t.start) <= t.duration {
		return false
	}
	t.active = false
	return true
}

// Elapsed returns time since Start, or 0 when inactive.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	if !t.active {
		return 0
	}
	return now.Sub(t.start)
}

// Remaining returns the time left before expiry, floored at 0.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if !t.active {
		return 0
	}
	left := t.duration - now.Sub(t.start)
	if left < 0 {
		return 0
	}
	return left
}

// Shift moves the start forward by d so a paused interval is not counted.
func (t *Timer) Shift(d time.Duration) {
	if t.active {
		t.start = t.start.Add(d)
	}
}
