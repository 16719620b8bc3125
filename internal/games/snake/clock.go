package snake

import "time"

// Clock gates simulation steps on a fast, fixed-rate host poll.
// It fires at most once per interval and never replays missed intervals,
// so the game can never run faster than the poll.
type Clock struct {
	interval time.Duration
	lastFire time.Duration
}

// NewClock creates a clock with the given interval, counting from zero.
func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Fire reports whether a step is due at now (time since game start).
// A true result restarts the interval from now.
func (c *Clock) Fire(now time.Duration) bool {
	if now-c.lastFire < c.interval {
		return false
	}
	c.lastFire = now
	return true
}

// SetInterval changes the interval. The next fire is measured from the last one.
func (c *Clock) SetInterval(interval time.Duration) {
	c.interval = interval
}

// Interval returns the current interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Reset restarts timing from now.
func (c *Clock) Reset(now time.Duration) {
	c.lastFire = now
}
