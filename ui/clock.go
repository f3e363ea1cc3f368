package ui

import "time"

// FrameClock blocks until the next frame boundary. A late frame does not
// cause the following frames to run faster to catch up.
type FrameClock struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewFrameClock() *FrameClock {
	return &FrameClock{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Tick waits until 1/rate seconds have passed since the previous tick. The
// first call returns immediately.
func (c *FrameClock) Tick(rate int) {
	now := c.now()
	if c.last.IsZero() || rate <= 0 {
		c.last = now
		return
	}
	next := c.last.Add(time.Second / time.Duration(rate))
	if wait := next.Sub(now); wait > 0 {
		c.sleep(wait)
		c.last = next
		return
	}
	c.last = now
}
