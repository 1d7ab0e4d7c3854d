package app

// Clock reports seconds elapsed since it was created, read from a host time source.
type Clock struct {
	now   func() float64
	start float64
}

// NewClock starts a clock on the given time source.
func NewClock(now func() float64) *Clock {
	return &Clock{now: now, start: now()}
}

// Elapsed returns seconds since NewClock.
func (c *Clock) Elapsed() float64 {
	return c.now() - c.start
}
