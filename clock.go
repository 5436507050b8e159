package emotext

import "time"

// Clock is the animation time base, in seconds. It is owned by the frame
// loop: start at zero, advance once per frame by the measured frame
// duration, and pass Time to each render call of that frame.
//
// The zero value is a clock at time 0. Clock is not safe for concurrent use.
type Clock struct {
	t float64
}

// Advance moves the clock forward by dt seconds. Negative or NaN deltas are
// ignored so the clock never runs backwards.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.t += dt
	}
}

// Tick advances the clock by a frame duration.
func (c *Clock) Tick(d time.Duration) {
	c.Advance(d.Seconds())
}

// Time returns the current clock value.
func (c *Clock) Time() float64 {
	return c.t
}

// Reset sets the clock back to zero.
func (c *Clock) Reset() {
	c.t = 0
}
