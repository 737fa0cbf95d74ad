package frame

import "time"

// Counter measures frames per second over one second windows.
type Counter struct {
	frames     int
	windowFrom time.Time
	last       float64
}

func NewCounter(now time.Time) *Counter {
	return &Counter{windowFrom: now}
}

// Tick counts a frame. It returns the rate and true when a window closes.
func (c *Counter) Tick(now time.Time) (float64, bool) {
	c.frames++
	elapsed := now.Sub(c.windowFrom)
	if elapsed < time.Second {
		return c.last, false
	}
	c.last = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.windowFrom = now
	return c.last, true
}

// FPS is the rate of the last closed window.
func (c *Counter) FPS() float64 { return c.last }
