package engine

import (
	"time"

	"github.com/lixenwraith/space-invaders/core"
)

// Clock paces the frame loop and keeps recent frame timestamps for fps reporting
type Clock struct {
	time    TimeSource
	sleep   func(time.Duration)
	history *core.DroppingBuffer[time.Time]
	last    time.Time
	frames  uint64
}

// NewClock creates a clock keeping history frame timestamps
// sleep defaults to time.Sleep when nil
func NewClock(ts TimeSource, history int, sleep func(time.Duration)) *Clock {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Clock{
		time:    ts,
		sleep:   sleep,
		history: core.NewDroppingBuffer[time.Time](history),
	}
}

// Tick ends a frame: sleeps what is left of the 1/fps budget since the previous tick,
// then records the frame timestamp
// Never sleeps when the frame already overran; fps <= 0 disables the cap
func (c *Clock) Tick(fps int) {
	now := c.time.Now()
	if fps > 0 && !c.last.IsZero() {
		budget := time.Second / time.Duration(fps)
		if remaining := budget - now.Sub(c.last); remaining > 0 {
			c.sleep(remaining)
			now = c.time.Now()
		}
	}
	c.last = now
	c.frames++
	c.history.Put(now)
}

// Frames returns the number of ticks so far
func (c *Clock) Frames() uint64 {
	return c.frames
}

// AvgFrameTime returns the mean delta between recorded frames, 0 with fewer than two
func (c *Clock) AvgFrameTime() time.Duration {
	n := c.history.Len()
	if n < 2 {
		return 0
	}
	first := c.history.At(0)
	last, _ := c.history.Last()
	return last.Sub(first) / time.Duration(n-1)
}

// FPS returns frames per second over the history window, -1 when unknown
func (c *Clock) FPS() float64 {
	avg := c.AvgFrameTime()
	if avg <= 0 {
		return -1
	}
	return float64(time.Second) / float64(avg)
}
