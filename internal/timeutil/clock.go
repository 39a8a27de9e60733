package timeutil

import (
	"sync/atomic"
	"time"
)

const (
	layoutClockTime = "15:04:05"
	layoutClockDate = "Monday, January 2, 2006"
)

// Readout is the current time/date pair shown in the page header.
type Readout struct {
	Time string
	Date string
}

// Clock drives the live "current time / current date" display. It refreshes
// once a second with no drift correction and runs for the life of the
// process, mirroring the interval timer it replaces.
type Clock struct {
	now     func() time.Time
	current atomic.Value
}

func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.refresh()
	return c
}

// Start launches the 1-second refresh loop. The ticker is never stopped.
func (c *Clock) Start() {
	go func() {
		ticker := time.NewTicker(time.Second)
		for range ticker.C {
			c.refresh()
		}
	}()
}

func (c *Clock) refresh() {
	now := c.now()
	c.current.Store(Readout{
		Time: now.Format(layoutClockTime),
		Date: now.Format(layoutClockDate),
	})
}

// Current returns the latest readout.
func (c *Clock) Current() Readout {
	r, _ := c.current.Load().(Readout)
	return r
}
