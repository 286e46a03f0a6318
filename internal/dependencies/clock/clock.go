package clock

import "time"

// StopFunc cancels a scheduled callback. It reports whether the cancellation
// prevented the callback from running.
type StopFunc func() bool

// Clock provides time and scheduling operations that can be mocked for
// testing. The room actor drives all of its timed presentation sequences
// through AfterFunc rather than sleeping, so tests can step through a
// countdown without waiting for wall-clock delays.
type Clock interface {
	Now() time.Time

	// AfterFunc schedules f to run after d on an unspecified goroutine
	AfterFunc(d time.Duration, f func()) StopFunc
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f using time.AfterFunc
func (c *RealClock) AfterFunc(d time.Duration, f func()) StopFunc {
	t := time.AfterFunc(d, f)
	return t.Stop
}
