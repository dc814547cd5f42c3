package scheduler

import "time"

// Clock provides the current time and one-shot timers.
// Core logic depends on this interface so tests can drive time by hand.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) (Timer, error)
}

// Timer is a one-shot timer.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// RealClock uses the system clock.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NewTimer arms a system timer.
func (RealClock) NewTimer(d time.Duration) (Timer, error) {
	return realTimer{t: time.NewTimer(d)}, nil
}

type realTimer struct {
	t *time.Timer
}

func (r realTimer) C() <-chan time.Time { return r.t.C }
func (r realTimer) Stop() bool          { return r.t.Stop() }

var _ Clock = RealClock{}
