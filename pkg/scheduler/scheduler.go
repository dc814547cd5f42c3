// Package scheduler runs callbacks at local-midnight boundaries.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	pkgLog "task-tracker-app/pkg/log"
)

// Scheduler arms day-boundary timers in a fixed location.
type Scheduler struct {
	clock Clock
	loc   *time.Location
	l     pkgLog.Logger
}

// New creates a Scheduler. A nil location means the host's local zone.
func New(clock Clock, loc *time.Location, l pkgLog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{clock: clock, loc: loc, l: l}
}

// Handle controls one scheduled loop.
type Handle struct {
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	errs     chan error
}

// Cancel stops the loop. A callback whose timer has not fired yet is never run.
// Cancel is idempotent and safe to call from the callback itself.
func (h *Handle) Cancel() {
	h.stopOnce.Do(func() { close(h.stop) })
}

// Done is closed once the loop has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err delivers a re-arm failure that ended the loop.
func (h *Handle) Err() <-chan error {
	return h.errs
}

// OnError calls fn from a new goroutine with the re-arm failure that ended the
// loop. fn is not called when the loop stops without an error.
func (h *Handle) OnError(fn func(error)) {
	go func() {
		select {
		case err := <-h.errs:
			fn(err)
		case <-h.done:
			select {
			case err := <-h.errs:
				fn(err)
			default:
			}
		}
	}()
}

func (h *Handle) cancelled() bool {
	select {
	case <-h.stop:
		return true
	default:
		return false
	}
}

// UntilNextMidnight returns the delay from now to the next midnight in loc.
func UntilNextMidnight(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
	return next.Sub(now)
}

// ScheduleAtNextMidnight runs fn at every following midnight until the handle is
// cancelled or ctx is done. Each cycle recomputes its delay from the clock
// instead of adding 24h, so DST changes and host sleep do not accumulate drift.
// An error is returned only when the first timer cannot be armed.
func (s *Scheduler) ScheduleAtNextMidnight(ctx context.Context, fn func(ctx context.Context)) (*Handle, error) {
	if s.clock == nil {
		return nil, ErrTimerUnavailable
	}

	timer, err := s.arm()
	if err != nil {
		return nil, err
	}

	h := &Handle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
		errs: make(chan error, 1),
	}
	go s.loop(ctx, h, timer, fn)
	return h, nil
}

func (s *Scheduler) arm() (Timer, error) {
	d := UntilNextMidnight(s.clock.Now(), s.loc)
	timer, err := s.clock.NewTimer(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimerUnavailable, err)
	}
	if timer == nil {
		return nil, ErrTimerUnavailable
	}
	return timer, nil
}

func (s *Scheduler) loop(ctx context.Context, h *Handle, timer Timer, fn func(ctx context.Context)) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-h.stop:
			timer.Stop()
			return
		case <-timer.C():
		}

		if h.cancelled() || ctx.Err() != nil {
			return
		}

		if s.l != nil {
			s.l.Infof(ctx, "scheduler: midnight reached at %s", s.clock.Now().In(s.loc).Format(time.RFC3339))
		}
		fn(ctx)

		next, err := s.arm()
		if err != nil {
			if s.l != nil {
				s.l.Errorf(ctx, "scheduler: failed to re-arm midnight timer: %v", err)
			}
			h.errs <- err
			return
		}
		timer = next
	}
}
