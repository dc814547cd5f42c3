package scheduler

import "errors"

// ErrTimerUnavailable means the host could not arm a timer. It is the one
// failure that must reach the caller, since a missed re-arm leaves data stale
// forever.
var ErrTimerUnavailable = errors.New("scheduler: timer unavailable")
