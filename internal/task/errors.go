package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrInvalidMonth          = errors.New("invalid month id")
	ErrInvalidRange          = errors.New("invalid month range")
	ErrTaskSourceUnavailable = errors.New("task source unavailable")
	ErrMissingTaskID         = errors.New("task id is missing")
	ErrUnknownEvent          = errors.New("unknown task event")
)
