package scope

import "errors"

var (
	ErrMissingSecret  = errors.New("jwt secret not configured")
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingSubject = errors.New("subject claim required")
)
