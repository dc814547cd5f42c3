package middleware

import (
	"task-tracker-app/pkg/log"
	"task-tracker-app/pkg/ratelimit"
	"task-tracker-app/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *ratelimit.Limiter
}

// New creates the middleware set. requestsPerMin bounds each viewer's API
// calls; zero disables the limit.
func New(l log.Logger, jwtManager scope.Manager, requestsPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    ratelimit.New(requestsPerMin),
	}
}
