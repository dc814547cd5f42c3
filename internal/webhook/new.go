package webhook

import (
	"time"

	"task-tracker-app/internal/task"
	pkgLog "task-tracker-app/pkg/log"
)

const (
	defaultMaxRetries   = 3
	defaultRetryBackoff = 2 * time.Second
	processTimeout      = 2 * time.Minute
)

type Handler struct {
	uc           task.UseCase
	security     *SecurityValidator
	l            pkgLog.Logger
	maxRetries   int
	retryBackoff time.Duration
	done         func(task.SyncOutput, error) // test hook, called after processing
}

func NewHandler(
	uc task.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		uc:           uc,
		security:     NewSecurityValidator(securityConfig),
		l:            l,
		maxRetries:   defaultMaxRetries,
		retryBackoff: defaultRetryBackoff,
	}
}
