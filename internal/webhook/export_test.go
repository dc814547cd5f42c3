package webhook

import (
	"time"

	"task-tracker-app/internal/task"
)

// SetRetryPolicy shortens retries for tests.
func (h *Handler) SetRetryPolicy(maxRetries int, backoff time.Duration) {
	h.maxRetries = maxRetries
	h.retryBackoff = backoff
}

// OnProcessed registers a callback run after each background sync.
func (h *Handler) OnProcessed(fn func(task.SyncOutput, error)) {
	h.done = fn
}
