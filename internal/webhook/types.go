package webhook

import "task-tracker-app/internal/task/adapter"

// SignatureHeader carries "sha256=<hex>" of the HMAC of the raw body.
const SignatureHeader = "X-Signature-256"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// TaskEventPayload is a task change notification from the task tracker.
type TaskEventPayload struct {
	Event string         `json:"event"` // task.created, task.updated or task.deleted
	Task  adapter.Record `json:"task"`
}
