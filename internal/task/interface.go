package task

import (
	"context"

	"task-tracker-app/internal/model"
)

// UseCase defines the business logic interface for the task metrics domain.
type UseCase interface {
	// Metrics returns the aggregate of the viewer's visible tasks for one month.
	Metrics(ctx context.Context, viewer model.Viewer, input MetricsInput) (MetricsOutput, error)

	// RangeMetrics merges monthly aggregates over an inclusive month range.
	RangeMetrics(ctx context.Context, viewer model.Viewer, input RangeMetricsInput) (RangeMetricsOutput, error)

	// Weeks returns the month's business weeks with per-week aggregates.
	Weeks(ctx context.Context, viewer model.Viewer, input WeeksInput) (WeeksOutput, error)

	// List returns the viewer's visible tasks for one month.
	List(ctx context.Context, viewer model.Viewer, input ListInput) (ListOutput, error)

	// Invalidate drops cached aggregates for a month, or all of them.
	Invalidate(ctx context.Context, input InvalidateInput) (InvalidateOutput, error)

	// Sync applies a task change notification and invalidates the affected month.
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)
}
