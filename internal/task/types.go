package task

import (
	"time"

	"task-tracker-app/internal/analytics"
	"task-tracker-app/internal/model"
	"task-tracker-app/internal/task/adapter"
)

// MaxRangeMonths bounds RangeMetrics.
const MaxRangeMonths = 12

// Task change events accepted by Sync.
const (
	EventCreated = "task.created"
	EventUpdated = "task.updated"
	EventDeleted = "task.deleted"
)

// MetricsInput selects a month and an optional scope.
type MetricsInput struct {
	MonthID string
	Scope   model.ScopeFilter
}

// MetricsOutput is one month's aggregate.
type MetricsOutput struct {
	MonthID     string
	Result      analytics.AggregateResult
	Fingerprint string
	ComputedAt  time.Time
	Cached      bool
}

// RangeMetricsInput selects an inclusive month range.
type RangeMetricsInput struct {
	FromMonthID string
	ToMonthID   string
	Scope       model.ScopeFilter
}

// RangeMetricsOutput merges the months of a range.
type RangeMetricsOutput struct {
	FromMonthID string
	ToMonthID   string
	Months      []MetricsOutput
	Result      analytics.AggregateResult
}

// WeeksInput selects a month and an optional scope.
type WeeksInput struct {
	MonthID string
	Scope   model.ScopeFilter
}

// WeeksOutput lists the month's business weeks with their aggregates.
type WeeksOutput struct {
	MonthID           string
	CurrentWeekNumber int
	Weeks             []analytics.WeekMetrics
	Cached            bool
}

// ListInput selects a month and an optional scope.
type ListInput struct {
	MonthID string
	Scope   model.ScopeFilter
}

// ListOutput is the viewer's visible tasks for the month.
type ListOutput struct {
	MonthID string
	Tasks   []model.Task
	Count   int
}

// InvalidateInput selects what to drop. An empty MonthID drops everything.
type InvalidateInput struct {
	MonthID string
}

// InvalidateOutput reports how many cache entries were removed.
type InvalidateOutput struct {
	Removed int
}

// SyncInput is a task change notification.
type SyncInput struct {
	Event  string
	Record adapter.Record
}

// SyncOutput reports what Sync did.
type SyncOutput struct {
	TaskID  string
	MonthID string
	Applied bool // the change was written to the task source
	Removed int  // cache entries invalidated
}
