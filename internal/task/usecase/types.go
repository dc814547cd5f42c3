package usecase

import "task-tracker-app/internal/analytics"

// computed is what the result cache stores. Monthly fingerprints fill result,
// weekly fingerprints fill weeks.
type computed struct {
	result analytics.AggregateResult
	weeks  []analytics.WeekMetrics
}
