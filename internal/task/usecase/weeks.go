package usecase

import (
	"context"

	"task-tracker-app/internal/access"
	"task-tracker-app/internal/analytics"
	"task-tracker-app/internal/model"
	"task-tracker-app/internal/task"
)

// Weeks returns the month's business weeks, each with the aggregate of the
// viewer's visible tasks created in it.
func (uc *implUseCase) Weeks(ctx context.Context, viewer model.Viewer, input task.WeeksInput) (task.WeeksOutput, error) {
	monthID, err := uc.resolveMonth(input.MonthID)
	if err != nil {
		return task.WeeksOutput{}, err
	}

	tasks, err := uc.loadTasks(ctx, monthID)
	if err != nil {
		return task.WeeksOutput{}, err
	}

	scope := access.EffectiveScope(viewer, input.Scope)
	visible := visibleInMonth(tasks, viewer, scope, monthID)
	weeks := uc.cal.WeeksInMonth(monthID)

	fp := analytics.NewFingerprint(analytics.KindWeekly, fingerprintScope(monthID, scope), visible)
	entry, hit := uc.cache.GetOrCompute(fp, func() computed {
		uc.l.Debugf(ctx, "task.usecase.Weeks: computing %s over %d tasks", monthID, len(visible))
		return computed{weeks: analytics.AggregateWeeks(visible, weeks, uc.cal)}
	})

	return task.WeeksOutput{
		MonthID:           monthID,
		CurrentWeekNumber: uc.cal.CurrentWeekNumber(monthID, uc.now()),
		Weeks:             entry.Data.weeks,
		Cached:            hit,
	}, nil
}
