package usecase

import (
	"context"
	"fmt"

	"task-tracker-app/internal/access"
	"task-tracker-app/internal/analytics"
	"task-tracker-app/internal/model"
	"task-tracker-app/internal/task"
)

// Metrics returns the aggregate of the viewer's visible tasks for one month.
func (uc *implUseCase) Metrics(ctx context.Context, viewer model.Viewer, input task.MetricsInput) (task.MetricsOutput, error) {
	monthID, err := uc.resolveMonth(input.MonthID)
	if err != nil {
		return task.MetricsOutput{}, err
	}

	tasks, err := uc.loadTasks(ctx, monthID)
	if err != nil {
		return task.MetricsOutput{}, err
	}

	scope := access.EffectiveScope(viewer, input.Scope)
	visible := visibleInMonth(tasks, viewer, scope, monthID)
	return uc.monthMetrics(ctx, monthID, scope, visible), nil
}

// RangeMetrics aggregates each month of an inclusive range and merges them.
// An empty ToMonthID means a single month.
func (uc *implUseCase) RangeMetrics(ctx context.Context, viewer model.Viewer, input task.RangeMetricsInput) (task.RangeMetricsOutput, error) {
	from, err := uc.resolveMonth(input.FromMonthID)
	if err != nil {
		return task.RangeMetricsOutput{}, err
	}
	to := from
	if input.ToMonthID != "" {
		if to, err = uc.resolveMonth(input.ToMonthID); err != nil {
			return task.RangeMetricsOutput{}, err
		}
	}

	months, err := uc.monthsBetween(from, to)
	if err != nil {
		return task.RangeMetricsOutput{}, err
	}

	tasks, err := uc.loadTasks(ctx, "")
	if err != nil {
		return task.RangeMetricsOutput{}, err
	}

	scope := access.EffectiveScope(viewer, input.Scope)
	out := task.RangeMetricsOutput{
		FromMonthID: from,
		ToMonthID:   to,
		Months:      make([]task.MetricsOutput, 0, len(months)),
		Result:      analytics.NewAggregateResult(),
	}
	for _, monthID := range months {
		m := uc.monthMetrics(ctx, monthID, scope, visibleInMonth(tasks, viewer, scope, monthID))
		out.Months = append(out.Months, m)
		out.Result = analytics.Merge(out.Result, m.Result)
	}
	return out, nil
}

// monthsBetween lists the month ids from..to inclusive.
func (uc *implUseCase) monthsBetween(from, to string) ([]string, error) {
	if from > to {
		return nil, fmt.Errorf("%w: %s is after %s", task.ErrInvalidRange, from, to)
	}

	months := []string{from}
	for cur := from; cur != to; {
		next, err := uc.cal.AddMonths(cur, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", task.ErrInvalidRange, err)
		}
		months = append(months, next)
		if len(months) > task.MaxRangeMonths {
			return nil, fmt.Errorf("%w: more than %d months", task.ErrInvalidRange, task.MaxRangeMonths)
		}
		cur = next
	}
	return months, nil
}
