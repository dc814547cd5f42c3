package usecase

import (
	"context"
	"fmt"

	"task-tracker-app/internal/access"
	"task-tracker-app/internal/analytics"
	"task-tracker-app/internal/model"
	"task-tracker-app/internal/task"
	"task-tracker-app/internal/task/adapter"
	"task-tracker-app/internal/task/repository"
)

// resolveMonth accepts a YYYY-MM key, a relative expression or "" (current month).
func (uc *implUseCase) resolveMonth(expr string) (string, error) {
	monthID, err := uc.cal.ResolveMonth(expr, uc.now())
	if err != nil {
		return "", fmt.Errorf("%w: %q", task.ErrInvalidMonth, expr)
	}
	return monthID, nil
}

// loadTasks fetches and normalizes the source's records. monthID is only a
// hint to the source; callers filter by month themselves.
func (uc *implUseCase) loadTasks(ctx context.Context, monthID string) ([]model.Task, error) {
	recs, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{MonthID: monthID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.loadTasks: source failed for %q: %v", monthID, err)
		return nil, fmt.Errorf("%w: %v", task.ErrTaskSourceUnavailable, err)
	}
	return adapter.ToTasks(recs, uc.cal), nil
}

// visibleInMonth narrows tasks to monthID and to what viewer may see.
func visibleInMonth(tasks []model.Task, viewer model.Viewer, scope model.ScopeFilter, monthID string) []model.Task {
	inMonth := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.MonthID == monthID {
			inMonth = append(inMonth, t)
		}
	}
	return access.Filter(inMonth, viewer, scope)
}

func fingerprintScope(monthID string, scope model.ScopeFilter) analytics.FingerprintScope {
	return analytics.FingerprintScope{
		MonthID:    monthID,
		UserID:     scope.SelectedUserID,
		ReporterID: scope.SelectedReporterID,
	}
}

// monthMetrics returns the cached aggregate of visible, or computes and
// stores it.
func (uc *implUseCase) monthMetrics(ctx context.Context, monthID string, scope model.ScopeFilter, visible []model.Task) task.MetricsOutput {
	fp := analytics.NewFingerprint(analytics.KindMonthly, fingerprintScope(monthID, scope), visible)
	entry, hit := uc.cache.GetOrCompute(fp, func() computed {
		uc.l.Debugf(ctx, "task.usecase.monthMetrics: computing %s over %d tasks", monthID, len(visible))
		return computed{result: analytics.Aggregate(visible, uc.cal)}
	})
	if hit {
		uc.l.Debugf(ctx, "task.usecase.monthMetrics: cache hit for %s", monthID)
	}

	return task.MetricsOutput{
		MonthID:     monthID,
		Result:      entry.Data.result,
		Fingerprint: fp.String(),
		ComputedAt:  entry.ComputedAt.In(uc.cal.Location()),
		Cached:      hit,
	}
}
