package usecase

import (
	"context"

	"task-tracker-app/internal/analytics"
	"task-tracker-app/internal/task"
)

// Invalidate drops cached aggregates for one month, or every entry when
// MonthID is empty.
func (uc *implUseCase) Invalidate(ctx context.Context, input task.InvalidateInput) (task.InvalidateOutput, error) {
	if input.MonthID == "" {
		removed := uc.cache.InvalidateAll()
		uc.l.Infof(ctx, "task.usecase.Invalidate: dropped all %d cache entries", removed)
		return task.InvalidateOutput{Removed: removed}, nil
	}

	t, err := uc.cal.ParseMonthID(input.MonthID)
	if err != nil {
		return task.InvalidateOutput{}, task.ErrInvalidMonth
	}
	monthID := uc.cal.MonthID(t)

	removed := uc.cache.Invalidate(analytics.ForMonth(monthID))
	uc.l.Infof(ctx, "task.usecase.Invalidate: dropped %d cache entries for %s", removed, monthID)
	return task.InvalidateOutput{Removed: removed}, nil
}
