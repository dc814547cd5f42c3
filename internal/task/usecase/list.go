package usecase

import (
	"context"

	"task-tracker-app/internal/access"
	"task-tracker-app/internal/model"
	"task-tracker-app/internal/task"
)

// List returns the viewer's visible tasks for one month in source order.
func (uc *implUseCase) List(ctx context.Context, viewer model.Viewer, input task.ListInput) (task.ListOutput, error) {
	monthID, err := uc.resolveMonth(input.MonthID)
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, err := uc.loadTasks(ctx, monthID)
	if err != nil {
		return task.ListOutput{}, err
	}

	visible := visibleInMonth(tasks, viewer, access.EffectiveScope(viewer, input.Scope), monthID)
	return task.ListOutput{
		MonthID: monthID,
		Tasks:   visible,
		Count:   len(visible),
	}, nil
}
