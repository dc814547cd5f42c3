package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-tracker-app/internal/task"
	"task-tracker-app/internal/task/adapter"
	"task-tracker-app/internal/task/repository"
)

// Sync applies a task change notification. Writable sources are updated in
// place; read-only sources are assumed to already hold the change. Either way
// the affected month is invalidated, or the whole cache when the month is
// unknown.
func (uc *implUseCase) Sync(ctx context.Context, input task.SyncInput) (task.SyncOutput, error) {
	event := strings.ToLower(strings.TrimSpace(input.Event))
	switch event {
	case task.EventCreated, task.EventUpdated, task.EventDeleted:
	default:
		return task.SyncOutput{}, fmt.Errorf("%w: %q", task.ErrUnknownEvent, input.Event)
	}

	id := adapter.RecordID(input.Record)
	if id == "" {
		return task.SyncOutput{}, task.ErrMissingTaskID
	}

	out := task.SyncOutput{
		TaskID:  id,
		MonthID: adapter.MonthOf(input.Record, uc.cal),
	}

	if writer, ok := uc.repo.(repository.TaskWriter); ok {
		var err error
		if event == task.EventDeleted {
			err = writer.RemoveTask(ctx, id)
		} else {
			err = writer.UpsertTask(ctx, input.Record)
		}
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.Sync: failed to apply %s for %s: %v", event, id, err)
			return task.SyncOutput{}, fmt.Errorf("%w: %v", task.ErrTaskSourceUnavailable, err)
		}
		out.Applied = true
	}

	inv, err := uc.Invalidate(ctx, task.InvalidateInput{MonthID: out.MonthID})
	if err != nil {
		return task.SyncOutput{}, err
	}
	out.Removed = inv.Removed

	uc.l.Infof(ctx, "task.usecase.Sync: %s %s (month=%q applied=%t removed=%d)", event, id, out.MonthID, out.Applied, out.Removed)
	return out, nil
}
