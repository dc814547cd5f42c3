package repository

import (
	"context"

	"task-tracker-app/internal/task/adapter"
)

// TaskRepository is the read side of a task source. Records are returned raw;
// normalization happens in the adapter.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]adapter.Record, error)
}

// TaskWriter is implemented by task sources this service may update in place
// (e.g. the in-memory snapshot fed by change notifications).
type TaskWriter interface {
	UpsertTask(ctx context.Context, rec adapter.Record) error
	RemoveTask(ctx context.Context, id string) error
}
