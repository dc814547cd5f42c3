// Package rest reads tasks from an upstream task tracker over HTTP.
package rest

import (
	"context"

	"task-tracker-app/internal/task/adapter"
	"task-tracker-app/internal/task/repository"
	pkgLog "task-tracker-app/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a read-only repository backed by the REST client.
func New(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]adapter.Record, error) {
	recs, err := r.client.ListTasks(ctx, opt.MonthID)
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to list tasks for %q: %v", opt.MonthID, err)
		return nil, err
	}
	r.l.Debugf(ctx, "rest repository: fetched %d records for %q", len(recs), opt.MonthID)
	return recs, nil
}
