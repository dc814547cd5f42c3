// Package memory is an in-process task snapshot store.
package memory

import (
	"context"
	"errors"
	"sync"

	"task-tracker-app/internal/task/adapter"
	"task-tracker-app/internal/task/repository"
)

// ErrMissingID is returned when a record has no resolvable id.
var ErrMissingID = errors.New("memory: record has no id")

type implRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]adapter.Record
}

var (
	_ repository.TaskRepository = (*implRepository)(nil)
	_ repository.TaskWriter     = (*implRepository)(nil)
)

// New creates a store seeded with recs. Records without an id are dropped.
func New(recs ...adapter.Record) *implRepository {
	r := &implRepository{byID: make(map[string]adapter.Record, len(recs))}
	for _, rec := range recs {
		_ = r.upsert(rec)
	}
	return r
}

// ListTasks returns a snapshot of every record in insertion order. The month
// option is ignored; callers filter after normalization.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]adapter.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adapter.Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneRecord(r.byID[id]))
	}
	return out, nil
}

// UpsertTask inserts or replaces a record by id.
func (r *implRepository) UpsertTask(ctx context.Context, rec adapter.Record) error {
	return r.upsert(rec)
}

// RemoveTask deletes a record. Removing an unknown id is a no-op.
func (r *implRepository) RemoveTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a copy of the record stored under id.
func (r *implRepository) Get(id string) (adapter.Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return cloneRecord(rec), true
}

func (r *implRepository) upsert(rec adapter.Record) error {
	id := adapter.RecordID(rec)
	if id == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = cloneRecord(rec)
	return nil
}

// cloneRecord copies rec along with any nested objects and lists, so neither
// the writer nor a reader can mutate stored state.
func cloneRecord(rec adapter.Record) adapter.Record {
	out := make(adapter.Record, len(rec))
	for k, v := range rec {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case adapter.Record:
		return cloneRecord(val)
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}
