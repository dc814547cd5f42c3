package usecase_test

import (
	"context"
	"errors"
	"time"

	"task-tracker-app/internal/task/adapter"
	"task-tracker-app/internal/task/repository"
	"task-tracker-app/internal/task/repository/memory"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeClock is advanced manually by tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// failingRepo is a task source that is always down.
type failingRepo struct{}

func (failingRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]adapter.Record, error) {
	return nil, errors.New("connection refused")
}

// countingRepo records how often the source is read.
type countingRepo struct {
	repository.TaskRepository
	calls int
}

func (r *countingRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]adapter.Record, error) {
	r.calls++
	return r.TaskRepository.ListTasks(ctx, opt)
}

// seedRecords is June 2024 plus one May task, in UTC.
func seedRecords() []adapter.Record {
	return []adapter.Record{
		{
			"id": "t1", "ownerId": "u1", "reporterId": "r1", "createdAt": "2024-06-03T10:00:00Z",
			"hoursSpent": 2, "aiUsed": true, "aiHoursSpent": 1, "product": "P", "markets": []any{"US"},
		},
		{"id": "t2", "ownerId": "u2", "reporterId": "r1", "createdAt": "2024-06-10T10:00:00Z", "hoursSpent": 3},
		{"id": "t3", "ownerId": "u1", "reporterId": "r2", "createdAt": "2024-05-20T10:00:00Z", "hoursSpent": 5},
		{"id": "t4", "ownerId": "u1", "createdAt": "2024-06-15T10:00:00Z", "hoursSpent": 1, "reworked": true},
	}
}

func newMemoryRepo() repository.TaskRepository {
	return memory.New(seedRecords()...)
}
