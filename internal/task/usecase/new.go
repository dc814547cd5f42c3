package usecase

import (
	"time"

	"task-tracker-app/internal/analytics"
	"task-tracker-app/internal/task"
	"task-tracker-app/internal/task/repository"
	"task-tracker-app/pkg/cache"
	"task-tracker-app/pkg/datemath"
	pkgLog "task-tracker-app/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.TaskRepository
	cal   *datemath.Calendar
	cache *cache.Cache[analytics.Fingerprint, computed]
	now   func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance. The use case owns its result cache;
// cacheCfg.Now also serves as the clock for "current month" resolution.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	cal *datemath.Calendar,
	cacheCfg cache.Config,
) *implUseCase {
	now := cacheCfg.Now
	if now == nil {
		now = time.Now
	}
	cacheCfg.Now = now

	return &implUseCase{
		l:     l,
		repo:  repo,
		cal:   cal,
		cache: cache.New[analytics.Fingerprint, computed](cacheCfg),
		now:   now,
	}
}

// CacheStats exposes the result cache counters.
func (uc *implUseCase) CacheStats() cache.Stats {
	return uc.cache.Stats()
}
