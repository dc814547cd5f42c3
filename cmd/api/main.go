package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-tracker-app/config"
	_ "task-tracker-app/docs" // Swagger docs
	"task-tracker-app/internal/httpserver"
	"task-tracker-app/internal/middleware"
	"task-tracker-app/internal/task"
	taskHTTP "task-tracker-app/internal/task/delivery/http"
	"task-tracker-app/internal/task/repository"
	memoryRepo "task-tracker-app/internal/task/repository/memory"
	restRepo "task-tracker-app/internal/task/repository/rest"
	"task-tracker-app/internal/task/usecase"
	"task-tracker-app/internal/webhook"
	"task-tracker-app/pkg/cache"
	"task-tracker-app/pkg/datemath"
	"task-tracker-app/pkg/log"
	"task-tracker-app/pkg/scheduler"
	"task-tracker-app/pkg/scope"
)

// @title       Task Tracker Metrics API
// @description Role-scoped monthly and weekly task metrics with a TTL result cache.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Tracker Metrics API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar
	cal, err := datemath.NewCalendar(cfg.Analytics.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Analytics.Timezone, err)
		return
	}

	// 4. Task source
	var taskRepo repository.TaskRepository
	if cfg.TaskSource.URL != "" {
		client := restRepo.NewClient(cfg.TaskSource.URL, cfg.TaskSource.AccessToken, cfg.TaskSource.Timeout)
		taskRepo = restRepo.New(client, logger)
		logger.Infof(ctx, "Task source: %s", cfg.TaskSource.URL)
	} else {
		taskRepo = memoryRepo.New()
		logger.Warn(ctx, "TASK_SOURCE_URL not set, using in-memory task source")
	}

	// 5. Task UseCase
	taskUC := usecase.New(logger, taskRepo, cal, cache.Config{
		TTL:        cfg.Analytics.TTL,
		MaxEntries: cfg.Analytics.MaxCacheEntries,
	})

	// 6. Midnight cache reset
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(scheduler.RealClock{}, cal.Location(), logger)
		handle, schedErr := sched.ScheduleAtNextMidnight(ctx, func(ctx context.Context) {
			out, invErr := taskUC.Invalidate(ctx, task.InvalidateInput{})
			if invErr != nil {
				logger.Warnf(ctx, "Midnight cache reset failed: %v", invErr)
				return
			}
			logger.Infof(ctx, "Midnight cache reset removed %d entries", out.Removed)
		})
		if schedErr != nil {
			logger.Warnf(ctx, "Midnight cache reset disabled: %v", schedErr)
		} else {
			handle.OnError(func(err error) {
				logger.Errorf(ctx, "Midnight cache reset stopped: %v", err)
			})
			defer handle.Cancel()
		}
	}

	// 7. Delivery
	jwtManager := scope.New(cfg.JWT.SecretKey)
	mw := middleware.New(logger, jwtManager, cfg.RateLimit.RequestsPerMin)
	taskHandler := taskHTTP.New(logger, taskUC)

	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		webhookHandler = webhook.NewHandler(taskUC, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	}

	// 8. HTTP Server
	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskHandler: taskHandler,
	}
	if webhookHandler != nil {
		srvCfg.WebhookHandler = webhookHandler
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
