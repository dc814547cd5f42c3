package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker-app/internal/middleware"
	taskHTTP "task-tracker-app/internal/task/delivery/http"
	"task-tracker-app/pkg/log"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task metrics domain
	middleware  middleware.Middleware
	taskHandler taskHTTP.Handler

	// Task change notifications
	webhookHandler interface {
		HandleTaskWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Task metrics domain
	Middleware  middleware.Middleware
	TaskHandler taskHTTP.Handler

	// Task change notifications (optional)
	WebhookHandler interface {
		HandleTaskWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		middleware:     cfg.Middleware,
		taskHandler:    cfg.TaskHandler,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
