package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker-app/internal/task"
	"task-tracker-app/pkg/log"
)

// Handler is the public interface for the task metrics HTTP delivery layer.
type Handler interface {
	Metrics(c *gin.Context)
	RangeMetrics(c *gin.Context)
	Weeks(c *gin.Context)
	List(c *gin.Context)
	Invalidate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
