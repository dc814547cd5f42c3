package http

import (
	"task-tracker-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires a viewer; invalidation is admin only.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.GET("", h.List)
		tasks.GET("/metrics", h.Metrics)
		tasks.GET("/metrics/range", h.RangeMetrics)
		tasks.GET("/weeks", h.Weeks)
		tasks.POST("/cache/invalidate", mw.AdminOnly(), h.Invalidate)
	}
}
