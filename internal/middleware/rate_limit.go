package middleware

import (
	"github.com/gin-gonic/gin"

	"task-tracker-app/pkg/response"
)

// RateLimit throttles per viewer, or per client IP before authentication.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if viewer, ok := GetViewer(c); ok && viewer.UserID != "" {
			key = "user:" + viewer.UserID
		}

		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
