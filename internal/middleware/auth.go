package middleware

import (
	"github.com/gin-gonic/gin"

	"task-tracker-app/internal/model"
	"task-tracker-app/pkg/response"
	"task-tracker-app/pkg/scope"
)

const viewerGinKey = "viewer"

// Auth resolves the bearer token into a viewer and stores it on the request.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := scope.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		viewer := payload.Viewer()
		c.Set(viewerGinKey, viewer)
		c.Request = c.Request.WithContext(scope.SetViewerToContext(ctx, viewer))
		c.Next()
	}
}

// AdminOnly rejects viewers that are not active admins. It must run after Auth.
func (m Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := GetViewer(c)
		if !ok || !viewer.IsAdmin() {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// GetViewer returns the viewer stored by Auth.
func GetViewer(c *gin.Context) (model.Viewer, bool) {
	v, ok := c.Get(viewerGinKey)
	if !ok {
		return scope.GetViewerFromContext(c.Request.Context())
	}
	viewer, ok := v.(model.Viewer)
	return viewer, ok
}
