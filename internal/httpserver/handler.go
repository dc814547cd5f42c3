package httpserver

import (
	"context"

	"task-tracker-app/internal/model"
	taskHTTP "task-tracker-app/internal/task/delivery/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.middleware)
	srv.l.Infof(ctx, "Task metrics routes registered at /api/v1/tasks")

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/tasks", srv.webhookHandler.HandleTaskWebhook)
		srv.l.Infof(ctx, "Task webhook route registered at POST /webhook/tasks")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping task webhook route")
	}

	return nil
}
