package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/marketlens-backend/internal/config"
	"github.com/yungbote/marketlens-backend/internal/handlers"
	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/middleware"
)

type RouterConfig struct {
	Log                   *logger.Logger
	HTTP                  config.HTTPConfig
	Otel                  config.OtelConfig
	ProjectRequestHandler *handlers.ProjectRequestHandler
	ProjectHandler        *handlers.ProjectHandler
	RequestHandler        *handlers.RequestHandler
	UserHandler           *handlers.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLog(cfg.Log))
	if cfg.Otel.Enabled {
		router.Use(otelgin.Middleware(cfg.Otel.ServiceName))
	}

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Orchestration
		api.POST("/project-requests", cfg.ProjectRequestHandler.Create)

		// Projects
		api.POST("/projects", cfg.ProjectHandler.Create)
		api.GET("/projects", cfg.ProjectHandler.List)
		api.GET("/projects/:id", cfg.ProjectHandler.Get)
		api.GET("/projects/:id/statistics", cfg.ProjectHandler.GetStatistics)
		api.GET("/projects/:id/requests", cfg.ProjectHandler.ListRequests)

		// Requests
		api.GET("/requests/:id", cfg.RequestHandler.Get)
		api.GET("/requests/:id/keywords", cfg.RequestHandler.ListKeywords)
		api.GET("/requests/:id/source-urls", cfg.RequestHandler.ListSourceURLs)

		// Users
		api.POST("/users", cfg.UserHandler.Create)
		api.GET("/users/:id", cfg.UserHandler.Get)
	}

	return router
}
