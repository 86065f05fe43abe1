package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yungbote/marketlens-backend/internal/config"
	"github.com/yungbote/marketlens-backend/internal/db"
	"github.com/yungbote/marketlens-backend/internal/events"
	"github.com/yungbote/marketlens-backend/internal/handlers"
	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/observability"
	"github.com/yungbote/marketlens-backend/internal/repos"
	"github.com/yungbote/marketlens-backend/internal/server"
	"github.com/yungbote/marketlens-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration from main...")
	cfg, err := config.Load()
	if err != nil {
		log.Error("Could not load configuration", "error", err)
		os.Exit(1)
	}

	// Tracing
	shutdownOtel := observability.InitOTel(context.Background(), log, cfg.Otel)
	if shutdownOtel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOtel(ctx)
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(cfg.Postgres, log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Event bus (optional; the orchestrator runs without it)
	var bus events.Bus
	if cfg.Redis.Addr != "" {
		bus, err = events.NewRedisBus(cfg.Redis, log)
		if err != nil {
			log.Warn("Redis event bus init failed, continuing without events", "error", err)
			bus = nil
		} else {
			defer bus.Close()
		}
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	projectRepo := repos.NewProjectRepo(thePG, log)
	requestRepo := repos.NewRequestRepo(thePG, log)
	keywordRepo := repos.NewKeywordRepo(thePG, log)
	sourceURLRepo := repos.NewSourceURLRepo(thePG, log)
	requestStatsRepo := repos.NewRequestStatisticsRepo(thePG, log)
	moduleStatsRepo := repos.NewModuleStatisticsRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	userService := services.NewUserService(thePG, log, userRepo)
	projectService := services.NewProjectService(thePG, log, projectRepo)
	requestService := services.NewRequestService(thePG, log, requestRepo)
	keywordService := services.NewKeywordService(thePG, log, keywordRepo)
	sourceURLService := services.NewSourceURLService(thePG, log, sourceURLRepo)
	requestStatsService := services.NewRequestStatisticsService(thePG, log, requestStatsRepo)
	moduleStatsService := services.NewModuleStatisticsService(thePG, log, moduleStatsRepo)
	orchestrator := services.NewProjectRequestOrchestrator(
		thePG,
		log,
		projectService,
		requestService,
		keywordService,
		sourceURLService,
		requestStatsService,
		moduleStatsService,
		bus,
	)

	// Handlers
	log.Info("Setting up handlers from main...")
	projectRequestHandler := handlers.NewProjectRequestHandler(log, orchestrator)
	projectHandler := handlers.NewProjectHandler(log, projectService, requestService, requestStatsService, moduleStatsService)
	requestHandler := handlers.NewRequestHandler(log, requestService, keywordService, sourceURLService)
	userHandler := handlers.NewUserHandler(log, userService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:                   log,
		HTTP:                  cfg.HTTP,
		Otel:                  cfg.Otel,
		ProjectRequestHandler: projectRequestHandler,
		ProjectHandler:        projectHandler,
		RequestHandler:        requestHandler,
		UserHandler:           userHandler,
	})

	fmt.Printf("Server listening on :%s\n", cfg.HTTP.Port)
	if err := router.Run(":" + cfg.HTTP.Port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
