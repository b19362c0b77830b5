package main

import (
	"log/slog"
	"os"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/cache"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/config"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/events"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/handlers"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/middleware"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories/postgres"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/services"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/Souravshukla007/LakshyaSSB-sub001/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var slogLogger *slog.Logger
	if cfg.Environment == "production" {
		slogLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	} else {
		slogLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	logger := utils.NewSlogLogger(slogLogger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := pkg.AutoMigrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	eventPublisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		logger.Error("Failed to create event publisher, falling back to mock", "error", err)
		eventPublisher = events.NewMockEventPublisher(slogLogger)
	}
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	middleware.InitAuth(cfg.Casdoor)

	resultRepo := postgres.NewResultPostgreSQL(db)
	userRepo := postgres.NewUserPostgreSQL(db)
	gamificationRepo := postgres.NewGamificationPostgreSQL(db)

	validator := utils.NewValidator()
	cacheService := cache.NewRedisCache(redisClient, slogLogger)

	serviceManager := services.NewServiceManager(services.Dependencies{
		Results:      resultRepo,
		Users:        userRepo,
		Gamification: gamificationRepo,
		Cache:        cacheService,
		Redis:        redisClient,
		Publisher:    eventPublisher,
		Validator:    validator,
		Logger:       logger,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, validator, logger)
	handlerManager.SetupRoutes(router,
		middleware.Auth(userRepo, logger),
		middleware.RequireSubscription(userRepo, logger),
	)

	logger.Info("Starting readiness service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
