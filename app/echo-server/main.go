package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cropRecommendation/app/echo-server/router"
	"cropRecommendation/business/admin"
	"cropRecommendation/business/catalog"
	"cropRecommendation/business/compatibility"
	"cropRecommendation/business/history"
	"cropRecommendation/business/recommendation"
	"cropRecommendation/internal/middleware"
	psqlRepo "cropRecommendation/internal/repository/postgres"
	"cropRecommendation/internal/rest"
	"cropRecommendation/pkg/config"
	"cropRecommendation/pkg/database"
	"cropRecommendation/pkg/logger"
	"cropRecommendation/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting crop recommendation API", "version", cfg.App.Version)

	metrics.Init()

	cat := catalog.Default()
	scorer := compatibility.NewScorer(cat)

	// Prediction history is optional; without it nothing is stored.
	var (
		recoRepo    recommendation.PredictionRepository
		historyRepo history.PredictionRepository
	)
	if cfg.History.Enabled {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")

		predictionRepo := psqlRepo.NewPredictionRepository(db)
		recoRepo = predictionRepo
		historyRepo = predictionRepo
	} else {
		logger.Warn("Prediction history disabled")
	}

	// Init service
	recommendationService := recommendation.NewService(scorer, recoRepo)
	historyService := history.NewService(historyRepo)
	adminService := admin.NewService(admin.Config{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
		JWTSecret:    cfg.JWT.SecretKey,
		TokenTTL:     cfg.JWT.TTL,
	})

	// Init handler
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version, cat.Len())
	catalogHandler := rest.NewCatalogHandler(cat)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)
	adminHandler := rest.NewAdminHandler(adminService)
	historyHandler := rest.NewHistoryHandler(historyService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupSystemRoutes(e, api, healthHandler)
	router.SetupCatalogRoutes(api, catalogHandler)
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupAdminRoutes(api, adminHandler, historyHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr, "crops", cat.Len())
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
