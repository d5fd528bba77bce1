package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	authService "adforge/internal/application/auth"
	"adforge/internal/application/copygen"
	"adforge/internal/delivery/http/handler"
	"adforge/internal/delivery/http/middleware"
	"adforge/internal/delivery/http/router"
	"adforge/internal/infrastructure/config"
	"adforge/internal/infrastructure/database"
	"adforge/internal/infrastructure/repository"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	exportRepo := repository.NewExportRepository(db)

	// Initialize services
	authSvc := authService.NewService(userRepo, sessionRepo, time.Duration(cfg.TokenExpiry)*time.Hour)
	generator := copygen.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authSvc)
	oauthHandler := handler.NewOAuthHandler(cfg, authSvc, userRepo)
	userHandler := handler.NewUserHandler(authSvc, userRepo)
	adCopyHandler := handler.NewAdCopyHandler(generator)
	campaignHandler := handler.NewCampaignHandler(campaignRepo)
	exportHandler := handler.NewExportHandler(campaignRepo, exportRepo)

	// Setup routes
	handlers := router.Handlers{
		Auth:     authHandler,
		OAuth:    oauthHandler,
		User:     userHandler,
		AdCopy:   adCopyHandler,
		Campaign: campaignHandler,
		Export:   exportHandler,
	}
	corsConfig := middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}
	mux := router.Setup(handlers, authSvc, corsConfig, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("database", cfg.DatabasePath),
		zap.Bool("google_oauth", cfg.GoogleClientID != ""),
	)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
