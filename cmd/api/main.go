package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // swagger registration
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/repository/content"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form relay and portfolio content for the personal site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "mail_provider", cfg.Mail.Provider)

	// 3. Load portfolio content
	validate := validation.New()
	contentRepo, err := content.NewContentRepository(cfg.ContentFile, validate)
	if err != nil {
		logger.Log.Error("Failed to load portfolio content", "error", err)
		os.Exit(1)
	}

	// 4. Setup Email Transport
	sender := email.NewSender(cfg.Mail)
	if sender == nil {
		logger.Log.Warn("Email credentials not configured - contact messages will be accepted without relay")
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(cfg.Mail, sender, validate, logger.Log)
	portfolioUC := usecase.NewPortfolioUsecase(contentRepo)
	healthUC := usecase.NewHealthUsecase(cfg.Mail)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		PortfolioUC: portfolioUC,
		HealthUC:    healthUC,
		Config:      cfg,
		Logger:      logger.Log,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
