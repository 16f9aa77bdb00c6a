package main

import (
	"context"
	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/emailjs"
	"go-portfolio-backend/pkg/imageembed"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/security"
	"go-portfolio-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Portfolio content and contact form relay using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	defer logger.Sync()
	logger.Log.Infow("Starting portfolio backend", "port", cfg.Port)

	environment := "development"
	if cfg.IsProduction() {
		environment = "production"
	}
	securityLogger := security.InitSecurityLogger("go-portfolio-backend", environment)
	defer func() { _ = securityLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	// 3. Setup Redis (optional, rate limiting only)
	redisEnabled := false
	if cfg.UpstashRedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redis.Initialize(ctx, redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		cancel()
		if err != nil {
			logger.Log.Warnw("Redis unavailable, rate limiting falls back to memory", "error", err)
		} else {
			redisEnabled = true
			defer func() { _ = redis.Close() }()
		}
	}

	// 4. Setup EmailJS Client
	credentials := emailjs.Credentials{
		ServiceID:  cfg.EmailJSServiceID,
		TemplateID: cfg.EmailJSTemplateID,
		UserID:     cfg.EmailJSUserID,
	}
	emailClient := emailjs.NewClient(
		emailjs.WithTimeout(time.Duration(cfg.EmailJSTimeoutSeconds) * time.Second),
	)

	// 5. Setup UseCases
	validate := validation.New()
	images := imageembed.New(cfg.ImageMaxDimension, time.Duration(cfg.ImageCacheTTLMinutes)*time.Minute)

	contactUC := usecase.NewContactUsecase(emailClient, credentials, validate, cfg.ContactStrictEmail)
	portfolioUC := usecase.NewPortfolioUsecase(images, cfg.AssetsDir)
	healthUC := usecase.NewHealthUsecase(redisEnabled)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		PortfolioUC: portfolioUC,
		HealthUC:    healthUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Errorw("Listen failed", "error", err)
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
		logger.Log.Errorw("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
