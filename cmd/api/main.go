package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skilledup-backend/config"
	_ "skilledup-backend/docs" // Important for Swagger
	v1 "skilledup-backend/internal/delivery/http/v1"
	"skilledup-backend/internal/repository/postgres"
	"skilledup-backend/internal/usecase"
	"skilledup-backend/pkg/database"
	"skilledup-backend/pkg/email"
	"skilledup-backend/pkg/logger"
	"skilledup-backend/pkg/media"
	"skilledup-backend/pkg/redis"
	"skilledup-backend/pkg/storage"
	"skilledup-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           SkilledUp Backend API
// @version         1.0
// @description     Job board backend: applicant profiles, media lifecycle and faceted search.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting skilledup backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(ctx, cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}

	// 5. Setup Object Storage
	store, err := storage.New(ctx, storage.Config{
		Endpoint:    cfg.SpacesEndpoint,
		CDNEndpoint: cfg.SpacesCDNEndpoint,
		Region:      cfg.SpacesRegion,
		AccessKey:   cfg.SpacesAccessKey,
		SecretKey:   cfg.SpacesSecretKey,
	})
	if err != nil {
		logger.Log.Error("Failed to set up object storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - review notifications will be skipped")
	}

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	applicantRepo := postgres.NewApplicantRepository(dbPool)
	categoryRepo := postgres.NewJobCategoryRepository(dbPool)
	bannerRepo := postgres.NewBannerConfigRepository(dbPool)
	jobPostRepo := postgres.NewJobPostRepository(dbPool)

	// 8. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	transform := media.NewTransform()

	applicantUC := usecase.NewApplicantUsecase(applicantRepo, userRepo, categoryRepo, store, emailService, validate)
	searchUC := usecase.NewSearchUsecase(applicantRepo, categoryRepo)
	categoryUC := usecase.NewJobCategoryUsecase(categoryRepo, store, transform, validate)
	bannerUC := usecase.NewBannerConfigUsecase(bannerRepo, store, transform)
	jobPostUC := usecase.NewJobPostUsecase(jobPostRepo, validate)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ApplicantUC:   applicantUC,
		SearchUC:      searchUC,
		JobCategoryUC: categoryUC,
		BannerUC:      bannerUC,
		JobPostUC:     jobPostUC,
		UserRepo:      userRepo,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
