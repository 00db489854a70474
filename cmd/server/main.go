package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizsuite/internal/authz"
	"bizsuite/internal/cache"
	"bizsuite/internal/config"
	"bizsuite/internal/database"
	"bizsuite/internal/handler"
	"bizsuite/internal/logger"
	"bizsuite/internal/models"
	"bizsuite/internal/queue"
	"bizsuite/internal/reporting"
	"bizsuite/internal/repository"
	"bizsuite/internal/router"
	"bizsuite/internal/service"
	"bizsuite/internal/storage"
	"bizsuite/internal/subscription"
	"bizsuite/internal/validator"
	"bizsuite/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title           BizSuite API
// @version         1.0
// @description     Multi-tenant business suite: businesses, members, leads, offers, KPIs and reports.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	logrus.Info("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis cache and current-business sessions
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()
	sessions := cache.NewSessionStore(redisCache, cfg.SessionTTL)

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	bucketCtx, bucketCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := s3Client.EnsureBucket(bucketCtx); err != nil {
		logrus.WithError(err).Warn("Object storage unavailable, exports and report files will fail")
	}
	bucketCancel()

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	accountRepo := repository.NewAccountRepository(mongoDB.Database)
	businessRepo := repository.NewBusinessRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	recordRepo := repository.NewRecordRepository(mongoDB.Database)
	kpiRepo := repository.NewKPIConfigRepository(mongoDB.Database)
	reportRepo := repository.NewGeneratedReportRepository(mongoDB.Database)

	// Authorization
	actorLoader := authz.NewLocalActorLoader(accountRepo, membershipRepo, businessRepo, sessions)
	businessPolicy := authz.NewBusinessPolicy(subscription.NewPlanLimiter(businessRepo))

	// Report queue and processor
	reportQueue := queue.NewMemoryQueue(cfg.ReportQueueSize)
	generator := reporting.NewSummaryGenerator(recordRepo, s3Client)
	reportProcessor := queue.NewProcessor(reportQueue, generator, reportRepo, cfg.ReportWorkers)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		AccountRepo:    accountRepo,
		JWTManager:     jwtManager,
		AccessTokenTTL: cfg.AccessTokenExpiry,
	})
	accountService := service.NewAccountService(accountRepo, redisCache)
	businessService := service.NewBusinessService(service.BusinessServiceConfig{
		BusinessRepo:   businessRepo,
		MembershipRepo: membershipRepo,
		AccountRepo:    accountRepo,
		RecordRepo:     recordRepo,
		KPIRepo:        kpiRepo,
		Sessions:       sessions,
	})
	membershipService := service.NewMembershipService(membershipRepo, accountRepo, sessions)
	recordService := service.NewRecordService(recordRepo, membershipRepo, s3Client, cfg.ExportURLExpiry)
	kpiService := service.NewKPIService(kpiRepo)
	reportService := service.NewReportService(service.ReportServiceConfig{
		ReportRepo: reportRepo,
		RecordRepo: recordRepo,
		Queue:      reportQueue,
		Storage:    s3Client,
		LinkExpiry: cfg.ExportURLExpiry,
	})

	// Handler layer
	recordHandlers := make([]*handler.RecordHandler, 0, len(models.RecordKinds))
	for _, kind := range models.RecordKinds {
		recordHandlers = append(recordHandlers, handler.NewRecordHandler(recordService, kind))
	}

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:       handler.NewAuthHandler(authService),
		AccountHandler:    handler.NewAccountHandler(accountService),
		BusinessHandler:   handler.NewBusinessHandler(businessService),
		MembershipHandler: handler.NewMembershipHandler(membershipService),
		RecordHandlers:    recordHandlers,
		KPIHandler:        handler.NewKPIHandler(kpiService, recordService),
		ReportHandler:     handler.NewReportHandler(reportService),
		Tokens:            jwtManager,
		Actors:            actorLoader,
		BusinessPolicy:    businessPolicy,
		LoadBusiness:      businessService.GetBusiness,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start report processor
	reportProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.WithField("addr", addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logrus.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	logrus.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HTTP server shutdown error")
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop report processor (waits for workers)
	logrus.Info("Stopping report processor...")
	reportProcessor.Stop()

	logrus.Info("Server shutdown complete")
}
