//go:build api

// Package testserver wires the full application against containerised backends.
package testserver

import (
	"context"
	"time"

	"bizsuite/internal/authz"
	"bizsuite/internal/cache"
	"bizsuite/internal/handler"
	"bizsuite/internal/models"
	"bizsuite/internal/queue"
	"bizsuite/internal/reporting"
	"bizsuite/internal/repository"
	"bizsuite/internal/router"
	"bizsuite/internal/service"
	"bizsuite/internal/storage"
	"bizsuite/internal/subscription"
	"bizsuite/pkg/auth"
	"bizsuite/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token lifetime used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestSessionTTL is the current-business session lifetime used in tests.
	TestSessionTTL = time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds the router plus direct handles on storage for assertions.
type TestServer struct {
	Router *gin.Engine

	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	AccountRepo    repository.AccountRepository
	BusinessRepo   repository.BusinessRepository
	MembershipRepo repository.MembershipRepository
	RecordRepo     repository.RecordRepository
	ReportRepo     repository.GeneratedReportRepository

	JWTManager *auth.JWTManager

	ReportProcessor *queue.Processor
	stopProcessor   context.CancelFunc
}

// New starts the containers, wires every layer and starts the report workers.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	redisCache := cache.NewRedis(redisContainer.URI)
	sessions := cache.NewSessionStore(redisCache, TestSessionTTL)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		testdb.MinIOAccessKey,
		testdb.MinIOSecretKey,
		minioContainer.Bucket,
		false,
	)
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	accountRepo := repository.NewAccountRepository(mongoDB.Database)
	businessRepo := repository.NewBusinessRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	recordRepo := repository.NewRecordRepository(mongoDB.Database)
	kpiRepo := repository.NewKPIConfigRepository(mongoDB.Database)
	reportRepo := repository.NewGeneratedReportRepository(mongoDB.Database)

	actorLoader := authz.NewLocalActorLoader(accountRepo, membershipRepo, businessRepo, sessions)
	businessPolicy := authz.NewBusinessPolicy(subscription.NewPlanLimiter(businessRepo))

	reportQueue := queue.NewMemoryQueue(100)
	generator := reporting.NewSummaryGenerator(recordRepo, s3Client)
	processor := queue.NewProcessor(reportQueue, generator, reportRepo, 2)

	authService := service.NewAuthService(service.AuthServiceConfig{
		AccountRepo:    accountRepo,
		JWTManager:     jwtManager,
		AccessTokenTTL: TestAccessTokenExpiry,
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
	recordService := service.NewRecordService(recordRepo, membershipRepo, s3Client, time.Hour)
	kpiService := service.NewKPIService(kpiRepo)
	reportService := service.NewReportService(service.ReportServiceConfig{
		ReportRepo: reportRepo,
		RecordRepo: recordRepo,
		Queue:      reportQueue,
		Storage:    s3Client,
		LinkExpiry: time.Hour,
	})

	recordHandlers := make([]*handler.RecordHandler, 0, len(models.RecordKinds))
	for _, kind := range models.RecordKinds {
		recordHandlers = append(recordHandlers, handler.NewRecordHandler(recordService, kind))
	}

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
		AllowedOrigins:    []string{"*"},
	})

	// The queue cannot be reopened, so the workers live as long as the suite.
	workerCtx, stop := context.WithCancel(context.Background())
	processor.Start(workerCtx)

	return &TestServer{
		Router:          r,
		MongoDB:         mongoDB,
		Redis:           redisContainer,
		MinIO:           minioContainer,
		AccountRepo:     accountRepo,
		BusinessRepo:    businessRepo,
		MembershipRepo:  membershipRepo,
		RecordRepo:      recordRepo,
		ReportRepo:      reportRepo,
		JWTManager:      jwtManager,
		ReportProcessor: processor,
		stopProcessor:   stop,
	}, nil
}

// Cleanup stops the report workers and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	ts.stopProcessor()
	ts.ReportProcessor.Stop()

	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
