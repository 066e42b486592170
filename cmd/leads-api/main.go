package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/enrolify/leads-api/api/swagger"
	"github.com/enrolify/leads-api/internal/handler"
	"github.com/enrolify/leads-api/internal/middleware"
	"github.com/enrolify/leads-api/internal/repository"
	"github.com/enrolify/leads-api/internal/service"
	"github.com/enrolify/leads-api/pkg/cache"
	"github.com/enrolify/leads-api/pkg/config"
	"github.com/enrolify/leads-api/pkg/database"
	"github.com/enrolify/leads-api/pkg/logger"
	corsmiddleware "github.com/enrolify/leads-api/pkg/middleware/cors"
	reqidmiddleware "github.com/enrolify/leads-api/pkg/middleware/requestid"
)

const (
	appTitle       = "Leads API"
	appDescription = "Student enrollment tracker"
	migrationsDir  = "db/migrations"
)

// @title Leads API
// @version 0.1.0
// @description Student enrollment tracker: leads, enrollments and records
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.Migrate(migrateCtx, db, migrationsDir); err != nil {
			cancel()
			logr.Fatal("failed to apply migrations", zap.Error(err))
		}
		cancel()
		logr.Info("migrations applied")
	}

	var redisClient *redis.Client
	if cfg.Records.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			// Redis is an accelerator here, not a dependency.
			logr.Warn("redis unavailable, record cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	studentRepo := repository.NewStudentRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	leadSvc := service.NewLeadService(studentRepo, validate, logr)
	catalogSvc := service.NewCatalogService(catalogRepo, logr)
	enrollSvc := service.NewEnrollmentService(studentRepo, catalogRepo, enrollmentRepo, validate, logr)

	var recordSvc *service.RecordService
	if cfg.Records.CacheEnabled {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		recordSvc = service.NewRecordService(studentRepo, catalogRepo, enrollmentRepo, recordRepo, cacheRepo, metricsSvc, cfg.Records.CacheTTL, validate, logr)
	} else {
		recordSvc = service.NewRecordService(studentRepo, catalogRepo, enrollmentRepo, recordRepo, nil, metricsSvc, cfg.Records.CacheTTL, validate, logr)
	}

	rootHandler := handler.NewRootHandler(appTitle, appDescription)
	leadHandler := handler.NewLeadHandler(leadSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	enrollHandler := handler.NewEnrollmentHandler(enrollSvc)
	recordHandler := handler.NewRecordHandler(recordSvc, nil, cfg.Records.DefaultLimit)
	if cfg.Export.Enabled {
		exportSvc := service.NewExportService(recordSvc, cfg.Export.MaxRows, logr)
		recordHandler = handler.NewRecordHandler(recordSvc, exportSvc, cfg.Records.DefaultLimit)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		version, err := database.MigrationVersion(c.Request.Context(), db)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "migration_version": version})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/", rootHandler.Welcome)

	r.GET("/careers", catalogHandler.ListCareers)

	leads := r.Group("/leads")
	{
		leads.POST("", leadHandler.Create)
		leads.GET("", leadHandler.List)
		leads.GET("/:id", leadHandler.Get)
	}

	enroll := r.Group("/enroll")
	{
		enroll.POST("/career", enrollHandler.EnrollCareer)
		enroll.POST("/subject", enrollHandler.EnrollSubject)
	}

	records := r.Group("/records")
	{
		records.POST("", recordHandler.Load)
		records.GET("", recordHandler.List)
		records.GET("/export", recordHandler.Export)
		records.GET("/:id", recordHandler.Get)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
