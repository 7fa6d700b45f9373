package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"moda-survey/internal/config"
	"moda-survey/internal/db"
	apihttp "moda-survey/internal/http"
	"moda-survey/internal/repository"
	"moda-survey/internal/service"
	"moda-survey/internal/survey"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	catalog, err := survey.ResolveCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Fatal("load question catalog", zap.Error(err))
	}

	var datasetRepo repository.DatasetRepository = repository.NewMemoryDatasetRepository()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		datasetRepo = repository.NewPgDatasetRepository(pool)
	} else {
		logger.Warn("database url not configured, using in-memory storage")
	}

	uploadWindow := time.Duration(cfg.UploadRateWindowMin) * time.Minute
	cache := service.NewNoopSummaryCache()
	uploadLimiter := service.NewMemoryUploadRateLimiter(uploadWindow, cfg.UploadRateLimit)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisSummaryCache(redisClient, time.Duration(cfg.CacheTTLSeconds)*time.Second, logger)
			uploadLimiter = service.NewRedisUploadRateLimiter(redisClient, uploadWindow, cfg.UploadRateLimit, logger)
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if !jwtSvc.Configured() {
		logger.Warn("jwt secret not configured, uploads disabled")
	}

	datasetSvc := service.NewDatasetService(datasetRepo, catalog, logger)
	dashboardSvc := service.NewDashboardService(datasetSvc, cache, nil, nil, logger)

	if _, err := os.Stat(cfg.DataFile); err == nil {
		if _, err := datasetSvc.ImportFile(ctx, cfg.DataFile, cfg.DataSheet); err != nil {
			logger.Error("initial import failed", zap.String("file", cfg.DataFile), zap.Error(err))
		}
	} else {
		logger.Warn("survey data file not found", zap.String("file", cfg.DataFile))
	}

	datasetHandler := apihttp.NewDatasetHandler(logger, datasetSvc)
	dashboardHandler := apihttp.NewDashboardHandler(logger, dashboardSvc)
	router := apihttp.NewRouter(logger, datasetHandler, dashboardHandler, jwtSvc, uploadLimiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
