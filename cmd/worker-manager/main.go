// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/everupward248/hackathon-oct25/internal/catalog"
	"github.com/everupward248/hackathon-oct25/internal/common/camunda"
	"github.com/everupward248/hackathon-oct25/internal/common/config"
	"github.com/everupward248/hackathon-oct25/internal/common/database"
	"github.com/everupward248/hackathon-oct25/internal/common/logger"
	"github.com/everupward248/hackathon-oct25/internal/common/observability"

	// Assessment Workers (1)
	clc "github.com/everupward248/hackathon-oct25/internal/workers/assessment/calculate-lifestyle-cost"

	// Career Workers (3)
	gp "github.com/everupward248/hackathon-oct25/internal/workers/career/generate-pathway"
	mj "github.com/everupward248/hackathon-oct25/internal/workers/career/match-jobs"
	rm "github.com/everupward248/hackathon-oct25/internal/workers/career/rank-matches"

	// Data Access Workers (1)
	qjc "github.com/everupward248/hackathon-oct25/internal/workers/data-access/query-job-catalog"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Job Catalog (Postgres store, optionally fronted by Redis) ---
	store := catalog.NewStore(pg, log)
	var jobCatalog catalog.Provider = store

	if cfg.Catalog.CacheEnabled {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			// Test the connection with context
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")

		ttl := time.Duration(cfg.Catalog.CacheTTL) * time.Second
		jobCatalog = catalog.NewCache(store, redis, ttl, log)
		zapLog.Info("Job catalog cache enabled", zap.Duration("ttl", ttl))
	} else {
		zapLog.Info("Job catalog cache disabled, serving straight from PostgreSQL")
	}

	// --- START: Register ALL 5 Workers ---
	var pipelineWorkers []*camunda.PipelineWorker

	// --- 1. Assessment Workers (1) ---
	if config.IsWorkerEnabled(cfg, clc.TaskType) {
		handler := clc.NewHandler(
			&clc.Config{
				Timeout: config.GetDuration(config.GetWorkerConfig(cfg, clc.TaskType).Timeout),
			},
			log,
		)
		pipelineWorkers = append(pipelineWorkers,
			startWorker(zeebeClient, clc.TaskType, config.GetWorkerConfig(cfg, clc.TaskType), handler, zapLog))
	}

	// --- 2. Career Workers (3) ---
	if config.IsWorkerEnabled(cfg, mj.TaskType) {
		handler := mj.NewHandler(
			&mj.Config{
				Timeout:    config.GetDuration(config.GetWorkerConfig(cfg, mj.TaskType).Timeout),
				MaxResults: 50,
			},
			jobCatalog, log,
		)
		pipelineWorkers = append(pipelineWorkers,
			startWorker(zeebeClient, mj.TaskType, config.GetWorkerConfig(cfg, mj.TaskType), handler, zapLog))
	}

	if config.IsWorkerEnabled(cfg, rm.TaskType) {
		handler := rm.NewHandler(
			&rm.Config{
				Timeout: config.GetDuration(config.GetWorkerConfig(cfg, rm.TaskType).Timeout),
			},
			log,
		)
		pipelineWorkers = append(pipelineWorkers,
			startWorker(zeebeClient, rm.TaskType, config.GetWorkerConfig(cfg, rm.TaskType), handler, zapLog))
	}

	if config.IsWorkerEnabled(cfg, gp.TaskType) {
		handler := gp.NewHandler(
			&gp.Config{
				Timeout: config.GetDuration(config.GetWorkerConfig(cfg, gp.TaskType).Timeout),
			},
			jobCatalog, log,
		)
		pipelineWorkers = append(pipelineWorkers,
			startWorker(zeebeClient, gp.TaskType, config.GetWorkerConfig(cfg, gp.TaskType), handler, zapLog))
	}

	// --- 3. Data Access Workers (1) ---
	if config.IsWorkerEnabled(cfg, qjc.TaskType) {
		handler := qjc.NewHandler(
			&qjc.Config{
				Timeout: config.GetDuration(config.GetWorkerConfig(cfg, qjc.TaskType).Timeout),
			},
			jobCatalog, log,
		)
		pipelineWorkers = append(pipelineWorkers,
			startWorker(zeebeClient, qjc.TaskType, config.GetWorkerConfig(cfg, qjc.TaskType), handler, zapLog))
	}

	zapLog.Info("All workers registered successfully", zap.Int("count", len(pipelineWorkers)))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := pg.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"reason": err.Error(),
				})
				return
			}
			if err := zeebeClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"reason": err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, pw := range pipelineWorkers {
		pw.Stop(shutdownCtx)
	}

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client *camunda.Client, taskType string, wcfg config.WorkerConfig, handler camunda.JobHandler, log *zap.Logger) *camunda.PipelineWorker {
	pw := camunda.NewWorker(
		client.GetClient(),
		taskType,
		wcfg.MaxJobsActive,
		time.Duration(wcfg.Timeout)*time.Millisecond,
		handler,
		log,
	)
	pw.Start()

	log.Info("worker registered",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
	return pw
}
