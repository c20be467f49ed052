package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/beautydex/internal/config"
	"github.com/kailas-cloud/beautydex/internal/domain/intent"
	"github.com/kailas-cloud/beautydex/internal/domain/text"
	logpkg "github.com/kailas-cloud/beautydex/internal/logger"
	"github.com/kailas-cloud/beautydex/internal/metrics"
	catalogrepo "github.com/kailas-cloud/beautydex/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/beautydex/internal/transport/chi"
	discoveryuc "github.com/kailas-cloud/beautydex/internal/usecase/discovery"
	healthuc "github.com/kailas-cloud/beautydex/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/beautydex/internal/usecase/recommend"
	"github.com/kailas-cloud/beautydex/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting beautydex API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_driver", cfg.Catalog.Driver),
	)

	ctx := context.Background()

	cat, err := openCatalog(ctx, &cfg.Catalog, logger)
	if err != nil {
		logger.Fatal("Failed to open catalog", zap.Error(err))
	}
	defer cat.store.Close()
	logger.Info("Catalog ready", zap.String("driver", cfg.Catalog.Driver))

	metrics.RegisterCatalogMetrics()

	// Repository chain: driver -> repo -> instrumented
	gateway := catalogrepo.NewInstrumented(catalogrepo.New(cat.store), cfg.Catalog.Driver, logger)

	router := intent.NewRouter(intent.DefaultVocabulary(), intent.WithLimit(cfg.Discovery.ResultLimit))
	tokenizer := text.NewTokenizer(cfg.Discovery.MinTokenLength)

	discoverySvc := discoveryuc.New(gateway, router, tokenizer, logger)
	recommendSvc := recommenduc.New(gateway, logger,
		recommenduc.WithDefaultLimit(cfg.Discovery.RecommendLimit),
		recommenduc.WithMaxLimit(cfg.Discovery.MaxLimit),
	)
	healthSvc := healthuc.New(cat.store, cat.checks...)

	server := chiTransport.NewServer(discoverySvc, recommendSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, cfg.CORS.AllowedOrigins, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
