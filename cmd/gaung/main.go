package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ayuwidi/gaung/internal/api"
	"github.com/ayuwidi/gaung/internal/config"
	"github.com/ayuwidi/gaung/internal/entity"
	"github.com/ayuwidi/gaung/internal/geo"
	"github.com/ayuwidi/gaung/internal/health"
	"github.com/ayuwidi/gaung/internal/logging"
	"github.com/ayuwidi/gaung/internal/query"
	"github.com/ayuwidi/gaung/internal/sparql"
	"github.com/ayuwidi/gaung/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	configPath := os.Getenv("GA_CONFIG_PATH")
	if configPath == "" {
		configPath = "/data/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Set up structured logging via the logging Manager
	logManager, logger := logging.NewManager(logging.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FilePath:       cfg.Logging.FilePath,
		FileMaxSizeMB:  cfg.Logging.FileMaxSizeMB,
		FileMaxFiles:   cfg.Logging.FileMaxFiles,
		FileMaxAgeDays: cfg.Logging.FileMaxAgeDays,
	})
	defer logManager.Close() //nolint:errcheck
	slog.SetDefault(logger)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Store gateway
	storeMetrics := sparql.NewMetrics(registry)
	storeClient := sparql.NewClient(cfg.Store.Endpoint, logger, storeMetrics)
	queryService := sparql.NewQueryService(storeClient, cfg.Namespaces.Property)

	// Query compiler and domain services
	compiler := query.NewCompiler(query.Namespaces{
		Entity:           cfg.Namespaces.Entity,
		Property:         cfg.Namespaces.Property,
		Record:           cfg.Namespaces.Record,
		WikidataEntity:   cfg.Namespaces.WikidataEntity,
		WikidataProperty: cfg.Namespaces.WikidataProperty,
	})
	classifier := entity.NewClassifier(cfg.Namespaces.Entity)
	healthService := health.NewService(storeClient, compiler, logger)
	entityService := entity.NewService(storeClient, compiler, classifier, healthService, logger)
	geoService := geo.NewService(entityService, logger)

	// Hot-reload logging settings on config file change
	watcher := config.NewWatcher(configPath, logger, func(lc config.LoggingConfig) {
		logManager.Reconfigure(logging.Config{
			Level:          lc.Level,
			Format:         lc.Format,
			FilePath:       lc.FilePath,
			FileMaxSizeMB:  lc.FileMaxSizeMB,
			FileMaxFiles:   lc.FileMaxFiles,
			FileMaxAgeDays: lc.FileMaxAgeDays,
		})
	})
	go watcher.Start(ctx)

	logger.Info("starting gaung",
		slog.String("version", version.Version),
		slog.String("commit", version.Commit),
		slog.String("store", cfg.Store.Endpoint),
	)

	router := api.NewRouter(api.RouterDeps{
		EntityService: entityService,
		HealthService: healthService,
		GeoService:    geoService,
		QueryService:  queryService,
		Registry:      registry,
		Logger:        logger,
		BasePath:      cfg.Server.BasePath,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.String("base_path", cfg.Server.BasePath))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
