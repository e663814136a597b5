package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/justthetip/yoto-discovery/internal/config"
	dbRedis "github.com/justthetip/yoto-discovery/internal/db/redis"
	logpkg "github.com/justthetip/yoto-discovery/internal/logger"
	"github.com/justthetip/yoto-discovery/internal/metrics"
	catalogrepo "github.com/justthetip/yoto-discovery/internal/repository/catalog"
	"github.com/justthetip/yoto-discovery/internal/repository/querycache"
	"github.com/justthetip/yoto-discovery/internal/transport/httpapi"
	openaiRank "github.com/justthetip/yoto-discovery/internal/transport/openai"
	discoveryuc "github.com/justthetip/yoto-discovery/internal/usecase/discovery"
	"github.com/justthetip/yoto-discovery/internal/usecase/engine"
	"github.com/justthetip/yoto-discovery/internal/usecase/extract"
	statsuc "github.com/justthetip/yoto-discovery/internal/usecase/stats"
	"github.com/justthetip/yoto-discovery/internal/version"
	"github.com/justthetip/yoto-discovery/internal/vocab"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the discovery HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	env := currentEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting discovery API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_path", cfg.Catalog.Path),
	)

	// Catalog snapshot, loaded once per process and shared read-only.
	items, err := catalogrepo.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("Catalog snapshot loaded", zap.Int("items", len(items)))

	metrics.RegisterEngineMetrics()
	metrics.RegisterRankerMetrics()

	extractor := extract.New()
	ladder := engine.NewLadder(vocab.Default(), logger)
	svc := discoveryuc.New(items, extractor, ladder, logger)

	if cfg.Ranking.APIKey != "" {
		ranker := openaiRank.NewRanker(&openaiRank.Config{
			APIKey:  cfg.Ranking.APIKey,
			BaseURL: cfg.Ranking.BaseURL,
			Model:   cfg.Ranking.Model,
			Timeout: time.Duration(cfg.Ranking.TimeoutSec) * time.Second,
			Logger:  logger,
		})
		svc = svc.WithRanker(ranker)
		logger.Info("Ranking collaborator enabled", zap.String("model", cfg.Ranking.Model))
	} else {
		logger.Info("Ranking collaborator disabled, serving unranked candidates")
	}

	if len(cfg.Cache.Addrs) > 0 {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			return fmt.Errorf("create cache store: %w", err)
		}
		defer store.Close()

		readiness := time.Duration(cfg.Cache.ReadinessTimeoutSec) * time.Second
		if err := store.WaitForReady(context.Background(), readiness); err != nil {
			return fmt.Errorf("cache store not ready: %w", err)
		}

		ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
		svc = svc.WithCache(querycache.New(store, ttl, metrics.QueryCacheTotal, logger))
		logger.Info("Query memoization enabled", zap.Duration("ttl", ttl))
	}

	server := httpapi.NewServer(svc, statsuc.Summarize(items), logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Routes(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server stopped gracefully")
	return nil
}
