package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/justthetip/yoto-discovery/internal/config"
	logpkg "github.com/justthetip/yoto-discovery/internal/logger"
	catalogrepo "github.com/justthetip/yoto-discovery/internal/repository/catalog"
	"github.com/justthetip/yoto-discovery/internal/transport/yoto"
)

func fetchCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the storefront catalog feed and write a local snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: catalog.path from config)")
	return cmd
}

func runFetch(ctx context.Context, out string) error {
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

	if out == "" {
		out = cfg.Catalog.Path
	}

	client := yoto.NewClient(yoto.Config{
		BaseURL: cfg.Catalog.BaseURL,
		Region:  cfg.Catalog.Region,
		Token:   cfg.Catalog.AuthToken,
		Timeout: 30 * time.Second,
		Logger:  logger,
	})

	logger.Info("Fetching catalog feed",
		zap.String("base_url", cfg.Catalog.BaseURL),
		zap.String("region", cfg.Catalog.Region),
		zap.String("collection", cfg.Catalog.Collection),
	)

	data, err := client.FetchCatalog(ctx, cfg.Catalog.Collection)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	// Parse before writing so a broken feed never clobbers a good snapshot.
	items, err := catalogrepo.Parse(data)
	if err != nil {
		return fmt.Errorf("parse feed: %w", err)
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	logger.Info("Snapshot written",
		zap.String("path", out),
		zap.Int("bytes", len(data)),
		zap.Int("items", len(items)),
	)
	return nil
}
