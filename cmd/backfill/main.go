package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookshelf/internal/backfill"
	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/cover"
	"bookshelf/internal/logger"
	"bookshelf/internal/platform/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cmd := &cobra.Command{
		Use:          "backfill",
		Short:        "Assign a cover image to every book that has none",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.ServiceName+"-backfill", cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, cfg.DBTimeout)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("connected to database")

	repo := book.NewPostgresRepo(pool, cfg.DBTimeout)
	job := backfill.NewJob(repo, cover.NewSearchResolver(cfg.CoverSearchTemplate), log, nil)

	res, err := job.Run(ctx)
	if err != nil {
		return err
	}
	log.Info("cover backfill finished",
		zap.Int("found", res.Found),
		zap.Int("updated", res.Updated),
		zap.Int("failed", res.Failed),
	)
	return nil
}
