package main

import (
	"context"
	"log"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/cover"
	"bookshelf/internal/logger"
	"bookshelf/internal/platform/postgres"
	"bookshelf/internal/seed"

	"go.uber.org/zap"
)

// seed loads the sample catalog into an empty store without starting the server.
func main() {
	ctx := context.Background()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logr, err := logger.New(cfg.ServiceName+"-seed", cfg.LogLevel)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, cfg.DBTimeout)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	repo := book.NewPostgresRepo(pool, cfg.DBTimeout)
	if err := repo.InitSchema(ctx); err != nil {
		logr.Fatal("failed to create schema", zap.Error(err))
	}

	loader := seed.NewLoader(repo, cover.NewStaticAssetResolver(cfg.CoverStaticTemplate), logr, nil)
	inserted, err := loader.Run(ctx)
	if err != nil {
		logr.Fatal("seeding failed", zap.Error(err))
	}

	total, err := repo.Count(ctx)
	if err != nil {
		logr.Fatal("failed to count books", zap.Error(err))
	}
	logr.Info("seed complete", zap.Int("inserted", inserted), zap.Int("total", total))
}
