package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/cover"
	"bookshelf/internal/logger"
	"bookshelf/internal/platform/postgres"
	"bookshelf/internal/seed"
	"bookshelf/internal/view"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logr, err := logger.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, cfg.DBTimeout)
	if err != nil {
		return err
	}
	defer pool.Close()
	logr.Info("database connection OK", zap.String("dsn", config.RedactDSN(cfg.DatabaseDSN)))

	repo := book.NewPostgresRepo(pool, cfg.DBTimeout)
	if err := repo.InitSchema(ctx); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.SeedOnStart {
		loader := seed.NewLoader(repo, cover.NewStaticAssetResolver(cfg.CoverStaticTemplate), logr, registry)
		if _, err := loader.Run(ctx); err != nil {
			return err
		}
	}

	renderer, err := view.New()
	if err != nil {
		return err
	}

	service := book.NewService(repo, cover.NewSearchResolver(cfg.CoverSearchTemplate), logr)
	bookHandler := book.NewHTTPHandler(service, renderer, &book.Snapshot{}, logr)

	handler := newRouter(routerDeps{
		books:    bookHandler,
		db:       pool,
		registry: registry,
		logger:   logr,
		cfg:      cfg,
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logr.Info("starting server", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logr.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
