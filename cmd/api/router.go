package main

import (
	"context"
	"net/http"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/httpx"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type routerDeps struct {
	books    *book.HTTPHandler
	db       pinger
	registry *prometheus.Registry
	logger   *zap.Logger
	cfg      *config.Config
}

func newRouter(d routerDeps) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))

	d.books.Register(router)

	metrics := httpx.NewMetrics(d.registry)
	limiter := httpx.NewRateLimitMiddleware(d.cfg.RateLimitRPS, d.cfg.RateLimitBurst)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(d.logger),
		httpx.AccessLogMiddleware(d.logger),
		metrics.Middleware,
		httpx.SecurityHeadersMiddleware(d.cfg.EnableHSTS),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(d.cfg.MaxBodyBytes),
	)
}
