// Package backfill assigns synthesized cover images to books that have none.
package backfill

import (
	"context"
	"fmt"

	"bookshelf/internal/book"
	"bookshelf/internal/cover"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Store is the part of the book store the job needs.
type Store interface {
	ListMissingCovers(ctx context.Context) ([]book.Book, error)
	SetCoverImage(ctx context.Context, id int64, url string) error
}

// Result summarizes one run.
type Result struct {
	Found   int
	Updated int
	Failed  int
}

type Job struct {
	store   Store
	covers  cover.Resolver
	logger  *zap.Logger
	updated prometheus.Counter
}

// NewJob returns a backfill job. reg may be nil.
func NewJob(store Store, covers cover.Resolver, logger *zap.Logger, reg prometheus.Registerer) *Job {
	updated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cover_backfill_updated_total",
		Help: "Books given a synthesized cover by the backfill job.",
	})
	if reg != nil {
		reg.MustRegister(updated)
	}
	return &Job{store: store, covers: covers, logger: logger, updated: updated}
}

// Run fills every book whose cover is null or empty. A record that fails to
// update is logged and counted; the scan itself failing is an error.
func (j *Job) Run(ctx context.Context) (Result, error) {
	books, err := j.store.ListMissingCovers(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list books missing covers: %w", err)
	}

	res := Result{Found: len(books)}
	j.logger.Info("found books that need cover images", zap.Int("count", res.Found))

	for _, b := range books {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		url := j.covers.Resolve(b.Title)
		if err := j.store.SetCoverImage(ctx, b.ID, url); err != nil {
			j.logger.Error("cover update failed", zap.Int64("id", b.ID), zap.String("title", b.Title), zap.Error(err))
			res.Failed++
			continue
		}
		j.logger.Info("updated cover", zap.Int64("id", b.ID), zap.String("title", b.Title))
		j.updated.Inc()
		res.Updated++
	}
	return res, nil
}
