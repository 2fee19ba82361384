// Package seed populates an empty book store with the sample catalog.
package seed

import (
	"context"
	"fmt"

	"bookshelf/internal/book"
	"bookshelf/internal/cover"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Store is the part of the book store the loader needs.
type Store interface {
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, f book.Fields) error
}

type Loader struct {
	store   Store
	covers  cover.Resolver
	entries []Entry
	logger  *zap.Logger
	results *prometheus.CounterVec
}

// NewLoader returns a loader for Catalog. reg may be nil.
func NewLoader(store Store, covers cover.Resolver, logger *zap.Logger, reg prometheus.Registerer) *Loader {
	results := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seed_entries_total",
		Help: "Sample catalog entries processed by the seed loader, by result.",
	}, []string{"result"})
	if reg != nil {
		reg.MustRegister(results)
	}
	return &Loader{
		store:   store,
		covers:  covers,
		entries: Catalog,
		logger:  logger,
		results: results,
	}
}

// Run inserts the catalog if the store is empty and returns how many entries were
// stored. An entry that fails to insert is logged and skipped.
func (l *Loader) Run(ctx context.Context) (int, error) {
	count, err := l.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count books before seeding: %w", err)
	}
	if count > 0 {
		l.logger.Info("store already populated, skipping seed", zap.Int("books", count))
		return 0, nil
	}

	inserted := 0
	for _, e := range l.entries {
		f := book.Fields{
			Title:       e.Title,
			Author:      book.DefaultAuthor,
			Description: e.Description,
			Quote:       e.Quote,
			CoverImage:  l.covers.Resolve(e.Title),
		}
		if err := l.store.Insert(ctx, f); err != nil {
			l.logger.Error("seed entry failed", zap.String("title", e.Title), zap.Error(err))
			l.results.WithLabelValues("failed").Inc()
			continue
		}
		l.results.WithLabelValues("inserted").Inc()
		inserted++
	}

	l.logger.Info("seeded sample catalog", zap.Int("inserted", inserted), zap.Int("entries", len(l.entries)))
	return inserted, nil
}
