package book

import (
	"context"
	"fmt"

	"bookshelf/internal/cover"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	covers cover.Resolver
	logger *zap.Logger
}

// NewService creates a new book service. covers fills in missing cover images
// when the full list is read.
func NewService(repo Repository, covers cover.Resolver, logger *zap.Logger) *Service {
	return &Service{repo: repo, covers: covers, logger: logger}
}

// List returns every book by title, persisting a synthesized cover for any book
// that lacks one before returning.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.ListAll(ctx, OrderTitle)
	if err != nil {
		return nil, err
	}
	filled, err := s.fillMissingCovers(ctx, books)
	if err != nil {
		return nil, err
	}
	if filled > 0 {
		s.logger.Info("backfilled missing covers", zap.Int("count", filled))
	}
	return books, nil
}

func (s *Service) fillMissingCovers(ctx context.Context, books []Book) (int, error) {
	filled := 0
	for i := range books {
		if books[i].HasCover() {
			continue
		}
		url := s.covers.Resolve(books[i].Title)
		if err := s.repo.SetCoverImage(ctx, books[i].ID, url); err != nil {
			return filled, err
		}
		books[i].CoverImage = &url
		filled++
	}
	return filled, nil
}

// Search returns books whose title, author or description contains term.
func (s *Service) Search(ctx context.Context, term string) ([]Book, error) {
	return s.repo.Search(ctx, term)
}

// Sort returns every book in the requested order.
func (s *Service) Sort(ctx context.Context, order Order) ([]Book, error) {
	return s.repo.ListAll(ctx, order)
}

// Add stores a new book and returns the refreshed list.
func (s *Service) Add(ctx context.Context, f Fields) ([]Book, error) {
	if err := validateFields(f); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx, OrderTitle)
}

// Update overwrites every editable field of a book and returns the refreshed list.
// A nil id skips the write.
func (s *Service) Update(ctx context.Context, id *int64, f Fields) ([]Book, error) {
	if err := validateFields(f); err != nil {
		return nil, err
	}
	if id != nil {
		n, err := s.repo.UpdateFull(ctx, *id, f)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			s.logger.Debug("update matched no book", zap.Int64("id", *id))
		}
	}
	return s.repo.ListAll(ctx, OrderTitle)
}

// Edit overwrites the title, author, rate, date, notes, quote and cover of a book.
// A nil id skips the write.
func (s *Service) Edit(ctx context.Context, id *int64, f Fields) error {
	if err := validateFields(f); err != nil {
		return err
	}
	if id == nil {
		return nil
	}
	n, err := s.repo.UpdateDetails(ctx, *id, f)
	if err != nil {
		return err
	}
	if n == 0 {
		s.logger.Debug("edit matched no book", zap.Int64("id", *id))
	}
	return nil
}

// Delete removes a book. Deleting a missing id is not an error.
func (s *Service) Delete(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	return s.repo.Delete(ctx, *id)
}

func validateFields(f Fields) error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
