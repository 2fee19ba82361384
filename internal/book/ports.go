package book

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mock_repository.go -package=book bookshelf/internal/book Repository

// Repository defines the contract for book data storage.
type Repository interface {
	InitSchema(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	ListAll(ctx context.Context, order Order) ([]Book, error)
	Search(ctx context.Context, term string) ([]Book, error)
	Insert(ctx context.Context, f Fields) error
	// UpdateFull overwrites every editable field. A missing id affects zero rows
	// and is not an error.
	UpdateFull(ctx context.Context, id int64, f Fields) (int64, error)
	// UpdateDetails overwrites title, author, rate, date, notes, quote and
	// cover_image only.
	UpdateDetails(ctx context.Context, id int64, f Fields) (int64, error)
	Delete(ctx context.Context, id int64) error
	SetCoverImage(ctx context.Context, id int64, url string) error
	ListMissingCovers(ctx context.Context) ([]Book, error)
}

// Page is the data handed to the list view.
type Page struct {
	Books   []Book
	Error   string
	Success string
}

// Renderer draws the list view.
type Renderer interface {
	Render(w io.Writer, page Page) error
}
