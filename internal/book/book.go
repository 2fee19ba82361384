package book

import (
	"errors"
	"strings"
	"time"
)

// DefaultAuthor is stored when a book is written without an author.
const DefaultAuthor = "Unknown"

// ErrInvalidInput is returned when submitted fields fail validation.
var ErrInvalidInput = errors.New("invalid book input")

// Book represents a catalog record.
type Book struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Rate          *float64   `json:"rate,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Quote         *string    `json:"quote,omitempty"`
	CoverImage    *string    `json:"cover_image,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PublishedDate *string    `json:"published_date,omitempty"`
	PageCount     *int       `json:"page_count,omitempty"`
	Categories    []string   `json:"categories,omitempty"`
	AverageRating *float64   `json:"average_rating,omitempty"`
}

// HasCover reports whether the book has a non-empty cover image.
func (b Book) HasCover() bool {
	return b.CoverImage != nil && *b.CoverImage != ""
}

// Fields holds the writable attributes of a book. Empty strings and nil pointers
// are stored as NULL, except where Normalize supplies a default.
type Fields struct {
	Title         string     `json:"title" validate:"required"`
	Author        string     `json:"author"`
	Rate          *float64   `json:"rate"`
	Date          *time.Time `json:"date"`
	Notes         string     `json:"notes"`
	Quote         string     `json:"quote"`
	CoverImage    string     `json:"cover_image"`
	Description   string     `json:"description"`
	PublishedDate string     `json:"published_date"`
	PageCount     *int       `json:"page_count" validate:"omitempty,gte=0"`
	Categories    []string   `json:"categories"`
	AverageRating *float64   `json:"average_rating"`
}

// Normalize applies the write-side defaults: a blank author becomes DefaultAuthor
// and a blank quote is taken from the first line of notes.
func Normalize(f Fields) Fields {
	if strings.TrimSpace(f.Author) == "" {
		f.Author = DefaultAuthor
	}
	if f.Quote == "" && f.Notes != "" {
		f.Quote = FirstLine(f.Notes)
	}
	return f
}

// FirstLine returns s up to the first newline, without a trailing carriage return.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "\r")
}

// Order selects how ListAll sorts books.
type Order string

const (
	OrderTitle    Order = "title"
	OrderRateDesc Order = "rate"
	OrderDateDesc Order = "date"
)

// ParseOrder maps a sort request to an Order; anything unrecognized sorts by title.
func ParseOrder(s string) Order {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case OrderRateDesc:
		return OrderRateDesc
	case OrderDateDesc:
		return OrderDateDesc
	default:
		return OrderTitle
	}
}

func (o Order) orderBy() string {
	switch o {
	case OrderRateDesc:
		return "rate DESC NULLS LAST, title ASC"
	case OrderDateDesc:
		return "date DESC NULLS LAST, title ASC"
	default:
		return "title ASC"
	}
}
