package book

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS books (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		author VARCHAR(255) NOT NULL,
		rate DECIMAL(3,1),
		date DATE,
		notes TEXT,
		cover_image TEXT,
		description TEXT,
		published_date VARCHAR(50),
		page_count INTEGER,
		categories TEXT[],
		average_rating DECIMAL(2,1),
		quote TEXT
	)`

const selectColumns = `id, title, author, rate, date, notes, quote, cover_image,
	description, published_date, page_count, categories, average_rating`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) InitSchema(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, schemaSQL); err != nil {
		return fmt.Errorf("create books table: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var total int
	if err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return total, nil
}

func (r *PostgresRepo) ListAll(ctx context.Context, order Order) ([]Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books ORDER BY %s", selectColumns, order.orderBy())
	return r.query(ctx, query)
}

func (r *PostgresRepo) Search(ctx context.Context, term string) ([]Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books
		WHERE title ILIKE $1
		   OR author ILIKE $1
		   OR description ILIKE $1
		ORDER BY title`, selectColumns)
	return r.query(ctx, query, "%"+escapeLike(term)+"%")
}

func (r *PostgresRepo) ListMissingCovers(ctx context.Context) ([]Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books
		WHERE cover_image IS NULL OR cover_image = ''
		ORDER BY id`, selectColumns)
	return r.query(ctx, query)
}

func (r *PostgresRepo) Insert(ctx context.Context, f Fields) error {
	f = Normalize(f)
	const sql = `
		INSERT INTO books (
			title, author, rate, date, notes, quote, cover_image,
			description, published_date, page_count, categories, average_rating
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql,
		f.Title, f.Author, f.Rate, f.Date, nullable(f.Notes), nullable(f.Quote), nullable(f.CoverImage),
		nullable(f.Description), nullable(f.PublishedDate), f.PageCount, f.Categories, f.AverageRating,
	)
	if err != nil {
		return fmt.Errorf("insert book %q: %w", f.Title, err)
	}
	return nil
}

func (r *PostgresRepo) UpdateFull(ctx context.Context, id int64, f Fields) (int64, error) {
	f = Normalize(f)
	const sql = `
		UPDATE books
		SET title = $1, author = $2, rate = $3, date = $4,
		    notes = $5, quote = $6, cover_image = $7,
		    page_count = $8, average_rating = $9
		WHERE id = $10`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql,
		f.Title, f.Author, f.Rate, f.Date,
		nullable(f.Notes), nullable(f.Quote), nullable(f.CoverImage),
		f.PageCount, f.AverageRating, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update book %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepo) UpdateDetails(ctx context.Context, id int64, f Fields) (int64, error) {
	f = Normalize(f)
	const sql = `
		UPDATE books
		SET title = $1, author = $2, rate = $3, date = $4,
		    notes = $5, quote = $6, cover_image = $7
		WHERE id = $8`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql,
		f.Title, f.Author, f.Rate, f.Date,
		nullable(f.Notes), nullable(f.Quote), nullable(f.CoverImage), id,
	)
	if err != nil {
		return 0, fmt.Errorf("edit book %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, "DELETE FROM books WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

func (r *PostgresRepo) SetCoverImage(ctx context.Context, id int64, url string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, "UPDATE books SET cover_image = $1 WHERE id = $2", url, id); err != nil {
		return fmt.Errorf("set cover for book %d: %w", id, err)
	}
	return nil
}

func (r *PostgresRepo) query(ctx context.Context, sql string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Rate, &b.Date, &b.Notes, &b.Quote, &b.CoverImage,
		&b.Description, &b.PublishedDate, &b.PageCount, &b.Categories, &b.AverageRating,
	)
	return b, err
}

// escapeLike makes term match literally inside an ILIKE pattern.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
