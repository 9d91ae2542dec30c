package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen/quotable/internal/domain"
	"github.com/jsamuelsen/quotable/internal/ports"
)

// QuoteStore implements ports.QuoteRepository on PostgreSQL.
type QuoteStore struct {
	pool *pgxpool.Pool
}

var _ ports.QuoteRepository = (*QuoteStore)(nil)

// NewQuoteStore creates a quote store backed by the given pool.
func NewQuoteStore(db *DB) *QuoteStore {
	return &QuoteStore{pool: db.Pool()}
}

// GetByID implements ports.QuoteRepository. The author is resolved in
// the same round trip since single-quote views always nest it.
func (s *QuoteStore) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	const query = `
		SELECT q.id, q.content, q.author_id, q.posted_at, a.id, a.first, a.last
		FROM quotes q
		JOIN authors a ON a.id = q.author_id
		WHERE q.id = $1`

	quote := &domain.Quote{Author: &domain.Author{}}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&quote.ID,
		&quote.Content,
		&quote.AuthorID,
		&quote.PostedAt,
		&quote.Author.ID,
		&quote.Author.First,
		&quote.Author.Last,
	)
	if err != nil {
		return nil, mapError(err, "quote", id)
	}

	return quote, nil
}

// List implements ports.QuoteRepository. Authors are left unresolved;
// the list projection exposes only id and content.
func (s *QuoteStore) List(ctx context.Context, offset, limit int) ([]domain.Quote, error) {
	const query = `SELECT id, content, author_id, posted_at FROM quotes ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := s.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// ListByAuthor implements ports.QuoteRepository.
func (s *QuoteStore) ListByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]domain.Quote, error) {
	const query = `
		SELECT id, content, author_id, posted_at
		FROM quotes
		WHERE author_id = $1
		ORDER BY id OFFSET $2 LIMIT $3`

	rows, err := s.pool.Query(ctx, query, authorID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("querying quotes for author %d: %w", authorID, err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// Create implements ports.QuoteRepository.
func (s *QuoteStore) Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	const query = `
		INSERT INTO quotes (content, author_id, posted_at)
		VALUES ($1, $2, $3)
		RETURNING id, content, author_id, posted_at`

	created := &domain.Quote{}
	err := s.pool.QueryRow(ctx, query, quote.Content, quote.AuthorID, quote.PostedAt).Scan(
		&created.ID,
		&created.Content,
		&created.AuthorID,
		&created.PostedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting quote: %w", err)
	}

	return created, nil
}

// rowScanner is the subset of pgx.Rows the scan helper needs.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanQuotes(rows rowScanner) ([]domain.Quote, error) {
	var quotes []domain.Quote

	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(&q.ID, &q.Content, &q.AuthorID, &q.PostedAt); err != nil {
			return nil, fmt.Errorf("scanning quote row: %w", err)
		}

		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quote rows: %w", err)
	}

	return quotes, nil
}
