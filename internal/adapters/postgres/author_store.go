package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen/quotable/internal/domain"
	"github.com/jsamuelsen/quotable/internal/ports"
)

// AuthorStore implements ports.AuthorRepository on PostgreSQL.
type AuthorStore struct {
	pool *pgxpool.Pool
}

var _ ports.AuthorRepository = (*AuthorStore)(nil)

// NewAuthorStore creates an author store backed by the given pool.
func NewAuthorStore(db *DB) *AuthorStore {
	return &AuthorStore{pool: db.Pool()}
}

// GetByID implements ports.AuthorRepository.
func (s *AuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	const query = `SELECT id, first, last FROM authors WHERE id = $1`

	author := &domain.Author{}
	err := s.pool.QueryRow(ctx, query, id).Scan(&author.ID, &author.First, &author.Last)
	if err != nil {
		return nil, mapError(err, "author", id)
	}

	return author, nil
}

// GetByName implements ports.AuthorRepository. The match is exact and
// case-sensitive: case or whitespace variants are distinct authors.
func (s *AuthorStore) GetByName(ctx context.Context, first, last string) (*domain.Author, error) {
	const query = `SELECT id, first, last FROM authors WHERE first = $1 AND last = $2 LIMIT 1`

	author := &domain.Author{}
	err := s.pool.QueryRow(ctx, query, first, last).Scan(&author.ID, &author.First, &author.Last)
	if err != nil {
		return nil, mapError(err, "author", 0)
	}

	return author, nil
}

// List implements ports.AuthorRepository.
func (s *AuthorStore) List(ctx context.Context, offset, limit int) ([]domain.Author, error) {
	const query = `SELECT id, first, last FROM authors ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := s.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("querying authors: %w", err)
	}
	defer rows.Close()

	authors := make([]domain.Author, 0, limit)

	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.First, &a.Last); err != nil {
			return nil, fmt.Errorf("scanning author row: %w", err)
		}

		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating author rows: %w", err)
	}

	return authors, nil
}

// Create implements ports.AuthorRepository.
func (s *AuthorStore) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	const query = `INSERT INTO authors (first, last) VALUES ($1, $2) RETURNING id, first, last`

	created := &domain.Author{}
	err := s.pool.QueryRow(ctx, query, author.First, author.Last).
		Scan(&created.ID, &created.First, &created.Last)
	if err != nil {
		return nil, fmt.Errorf("inserting author: %w", err)
	}

	return created, nil
}
