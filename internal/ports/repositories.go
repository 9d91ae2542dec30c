// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotable/internal/domain"
)

// AuthorRepository is the persistence contract for authors.
// All operations are synchronous single-row reads or commits.
type AuthorRepository interface {
	// GetByID retrieves an author by its identifier.
	// Returns domain.ErrNotFound if no row exists.
	GetByID(ctx context.Context, id int64) (*domain.Author, error)

	// GetByName retrieves an author by exact, case-sensitive match
	// on (first, last). Returns domain.ErrNotFound on a miss; the
	// get-or-create resolution in the app layer relies on that.
	GetByName(ctx context.Context, first, last string) (*domain.Author, error)

	// List returns authors ordered by id, applying offset/limit.
	List(ctx context.Context, offset, limit int) ([]domain.Author, error)

	// Create inserts a new author and returns it with its generated id.
	Create(ctx context.Context, author *domain.Author) (*domain.Author, error)
}

// QuoteRepository is the persistence contract for quotes.
type QuoteRepository interface {
	// GetByID retrieves a quote with its author resolved.
	// Returns domain.ErrNotFound if no row exists.
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)

	// List returns quotes ordered by id, applying offset/limit.
	// Authors are not resolved; list views project only id and content.
	List(ctx context.Context, offset, limit int) ([]domain.Quote, error)

	// ListByAuthor returns an author's quotes, applying offset/limit.
	ListByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]domain.Quote, error)

	// Create inserts a new quote and returns it with its generated id.
	// PostedAt must already be set by the caller.
	Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
}
