// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotable/internal/domain"
	"github.com/jsamuelsen/quotable/internal/ports"
)

// AuthorName is a validated (first, last) pair.
type AuthorName struct {
	First string
	Last  string
}

// CreateQuoteInput is the validated input for quote creation.
// Validation happens in the HTTP adapter before this layer is reached.
type CreateQuoteInput struct {
	Content string
	Author  AuthorName
}

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	authors ports.AuthorRepository
	quotes  ports.QuoteRepository
	logger  *slog.Logger
	now     func() time.Time
}

// QuoteServiceConfig contains dependencies for the quote service.
type QuoteServiceConfig struct {
	Authors ports.AuthorRepository
	Quotes  ports.QuoteRepository
	Logger  *slog.Logger

	// Now overrides the clock; nil means time.Now. Used by tests.
	Now func() time.Time
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &QuoteService{
		authors: cfg.Authors,
		quotes:  cfg.Quotes,
		logger:  cfg.Logger,
		now:     now,
	}
}

// CreateQuote resolves the quote's author by exact (first, last) match,
// creating one on a miss, then persists the quote against the resolved
// author. The lookup and insert are two independent commits: concurrent
// requests naming the same new author can both insert, which is accepted
// behavior rather than a defect (no unique constraint backs the dedup).
func (s *QuoteService) CreateQuote(ctx context.Context, in CreateQuoteInput) (*domain.Quote, error) {
	author, err := s.authors.GetByName(ctx, in.Author.First, in.Author.Last)

	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "reusing existing author",
			slog.Int64("author_id", author.ID),
		)

	case domain.IsNotFound(err):
		author, err = s.authors.Create(ctx, &domain.Author{
			First: in.Author.First,
			Last:  in.Author.Last,
		})
		if err != nil {
			return nil, fmt.Errorf("creating author: %w", err)
		}

		s.logger.InfoContext(ctx, "created new author",
			slog.Int64("author_id", author.ID),
		)

	default:
		return nil, fmt.Errorf("resolving author: %w", err)
	}

	quote, err := s.quotes.Create(ctx, &domain.Quote{
		Content:  in.Content,
		AuthorID: author.ID,
		PostedAt: s.now().UTC(),
	})
	if err != nil {
		// The author commit above is not rolled back; a failure here
		// can leave an author row without quotes. Accepted limitation.
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	quote.Author = author

	s.logger.InfoContext(ctx, "created quote",
		slog.Int64("quote_id", quote.ID),
		slog.Int64("author_id", author.ID),
	)

	return quote, nil
}

// GetQuote retrieves a quote by id with its author resolved.
func (s *QuoteService) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return quote, nil
}

// ListQuotes returns a page of quotes for the reduced list projection.
func (s *QuoteService) ListQuotes(ctx context.Context, offset, limit int) ([]domain.Quote, error) {
	quotes, err := s.quotes.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	return quotes, nil
}

// ListQuotesByAuthor returns a page of the given author's quotes.
// The author is fetched first so a missing author surfaces as not-found
// rather than an empty list.
func (s *QuoteService) ListQuotesByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]domain.Quote, error) {
	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	quotes, err := s.quotes.ListByAuthor(ctx, authorID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing quotes for author %d: %w", authorID, err)
	}

	return quotes, nil
}
