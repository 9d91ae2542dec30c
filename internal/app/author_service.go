package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotable/internal/domain"
	"github.com/jsamuelsen/quotable/internal/ports"
)

// AuthorService orchestrates author-related use cases.
type AuthorService struct {
	authors ports.AuthorRepository
	logger  *slog.Logger
}

// AuthorServiceConfig contains dependencies for the author service.
type AuthorServiceConfig struct {
	Authors ports.AuthorRepository
	Logger  *slog.Logger
}

// NewAuthorService creates a new author service with the provided dependencies.
func NewAuthorService(cfg AuthorServiceConfig) *AuthorService {
	return &AuthorService{
		authors: cfg.Authors,
		logger:  cfg.Logger,
	}
}

// GetAuthor retrieves an author by id.
func (s *AuthorService) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return author, nil
}

// ListAuthors returns a page of authors in full representation.
func (s *AuthorService) ListAuthors(ctx context.Context, offset, limit int) ([]domain.Author, error) {
	authors, err := s.authors.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}

	s.logger.DebugContext(ctx, "listed authors",
		slog.Int("count", len(authors)),
		slog.Int("offset", offset),
		slog.Int("limit", limit),
	)

	return authors, nil
}
