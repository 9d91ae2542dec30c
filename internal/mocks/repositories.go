// Package mocks provides testify mocks for the repository ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/quotable/internal/domain"
	"github.com/jsamuelsen/quotable/internal/ports"
)

// AuthorRepository is a mock implementation of ports.AuthorRepository.
type AuthorRepository struct {
	mock.Mock
}

var _ ports.AuthorRepository = (*AuthorRepository)(nil)

// GetByID implements ports.AuthorRepository.
func (m *AuthorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Author), args.Error(1)
}

// GetByName implements ports.AuthorRepository.
func (m *AuthorRepository) GetByName(ctx context.Context, first, last string) (*domain.Author, error) {
	args := m.Called(ctx, first, last)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Author), args.Error(1)
}

// List implements ports.AuthorRepository.
func (m *AuthorRepository) List(ctx context.Context, offset, limit int) ([]domain.Author, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Author), args.Error(1)
}

// Create implements ports.AuthorRepository.
func (m *AuthorRepository) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Author), args.Error(1)
}

// QuoteRepository is a mock implementation of ports.QuoteRepository.
type QuoteRepository struct {
	mock.Mock
}

var _ ports.QuoteRepository = (*QuoteRepository)(nil)

// GetByID implements ports.QuoteRepository.
func (m *QuoteRepository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Quote), args.Error(1)
}

// List implements ports.QuoteRepository.
func (m *QuoteRepository) List(ctx context.Context, offset, limit int) ([]domain.Quote, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Quote), args.Error(1)
}

// ListByAuthor implements ports.QuoteRepository.
func (m *QuoteRepository) ListByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]domain.Quote, error) {
	args := m.Called(ctx, authorID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Quote), args.Error(1)
}

// Create implements ports.QuoteRepository.
func (m *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Quote), args.Error(1)
}
