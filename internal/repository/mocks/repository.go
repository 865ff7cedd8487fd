package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
)

// URLRepository is a mock implementation of repository.URLRepository
type URLRepository struct {
	mock.Mock
}

// CreateURL stores a new short URL entry
func (m *URLRepository) CreateURL(ctx context.Context, shortCode, originalURL string, createdAt time.Time) (*domain.URLEntry, error) {
	args := m.Called(ctx, shortCode, originalURL, createdAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.URLEntry), args.Error(1)
}

// GetURL retrieves a URL entry by its short code
func (m *URLRepository) GetURL(ctx context.Context, shortCode string) (*domain.URLEntry, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.URLEntry), args.Error(1)
}

// URLExists checks if a short code exists
func (m *URLRepository) URLExists(ctx context.Context, shortCode string) (bool, error) {
	args := m.Called(ctx, shortCode)
	return args.Bool(0), args.Error(1)
}

// Close releases the storage
func (m *URLRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
