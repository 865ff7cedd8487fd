package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
)

// URLShortener is a mock implementation of service.URLShortener
type URLShortener struct {
	mock.Mock
}

// CreateShortURL creates a new short URL
func (m *URLShortener) CreateShortURL(ctx context.Context, originalURL string) (*domain.URLEntry, error) {
	args := m.Called(ctx, originalURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.URLEntry), args.Error(1)
}

// GetOriginalURL retrieves the original URL for a short code
func (m *URLShortener) GetOriginalURL(ctx context.Context, shortCode string) (string, error) {
	args := m.Called(ctx, shortCode)
	return args.String(0), args.Error(1)
}

// Close closes the service and its dependencies
func (m *URLShortener) Close() error {
	args := m.Called()
	return args.Error(0)
}
