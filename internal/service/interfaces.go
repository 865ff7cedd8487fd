package service

import (
	"context"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
)

// URLShortener defines the operations of the development backend
type URLShortener interface {
	// CreateShortURL creates a new short URL
	CreateShortURL(ctx context.Context, originalURL string) (*domain.URLEntry, error)

	// GetOriginalURL retrieves the original URL for a short code
	GetOriginalURL(ctx context.Context, shortCode string) (string, error)

	// Close closes the service and its dependencies
	Close() error
}
