package repository

import (
	"context"
	"errors"
	"time"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
)

// ErrNotFound is returned when a short code is unknown
var ErrNotFound = errors.New("short code not found")

// ErrDuplicate is returned when a short code is already taken
var ErrDuplicate = errors.New("short code already exists")

// URLRepository defines the storage of the development backend
type URLRepository interface {
	// CreateURL stores a new short URL entry
	CreateURL(ctx context.Context, shortCode, originalURL string, createdAt time.Time) (*domain.URLEntry, error)

	// GetURL retrieves a URL entry by its short code
	GetURL(ctx context.Context, shortCode string) (*domain.URLEntry, error)

	// URLExists checks if a short code exists
	URLExists(ctx context.Context, shortCode string) (bool, error)

	// Close releases the storage
	Close() error
}
