package memory

import (
	"context"
	"sync"
	"time"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/repository"
)

// Repository implements repository.URLRepository using in-memory storage
type Repository struct {
	data  map[string]domain.URLEntry
	mutex sync.RWMutex
}

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		data: make(map[string]domain.URLEntry),
	}
}

// CreateURL stores a new short URL entry
func (r *Repository) CreateURL(ctx context.Context, shortCode, originalURL string, createdAt time.Time) (*domain.URLEntry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.data[shortCode]; exists {
		return nil, repository.ErrDuplicate
	}

	entry := domain.URLEntry{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CreatedAt:   createdAt,
	}
	r.data[shortCode] = entry

	return &entry, nil
}

// GetURL retrieves a URL entry by its short code
func (r *Repository) GetURL(ctx context.Context, shortCode string) (*domain.URLEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, exists := r.data[shortCode]
	if !exists {
		return nil, repository.ErrNotFound
	}

	// Return a copy to prevent external modification
	return &entry, nil
}

// URLExists checks if a short code exists
func (r *Repository) URLExists(ctx context.Context, shortCode string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.data[shortCode]
	return exists, nil
}

// Close drops all entries
func (r *Repository) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.data = make(map[string]domain.URLEntry)
	return nil
}

// Ensure Repository implements the interface
var _ repository.URLRepository = (*Repository)(nil)
