package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/logger"
	"github.com/joshdurbin/url-shortener-client/internal/repository"
	"github.com/joshdurbin/url-shortener-client/internal/shortener"
)

// MaxAttempts bounds the number of short codes tried before giving up
const MaxAttempts = 10

var (
	// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs
	ErrInvalidURL = errors.New("invalid URL")

	// ErrTooManyAttempts is returned when every generated code collided
	ErrTooManyAttempts = errors.New("too many attempts")

	// ErrNotFound is returned for unknown short codes
	ErrNotFound = repository.ErrNotFound
)

// urlShortener implements URLShortener interface
type urlShortener struct {
	repo      repository.URLRepository
	generator shortener.Generator
	now       func() time.Time
}

// NewURLShortener creates a new URL shortener service
func NewURLShortener(repo repository.URLRepository, generator shortener.Generator) URLShortener {
	return &urlShortener{
		repo:      repo,
		generator: generator,
		now:       time.Now,
	}
}

// CreateShortURL creates a new short URL
func (s *urlShortener) CreateShortURL(ctx context.Context, originalURL string) (*domain.URLEntry, error) {
	if err := domain.ValidateURL(originalURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	parsed, err := url.Parse(originalURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	// Only allow HTTP and HTTPS schemes
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: only HTTP and HTTPS are supported", ErrInvalidURL)
	}

	createdAt := s.now()
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		shortCode, err := s.generator.GenerateShortCode(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		exists, err := s.repo.URLExists(ctx, shortCode)
		if err != nil {
			return nil, fmt.Errorf("failed to check URL existence: %w", err)
		}
		if exists {
			logger.Log.Debugw("short code collision", "short_code", shortCode, "attempt", attempt)
			continue
		}

		entry, err := s.repo.CreateURL(ctx, shortCode, originalURL, createdAt)
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with a concurrent insert
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create URL: %w", err)
		}

		logger.Log.Infow("short URL created", "short_code", shortCode, "original_url", originalURL)
		return entry, nil
	}

	return nil, ErrTooManyAttempts
}

// GetOriginalURL retrieves the original URL for a short code
func (s *urlShortener) GetOriginalURL(ctx context.Context, shortCode string) (string, error) {
	entry, err := s.repo.GetURL(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get URL: %w", err)
	}
	return entry.OriginalURL, nil
}

// Close closes the service and its dependencies
func (s *urlShortener) Close() error {
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("failed to close repository: %w", err)
	}
	return nil
}

// Ensure urlShortener implements URLShortener interface
var _ URLShortener = (*urlShortener)(nil)
