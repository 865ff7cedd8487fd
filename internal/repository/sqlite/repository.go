package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS urls (
	short_code   TEXT PRIMARY KEY,
	original_url TEXT NOT NULL,
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_urls_created_at ON urls(created_at);
`

// Repository implements repository.URLRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(databasePath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

// CreateURL creates a new short URL entry
func (r *Repository) CreateURL(ctx context.Context, shortCode, originalURL string, createdAt time.Time) (*domain.URLEntry, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO urls (short_code, original_url, created_at) VALUES (?, ?, ?)`,
		shortCode, originalURL, createdAt.UTC())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, repository.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	return &domain.URLEntry{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

// GetURL retrieves a URL entry by its short code
func (r *Repository) GetURL(ctx context.Context, shortCode string) (*domain.URLEntry, error) {
	entry := &domain.URLEntry{}
	err := r.db.QueryRowContext(ctx,
		`SELECT short_code, original_url, created_at FROM urls WHERE short_code = ?`,
		shortCode).Scan(&entry.ShortCode, &entry.OriginalURL, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get URL: %w", err)
	}

	return entry, nil
}

// URLExists checks if a short code exists
func (r *Repository) URLExists(ctx context.Context, shortCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM urls WHERE short_code = ?)`,
		shortCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check URL existence: %w", err)
	}
	return exists, nil
}

// Close closes the repository connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Ensure Repository implements the interface
var _ repository.URLRepository = (*Repository)(nil)
