package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshdurbin/url-shortener-client/internal/repository"
)

func TestRepository_CreateAndGet(t *testing.T) {
	repo := New()
	defer repo.Close()
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	entry, err := repo.CreateURL(ctx, "abc123", "https://example.com", createdAt)
	require.NoError(t, err)
	assert.Equal(t, "abc123", entry.ShortCode)
	assert.Equal(t, "https://example.com", entry.OriginalURL)
	assert.Equal(t, createdAt, entry.CreatedAt)

	got, err := repo.GetURL(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	exists, err := repo.URLExists(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_Errors(t *testing.T) {
	repo := New()
	ctx := context.Background()

	_, err := repo.GetURL(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	exists, err := repo.URLExists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.CreateURL(ctx, "abc123", "https://example.com", time.Now())
	require.NoError(t, err)
	_, err = repo.CreateURL(ctx, "abc123", "https://other.example.com", time.Now())
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := New()
	ctx := context.Background()

	_, err := repo.CreateURL(ctx, "abc123", "https://example.com", time.Now())
	require.NoError(t, err)

	got, err := repo.GetURL(ctx, "abc123")
	require.NoError(t, err)
	got.OriginalURL = "https://evil.example.com"

	again, err := repo.GetURL(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", again.OriginalURL)
}

func TestRepository_ConcurrentAccess(t *testing.T) {
	repo := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := fmt.Sprintf("code%d", i)
			_, err := repo.CreateURL(ctx, code, "https://example.com", time.Now())
			assert.NoError(t, err)
			_, err = repo.GetURL(ctx, code)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		exists, err := repo.URLExists(ctx, fmt.Sprintf("code%d", i))
		require.NoError(t, err)
		assert.True(t, exists)
	}
}
