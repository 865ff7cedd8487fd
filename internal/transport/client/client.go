package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/logger"
)

// DefaultTimeout bounds a single shorten request
const DefaultTimeout = 30 * time.Second

// Client represents an HTTP client for the shortening endpoint
type Client struct {
	serverURL string
	http      *resty.Client
}

// NewClient creates a new shortening endpoint client
func NewClient(serverURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	serverURL = strings.TrimRight(serverURL, "/")
	return &Client{
		serverURL: serverURL,
		http: resty.New().
			SetBaseURL(serverURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetLogger(logger.Log),
	}
}

// Shorten submits originalURL to POST /shorten. Every failure is returned as
// a *domain.RemoteError; its Message carries the endpoint's "error" field
// when the response had one.
func (c *Client) Shorten(ctx context.Context, originalURL string) (*domain.ShortenResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(domain.ShortenRequest{URL: originalURL}).
		Post("/shorten")
	if err != nil {
		return nil, &domain.RemoteError{Err: fmt.Errorf("failed to make request: %w", err)}
	}

	var result domain.ShortenResponse
	decodeErr := json.Unmarshal(resp.Body(), &result)

	if !resp.IsSuccess() {
		remote := &domain.RemoteError{
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("server returned status %d", resp.StatusCode()),
		}
		if decodeErr == nil {
			remote.Message = result.Error
		}
		return nil, remote
	}

	if decodeErr != nil {
		return nil, &domain.RemoteError{
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("failed to decode response: %w", decodeErr),
		}
	}

	if result.ShortURL == "" {
		return nil, &domain.RemoteError{
			StatusCode: resp.StatusCode(),
			Message:    result.Error,
			Err:        domain.ErrMissingShortURL,
		}
	}

	return &result, nil
}

// ServerURL returns the endpoint base URL
func (c *Client) ServerURL() string {
	return c.serverURL
}
