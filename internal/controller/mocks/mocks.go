package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/qr"
)

// Shortener is a mock implementation of controller.Shortener
type Shortener struct {
	mock.Mock
}

// Shorten submits a URL to the shortening endpoint
func (m *Shortener) Shorten(ctx context.Context, originalURL string) (*domain.ShortenResponse, error) {
	args := m.Called(ctx, originalURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortenResponse), args.Error(1)
}

// QREncoder is a mock implementation of controller.QREncoder
type QREncoder struct {
	mock.Mock
}

// Encode turns text into a QR image
func (m *QREncoder) Encode(ctx context.Context, text string, opts qr.Options) (*qr.Image, error) {
	args := m.Called(ctx, text, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qr.Image), args.Error(1)
}

// ClipboardWriter is a mock implementation of controller.ClipboardWriter
type ClipboardWriter struct {
	mock.Mock
}

// WriteText copies text to the clipboard
func (m *ClipboardWriter) WriteText(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

// LegacyCopier is a mock implementation of controller.LegacyCopier
type LegacyCopier struct {
	mock.Mock
}

// CopySelection copies text through the fallback mechanism
func (m *LegacyCopier) CopySelection(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
