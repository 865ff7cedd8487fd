// Package controller holds the two page controllers of the shortener client:
// the submission flow of the input page and the result flow of the result
// page. Controllers own no presentation; they drive injected views and
// capabilities so any front-end (terminal UI, one-shot CLI, tests) can host them.
package controller

import (
	"context"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/feedback"
	"github.com/joshdurbin/url-shortener-client/internal/qr"
)

// Shortener submits a URL to the shortening endpoint
type Shortener interface {
	Shorten(ctx context.Context, originalURL string) (*domain.ShortenResponse, error)
}

// QREncoder turns text into a renderable QR image
type QREncoder interface {
	Encode(ctx context.Context, text string, opts qr.Options) (*qr.Image, error)
}

// ClipboardWriter is the primary copy mechanism
type ClipboardWriter interface {
	WriteText(ctx context.Context, text string) error
}

// LegacyCopier is the fallback copy mechanism
type LegacyCopier interface {
	CopySelection(text string) error
}

// CopySource is the short-URL text field a copy button reads from
type CopySource interface {
	// ShortURL returns the field's current value
	ShortURL() string

	// SelectAll selects the full contents of the field
	SelectAll()
}

// SubmissionView is the input page: form, submit control, error banner and result panel
type SubmissionView interface {
	CopySource
	feedback.Label

	// Focus places input focus in the URL field
	Focus()

	// SetLoading disables the submit control and shows its loading label, or
	// restores it. Setting the current value again changes nothing.
	SetLoading(loading bool)

	// ShowError shows message in the error banner
	ShowError(message string)

	// HideError hides the error banner
	HideError()

	// ShowResult fills the short-URL field, hides the form and shows the result panel
	ShowResult(shortURL string)
}

// ResultView is the result page: short-URL field, copy button and QR region
type ResultView interface {
	CopySource
	feedback.Label

	// ShowQR displays the encoded image with a caption
	ShowQR(img *qr.Image, caption string)

	// ShowQRFailure replaces the QR region with message
	ShowQRFailure(message string)
}
