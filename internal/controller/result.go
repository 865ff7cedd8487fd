package controller

import (
	"context"
	"fmt"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/i18n"
	"github.com/joshdurbin/url-shortener-client/internal/logger"
	"github.com/joshdurbin/url-shortener-client/internal/metrics"
	"github.com/joshdurbin/url-shortener-client/internal/qr"
)

// ResultController presents an already produced short URL: it renders the QR
// code once and serves copy requests.
type ResultController struct {
	view    ResultView
	encoder QREncoder
	copier  *Copier
	options qr.Options
	metrics *metrics.Metrics
	phase   domain.QRPhase
}

// ResultOption configures a ResultController
type ResultOption func(*ResultController)

// WithQROptions overrides qr.DefaultOptions
func WithQROptions(opts qr.Options) ResultOption {
	return func(c *ResultController) {
		c.options = opts
	}
}

// WithResultMetrics records QR outcomes on m
func WithResultMetrics(m *metrics.Metrics) ResultOption {
	return func(c *ResultController) {
		c.metrics = m
	}
}

// NewResultController creates a controller for view
func NewResultController(view ResultView, encoder QREncoder, copier *Copier, opts ...ResultOption) *ResultController {
	c := &ResultController{
		view:    view,
		encoder: encoder,
		copier:  copier,
		options: qr.DefaultOptions(),
		phase:   domain.QRPending,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate renders the QR code of shortURL. A failure shows a static message
// instead and is never retried; Activate itself never fails.
func (c *ResultController) Activate(ctx context.Context, shortURL string) {
	if c.phase != domain.QRPending {
		return
	}

	img, err := c.encode(ctx, shortURL)
	if err != nil {
		logger.Log.Errorw("failed to generate QR code", "url", shortURL, "error", err)
		c.phase = domain.QRFailed
		c.metrics.QRFinished(metrics.QRFailed)
		c.view.ShowQRFailure(i18n.T("qr.failed"))
		return
	}

	c.phase = domain.QRRendered
	c.metrics.QRFinished(metrics.QRRendered)
	c.view.ShowQR(img, i18n.T("qr.caption"))
}

// QRPhase returns the state of the QR region
func (c *ResultController) QRPhase() domain.QRPhase {
	return c.phase
}

// OnCopyRequested selects the short-URL field and copies its contents
func (c *ResultController) OnCopyRequested(ctx context.Context) error {
	if c.copier == nil {
		return ErrNoClipboard
	}

	c.view.SelectAll()
	return c.copier.Copy(ctx, c.view.ShortURL())
}

func (c *ResultController) encode(ctx context.Context, text string) (img *qr.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("QR encoder panicked: %v", r)
		}
	}()

	img, err = c.encoder.Encode(ctx, text, c.options)
	if err == nil && img == nil {
		err = fmt.Errorf("QR encoder returned no image")
	}
	return img, err
}
