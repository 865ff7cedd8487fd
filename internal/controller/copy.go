package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshdurbin/url-shortener-client/internal/feedback"
	"github.com/joshdurbin/url-shortener-client/internal/logger"
	"github.com/joshdurbin/url-shortener-client/internal/metrics"
)

// ErrNoClipboard is returned when neither copy mechanism is configured
var ErrNoClipboard = errors.New("no clipboard mechanism available")

// Copier writes text to the clipboard and acknowledges it on a copy button.
// The primary writer is tried first; any error or panic from it falls back
// to the legacy copier.
type Copier struct {
	primary  ClipboardWriter
	fallback LegacyCopier
	feedback *feedback.Feedback
	metrics  *metrics.Metrics
}

// NewCopier creates a Copier acknowledging on fb. Either mechanism may be nil.
func NewCopier(primary ClipboardWriter, fallback LegacyCopier, fb *feedback.Feedback, m *metrics.Metrics) *Copier {
	return &Copier{
		primary:  primary,
		fallback: fallback,
		feedback: fb,
		metrics:  m,
	}
}

// Copy writes text and acknowledges. When both mechanisms fail nothing is
// acknowledged and the joined error is returned.
func (c *Copier) Copy(ctx context.Context, text string) error {
	primaryErr := c.writePrimary(ctx, text)
	if primaryErr == nil {
		c.metrics.CopyPerformed(metrics.CopyClipboard)
		c.feedback.Acknowledge()
		return nil
	}
	logger.Log.Debugw("clipboard write failed, falling back", "error", primaryErr)

	if c.fallback == nil {
		c.metrics.CopyPerformed(metrics.CopyFailed)
		return primaryErr
	}
	if err := c.fallback.CopySelection(text); err != nil {
		c.metrics.CopyPerformed(metrics.CopyFailed)
		logger.Log.Warnw("failed to copy short URL", "error", err)
		return errors.Join(primaryErr, err)
	}

	c.metrics.CopyPerformed(metrics.CopyFallback)
	c.feedback.Acknowledge()
	return nil
}

// Feedback returns the acknowledgment driven by this copier
func (c *Copier) Feedback() *feedback.Feedback {
	return c.feedback
}

func (c *Copier) writePrimary(ctx context.Context, text string) (err error) {
	if c.primary == nil {
		return ErrNoClipboard
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard write panicked: %v", r)
		}
	}()
	return c.primary.WriteText(ctx, text)
}
