package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshdurbin/url-shortener-client/internal/controller"
	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/feedback"
	"github.com/joshdurbin/url-shortener-client/internal/metrics"
	"github.com/joshdurbin/url-shortener-client/internal/qr"
)

// ShortenOptions selects what Shorten does with the short URL
type ShortenOptions struct {
	Copy   bool
	QR     bool
	QRFile string
	Invert bool
}

// ErrQRNotWritten is returned when a QR file was requested but encoding failed
var ErrQRNotWritten = errors.New("QR code could not be generated")

// Commands provides command-line operations for the client
type Commands struct {
	deps   controller.Deps
	out    io.Writer
	errOut io.Writer
}

// NewCommands creates a new Commands instance writing to out and errOut
func NewCommands(deps controller.Deps, out, errOut io.Writer) *Commands {
	return &Commands{
		deps:   deps,
		out:    out,
		errOut: errOut,
	}
}

// Shorten submits rawURL and presents the short URL. The returned error has
// already been shown to the user when it is a domain error.
func (c *Commands) Shorten(ctx context.Context, rawURL string, opts ShortenOptions) error {
	p := newPage(c.out, c.errOut, opts.Invert, opts.QR)
	fb := feedback.New(p)
	defer fb.Stop()
	copier := controller.NewCopier(c.deps.Clipboard, c.deps.Legacy, fb, c.deps.Metrics)

	submission := controller.NewSubmissionController(p, c.deps.Shortener,
		controller.WithSubmissionCopier(copier),
		controller.WithSubmissionMetrics(c.deps.Metrics),
	)
	submission.Activate()
	if err := submission.OnSubmit(ctx, rawURL); err != nil {
		return err
	}

	if opts.QR || opts.QRFile != "" {
		result := controller.NewResultController(p, c.deps.Encoder, copier,
			controller.WithResultMetrics(c.deps.Metrics),
		)
		result.Activate(ctx, p.ShortURL())

		if opts.QRFile != "" {
			if result.QRPhase() != domain.QRRendered {
				return fmt.Errorf("%w: %s not written", ErrQRNotWritten, opts.QRFile)
			}
			if err := writePNG(opts.QRFile, p.qrImage); err != nil {
				return err
			}
		}
	}

	if opts.Copy {
		if err := submission.OnCopyRequested(ctx); err != nil {
			return fmt.Errorf("failed to copy short URL: %w", err)
		}
	}

	return nil
}

// QR renders text as a QR code on the terminal and optionally as a PNG file
func (c *Commands) QR(ctx context.Context, text string, file string, invert bool) error {
	img, err := c.deps.Encoder.Encode(ctx, text, qr.DefaultOptions())
	if err != nil {
		c.deps.Metrics.QRFinished(metrics.QRFailed)
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	c.deps.Metrics.QRFinished(metrics.QRRendered)

	fmt.Fprint(c.out, img.Text(invert))

	if file != "" {
		return writePNG(file, img)
	}
	return nil
}

func writePNG(path string, img *qr.Image) error {
	data, err := img.PNG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
