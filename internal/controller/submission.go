package controller

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/i18n"
	"github.com/joshdurbin/url-shortener-client/internal/logger"
	"github.com/joshdurbin/url-shortener-client/internal/metrics"
)

// SubmissionController turns user input into a shorten request and moves the
// input page between its form, busy, error and result states.
type SubmissionController struct {
	view      SubmissionView
	shortener Shortener
	copier    *Copier
	metrics   *metrics.Metrics
	state     domain.UIState
}

// SubmissionOption configures a SubmissionController
type SubmissionOption func(*SubmissionController)

// WithSubmissionCopier wires the copy button of the result panel
func WithSubmissionCopier(c *Copier) SubmissionOption {
	return func(s *SubmissionController) {
		s.copier = c
	}
}

// WithSubmissionMetrics records submission outcomes on m
func WithSubmissionMetrics(m *metrics.Metrics) SubmissionOption {
	return func(s *SubmissionController) {
		s.metrics = m
	}
}

// NewSubmissionController creates a controller for view
func NewSubmissionController(view SubmissionView, shortener Shortener, opts ...SubmissionOption) *SubmissionController {
	c := &SubmissionController{
		view:      view,
		shortener: shortener,
		state:     domain.Idle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate focuses the URL field
func (c *SubmissionController) Activate() {
	c.view.Focus()
}

// State returns the current page state
func (c *SubmissionController) State() domain.UIState {
	return c.state
}

// OnSubmit validates rawInput and submits it. It returns a
// *domain.ValidationError or a *domain.RemoteError whose message is already
// shown in the error banner.
func (c *SubmissionController) OnSubmit(ctx context.Context, rawInput string) error {
	input := strings.TrimSpace(rawInput)

	if err := domain.ValidateURL(input); err != nil {
		msg := i18n.T("submit.invalid_url")
		c.fail(msg)
		c.metrics.SubmissionFinished(metrics.OutcomeInvalid, 0)
		return &domain.ValidationError{Input: input, Message: msg, Err: err}
	}

	c.state = domain.Submitting()
	c.view.SetLoading(true)
	defer c.view.SetLoading(false)
	c.view.HideError()

	start := time.Now()
	resp, err := c.shortener.Shorten(ctx, input)
	elapsed := time.Since(start)
	if err == nil && (resp == nil || resp.ShortURL == "") {
		err = &domain.RemoteError{Err: domain.ErrMissingShortURL}
	}

	if err != nil {
		remote := c.remoteError(err)
		c.fail(remote.Message)
		c.metrics.SubmissionFinished(metrics.OutcomeRemote, elapsed)
		logger.Log.Infow("shorten request failed", "url", input, "status", remote.StatusCode, "error", err)
		return remote
	}

	c.state = domain.ResultState(resp.ShortURL)
	c.view.ShowResult(resp.ShortURL)
	c.metrics.SubmissionFinished(metrics.OutcomeSuccess, elapsed)
	logger.Log.Debugw("short URL created", "url", input, "short_url", resp.ShortURL)

	return nil
}

// OnCopyRequested copies the short URL shown in the result panel
func (c *SubmissionController) OnCopyRequested(ctx context.Context) error {
	if c.copier == nil {
		return ErrNoClipboard
	}
	if c.state.Phase != domain.PhaseResult {
		return errors.New("no short URL to copy")
	}

	c.view.SelectAll()
	return c.copier.Copy(ctx, c.view.ShortURL())
}

func (c *SubmissionController) fail(message string) {
	c.state = domain.ErrorState(message)
	c.view.ShowError(message)
}

// remoteError normalizes err so its Message is what the banner shows
func (c *SubmissionController) remoteError(err error) *domain.RemoteError {
	out := &domain.RemoteError{
		Message: i18n.T("submit.generic_error"),
		Err:     err,
	}

	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		out.StatusCode = remote.StatusCode
		if remote.Message != "" {
			out.Message = remote.Message
		}
	}

	return out
}
