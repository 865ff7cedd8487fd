package domain

import (
	"time"
)

// ShortenRequest is the body of POST /shorten
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse is the body returned by POST /shorten. Only one of the
// fields is set: ShortURL on 2xx, Error otherwise.
type ShortenResponse struct {
	ShortURL string `json:"short_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// URLEntry represents a shortened URL stored by the development backend
type URLEntry struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Phase is the visible region of the input page
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseError
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseError:
		return "error"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// UIState governs which region of the input page is visible.
// Message is set only in PhaseError, ShortURL only in PhaseResult.
type UIState struct {
	Phase    Phase
	Message  string
	ShortURL string
}

// Idle returns the initial state
func Idle() UIState {
	return UIState{Phase: PhaseIdle}
}

// Submitting returns the busy state
func Submitting() UIState {
	return UIState{Phase: PhaseSubmitting}
}

// ErrorState returns the state showing message in the error banner
func ErrorState(message string) UIState {
	return UIState{Phase: PhaseError, Message: message}
}

// ResultState returns the state showing shortURL in the result panel
func ResultState(shortURL string) UIState {
	return UIState{Phase: PhaseResult, ShortURL: shortURL}
}

// FeedbackState is the transient state of a copy button
type FeedbackState struct {
	Copied    bool
	ExpiresAt time.Time
}

// QRPhase is the state of the QR region on the result page
type QRPhase int

const (
	QRPending QRPhase = iota
	QRRendered
	QRFailed
)

func (p QRPhase) String() string {
	switch p {
	case QRPending:
		return "pending"
	case QRRendered:
		return "rendered"
	case QRFailed:
		return "failed"
	default:
		return "unknown"
	}
}
