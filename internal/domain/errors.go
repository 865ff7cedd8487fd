package domain

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrMissingShortURL is returned when the endpoint answers 2xx without a short_url
var ErrMissingShortURL = errors.New("response does not contain short_url")

// ValidationError is produced before any network call when the input is not
// an absolute URL. Its message is the one shown to the user.
type ValidationError struct {
	Input   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RemoteError is produced when the shortening endpoint is unreachable or
// reports a failure. StatusCode is 0 for transport faults. Message holds the
// endpoint's "error" field when one was returned.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ValidateURL reports whether raw is an absolute URL with a scheme and an authority.
func ValidateURL(raw string) error {
	if raw == "" {
		return errors.New("URL is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", raw)
	}

	return nil
}
