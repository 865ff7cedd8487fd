// Package clipboard provides the two copy mechanisms of the client: the
// system clipboard and an OSC 52 escape sequence understood by most
// terminal emulators, used when the system clipboard is not reachable.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no clipboard utility is installed
var ErrUnavailable = errors.New("system clipboard is unavailable")

// System writes to the OS clipboard through atotto/clipboard
type System struct{}

// WriteText copies text to the system clipboard. The write runs on its own
// goroutine so a hung clipboard helper cannot outlive ctx.
func (System) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}

	done := make(chan error, 1)
	go func() {
		done <- clipboard.WriteAll(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to write clipboard: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Mode selects how the OSC 52 sequence is wrapped
type Mode int

const (
	ModePlain Mode = iota
	ModeTmux
	ModeScreen
)

// DetectMode picks the wrapping needed for the current terminal multiplexer
func DetectMode() Mode {
	if os.Getenv("TMUX") != "" {
		return ModeTmux
	}
	if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		return ModeScreen
	}
	return ModePlain
}

// OSC52 copies by writing an OSC 52 sequence to the terminal
type OSC52 struct {
	out  io.Writer
	mode Mode
}

// NewOSC52 creates an OSC 52 copier writing to out
func NewOSC52(out io.Writer, mode Mode) *OSC52 {
	return &OSC52{
		out:  out,
		mode: mode,
	}
}

// CopySelection asks the terminal to place text on the clipboard
func (o *OSC52) CopySelection(text string) error {
	seq := osc52.New(text)
	switch o.mode {
	case ModeTmux:
		seq = seq.Tmux()
	case ModeScreen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}

// Unavailable reports whether the system clipboard cannot be used
func Unavailable() bool {
	return clipboard.Unsupported
}
