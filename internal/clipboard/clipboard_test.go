package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal closed")
}

func TestOSC52_CopySelection(t *testing.T) {
	text := "https://s.example/abc"
	encoded := base64.StdEncoding.EncodeToString([]byte(text))

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewOSC52(&buf, ModePlain).CopySelection(text))

		assert.Contains(t, buf.String(), "\x1b]52;c;"+encoded)
	})

	t.Run("tmux passthrough", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewOSC52(&buf, ModeTmux).CopySelection(text))

		assert.Contains(t, buf.String(), "\x1bPtmux;")
		assert.Contains(t, buf.String(), encoded)
	})

	t.Run("screen passthrough", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewOSC52(&buf, ModeScreen).CopySelection(text))

		assert.Contains(t, buf.String(), "\x1bP")
		assert.Contains(t, buf.String(), encoded)
	})

	t.Run("write failure", func(t *testing.T) {
		err := NewOSC52(failingWriter{}, ModePlain).CopySelection(text)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "terminal closed")
	})
}

func TestDetectMode(t *testing.T) {
	t.Run("tmux", func(t *testing.T) {
		t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
		t.Setenv("TERM", "screen-256color")
		assert.Equal(t, ModeTmux, DetectMode())
	})

	t.Run("screen", func(t *testing.T) {
		t.Setenv("TMUX", "")
		t.Setenv("TERM", "screen")
		assert.Equal(t, ModeScreen, DetectMode())
	})

	t.Run("plain", func(t *testing.T) {
		t.Setenv("TMUX", "")
		t.Setenv("TERM", "xterm-256color")
		assert.Equal(t, ModePlain, DetectMode())
	})
}

func TestSystem_WriteText_Unsupported(t *testing.T) {
	prev := atotto.Unsupported
	atotto.Unsupported = true
	t.Cleanup(func() { atotto.Unsupported = prev })

	assert.True(t, Unavailable())
	err := System{}.WriteText(context.Background(), "https://s.example/abc")
	assert.ErrorIs(t, err, ErrUnavailable)
}
