package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("server-url", "", "")
	flags.Duration("timeout", 0, "")
	flags.String("lang", "", "")
	flags.String("log-level", "", "")
	flags.String("port", "", "")
	flags.Bool("invert", false, "")
	flags.String("unrelated", "", "")
	return flags
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shortener.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "ru", cfg.UI.Language)
	assert.False(t, cfg.UI.InvertQR)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Empty(t, cfg.Metrics.Textfile)
	assert.Equal(t, "8080", cfg.Stub.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Stub.BaseURL)
	assert.Empty(t, cfg.Stub.DBPath)
}

func TestLoad_UnchangedFlagsKeepDefaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
client:
  server_url: https://sho.rt
  timeout: 5s
ui:
  language: en
  invert_qr: true
logging:
  level: debug
  file: /tmp/shortener.log
stub:
  port: "9090"
  db_path: /tmp/stub.db
`)

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, "https://sho.rt", cfg.Client.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "en", cfg.UI.Language)
	assert.True(t, cfg.UI.InvertQR)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/shortener.log", cfg.Logging.File)
	assert.Equal(t, "9090", cfg.Stub.Port)
	assert.Equal(t, "/tmp/stub.db", cfg.Stub.DBPath)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
client:
  server_url: https://from-file.example
ui:
  language: en
`)
	t.Setenv("SHORTENER_CLIENT_SERVER_URL", "https://from-env.example")
	t.Setenv("SHORTENER_LOGGING_LEVEL", "warn")

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--server-url", "https://from-flag.example", "--timeout", "45s"}))

	cfg, err := Load(flags, path)
	require.NoError(t, err)

	// flag beats env beats file
	assert.Equal(t, "https://from-flag.example", cfg.Client.ServerURL)
	assert.Equal(t, 45*time.Second, cfg.Client.Timeout)
	// env beats default
	assert.Equal(t, "warn", cfg.Logging.Level)
	// file beats default
	assert.Equal(t, "en", cfg.UI.Language)
}

func TestLoad_BoolFlag(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--invert"}))

	cfg, err := Load(flags, "")
	require.NoError(t, err)
	assert.True(t, cfg.UI.InvertQR)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad server url", args: []string{"--server-url", "not a url"}, wantErr: "ServerURL"},
		{name: "zero timeout", args: []string{"--timeout", "0s"}, wantErr: "Timeout"},
		{name: "unknown language", args: []string{"--lang", "de"}, wantErr: "Language"},
		{name: "unknown log level", args: []string{"--log-level", "verbose"}, wantErr: "Level"},
		{name: "non numeric port", args: []string{"--port", "http"}, wantErr: "Port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newFlagSet()
			require.NoError(t, flags.Parse(tt.args))

			_, err := Load(flags, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"} {
		t.Run(level, func(t *testing.T) {
			cfg, err := Load(nil, "")
			require.NoError(t, err)
			cfg.Logging.Level = level
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestFlagKeys_CoverDefaults(t *testing.T) {
	for flag, key := range FlagKeys {
		_, ok := Defaults[key]
		assert.True(t, ok, "flag %s maps to unknown key %s", flag, key)
	}
}
