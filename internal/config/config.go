// Package config loads the client configuration from defaults, an optional
// YAML file, SHORTENER_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/joshdurbin/url-shortener-client/internal/i18n"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "SHORTENER"

// Config holds the application configuration
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Stub    StubConfig    `mapstructure:"stub"`
}

// ClientConfig holds the shortening endpoint settings
type ClientConfig struct {
	ServerURL string        `mapstructure:"server_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Language string `mapstructure:"language" validate:"required,language"`
	InvertQR bool   `mapstructure:"invert_qr"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"loglevel"`
	File  string `mapstructure:"file"`
}

// MetricsConfig holds the textfile exporter target; empty disables it
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// StubConfig holds the development backend settings
type StubConfig struct {
	Port    string `mapstructure:"port" validate:"required,numeric"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	DBPath  string `mapstructure:"db_path"`
	Verbose bool   `mapstructure:"verbose"`
}

// Defaults are the values used when nothing else sets a key
var Defaults = map[string]any{
	"client.server_url": "http://localhost:8080",
	"client.timeout":    30 * time.Second,
	"ui.language":       i18n.DefaultLanguage,
	"ui.invert_qr":      false,
	"logging.level":     "info",
	"logging.file":      "",
	"metrics.textfile":  "",
	"stub.port":         "8080",
	"stub.base_url":     "http://localhost:8080",
	"stub.db_path":      "",
	"stub.verbose":      false,
}

// FlagKeys maps command line flag names to configuration keys
var FlagKeys = map[string]string{
	"server-url":       "client.server_url",
	"timeout":          "client.timeout",
	"lang":             "ui.language",
	"invert":           "ui.invert_qr",
	"log-level":        "logging.level",
	"log-file":         "logging.file",
	"metrics-textfile": "metrics.textfile",
	"port":             "stub.port",
	"base-url":         "stub.base_url",
	"db-path":          "stub.db_path",
	"verbose":          "stub.verbose",
}

// Load builds the configuration. configFile may be empty; a named file that
// does not exist is an error.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := BindFlags(v, flags); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// BindFlags binds every known flag present in flags to its configuration key
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	var errs []error
	flags.VisitAll(func(flag *pflag.Flag) {
		key, ok := FlagKeys[flag.Name]
		if !ok {
			return
		}
		if err := v.BindPFlag(key, flag); err != nil {
			errs = append(errs, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	if err := validate.RegisterValidation("language", validateLanguage); err != nil {
		return err
	}

	return validate.Struct(c)
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	_, err := zapcore.ParseLevel(fieldLevel.Field().String())
	return err == nil
}

func validateLanguage(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()
	for _, lang := range i18n.Languages() {
		if lang == value {
			return true
		}
	}
	return false
}
