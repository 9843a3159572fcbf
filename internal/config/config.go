// Package config loads ecopayback settings from defaults, a YAML file,
// a .env file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ecopayback/internal/format"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Defaults.
const (
	DefaultFormat     = FormatTable
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	DefaultAddr       = ":8080"
	DefaultSessionTTL = 30 * time.Minute

	MinSessionTTL = time.Minute
	MaxSessionTTL = 24 * time.Hour

	configFileName = "config.yaml"
	outputTypeFile = "file"
)

// Config is the complete ecopayback configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	// DefaultFormat is "table" or "json".
	DefaultFormat string `yaml:"default_format"`

	// Locale selects number formatting and messages ("pt-BR" or "en").
	Locale string `yaml:"locale"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	AllowedOrigins []string      `yaml:"allowed_origins,omitempty"`
}

// Validation errors.
var (
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidLocale     = errors.New("invalid locale")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidSessionTTL = errors.New("invalid session TTL")
	ErrInvalidAddr       = errors.New("invalid server address")
)

// Defaults returns a Config populated with built-in defaults only.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: DefaultFormat,
			Locale:        format.DefaultLocale,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Server: ServerConfig{
			Addr:       DefaultAddr,
			SessionTTL: DefaultSessionTTL,
		},
	}
}

// New returns the effective configuration: defaults, overlaid by the config
// file when present, then by .env and environment variables. A broken config
// file is reported on stderr and skipped so the CLI stays usable.
func New() *Config {
	cfg := Defaults()

	if path, err := GetConfigPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", mergeErr)
			}
		}
	}

	if err := LoadDotEnv(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring .env file: %v\n", err)
	}
	ApplyEnvOverrides(cfg)
	return cfg
}

// Load reads a config file on top of the defaults, without consulting the
// environment.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0700); mkErr != nil {
		return fmt.Errorf("creating config directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("writing config file %s: %w", path, writeErr)
	}
	return nil
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q (expected %s or %s)",
			ErrInvalidFormat, c.Output.DefaultFormat, FormatTable, FormatJSON))
	}

	if !format.IsSupportedLocale(c.Output.Locale) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLocale, c.Output.Locale))
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil || c.Logging.Level == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level))
	}

	if c.Server.SessionTTL < MinSessionTTL || c.Server.SessionTTL > MaxSessionTTL {
		errs = append(errs, fmt.Errorf("%w: %s (must be between %s and %s)",
			ErrInvalidSessionTTL, c.Server.SessionTTL, MinSessionTTL, MaxSessionTTL))
	}

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, fmt.Errorf("%w: address cannot be empty", ErrInvalidAddr))
	}

	return errors.Join(errs...)
}
