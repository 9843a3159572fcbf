package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "pt-BR", cfg.Output.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"bad format", func(c *Config) { c.Output.DefaultFormat = "xml" }, ErrInvalidFormat},
		{"bad locale", func(c *Config) { c.Output.Locale = "de" }, ErrInvalidLocale},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, ErrInvalidLogLevel},
		{"ttl too short", func(c *Config) { c.Server.SessionTTL = time.Second }, ErrInvalidSessionTTL},
		{"ttl too long", func(c *Config) { c.Server.SessionTTL = 48 * time.Hour }, ErrInvalidSessionTTL},
		{"empty addr", func(c *Config) { c.Server.Addr = " " }, ErrInvalidAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		cfg := Defaults()
		cfg.Output.DefaultFormat = "xml"
		cfg.Output.Locale = "de"
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.ErrorIs(t, err, ErrInvalidLocale)
	})
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Defaults()
	cfg.Output.Locale = "en"
	cfg.Server.SessionTTL = 2 * time.Hour
	cfg.Server.AllowedOrigins = []string{"https://example.org"}
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session_ttl: 2h0m0s")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
