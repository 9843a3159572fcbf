package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestConfigGetters(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = "json"
	cfg.Output.Locale = "en"
	cfg.Logging.Level = "debug"

	assert.Equal(t, "json", GetDefaultOutputFormat())
	assert.Equal(t, "en", GetLocale())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestGetConfigDir(t *testing.T) {
	t.Run("honours ECOPAYBACK_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvHome, home)

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, home, dir)

		path, err := GetConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "config.yaml"), path)
	})

	t.Run("defaults under the user home", func(t *testing.T) {
		t.Setenv(EnvHome, "")
		t.Setenv("HOME", "/home/tester")

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/tester", ".ecopayback"), dir)
	})
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "ecopayback")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())
	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	logFile := filepath.Join(t.TempDir(), "logs", "app.log")
	GetGlobalConfig().Logging.File = logFile

	require.NoError(t, EnsureLogDir())
	_, err := os.Stat(filepath.Dir(logFile))
	assert.NoError(t, err)
}

func TestNew_ReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("output:\n  default_format: json\n  locale: en\n"), 0600))

	cfg := New()
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "en", cfg.Output.Locale)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)
	assert.Equal(t, "warn", got.Level)

	lc.File = "/var/log/ecopayback.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/var/log/ecopayback.log", got.File)
}
