package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override configuration values.
const (
	EnvHome       = "ECOPAYBACK_HOME"
	EnvLogLevel   = "ECOPAYBACK_LOG_LEVEL"
	EnvLogFormat  = "ECOPAYBACK_LOG_FORMAT"
	EnvLogFile    = "ECOPAYBACK_LOG_FILE"
	EnvLocale     = "ECOPAYBACK_LOCALE"
	EnvFormat     = "ECOPAYBACK_OUTPUT_FORMAT"
	EnvAddr       = "ECOPAYBACK_ADDR"
	EnvSessionTTL = "ECOPAYBACK_SESSION_TTL"
	EnvOrigins    = "ECOPAYBACK_ALLOWED_ORIGINS"
)

// LoadDotEnv loads variables from the given .env files, or ".env" in the
// working directory when none are given. Missing files are ignored and
// variables already set in the process environment win. Files that exist but
// cannot be parsed are reported in the returned error; the others still load.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var errs []error
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			errs = append(errs, fmt.Errorf("loading %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// ApplyEnvOverrides copies recognised environment variables onto cfg.
// Unparseable durations are ignored.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Output.Locale = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvSessionTTL); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Server.SessionTTL = ttl
		}
	}
	if v := os.Getenv(EnvOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}
}
