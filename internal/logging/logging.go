// Package logging configures the zerolog loggers used across ecopayback.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output and format names.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"

	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

// Config describes where and how to log.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult carries the logger plus where it ended up writing.
type LogPathResult struct {
	Logger         zerolog.Logger
	FilePath       string
	UsingFile      bool
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger from cfg, ignoring where it writes.
func NewLogger(cfg Config) zerolog.Logger {
	return NewLoggerWithPath(cfg).Logger
}

// NewLoggerWithPath builds a logger from cfg. When the configured file cannot
// be opened it falls back to stderr and reports why.
// An unparseable level becomes info.
func NewLoggerWithPath(cfg Config) LogPathResult {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var (
		result LogPathResult
		out    io.Writer = os.Stderr
	)

	switch cfg.Output {
	case OutputStdout:
		out = os.Stdout
	case OutputFile:
		f, openErr := openLogFile(cfg.File)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
			break
		}
		out = f
		result.file = f
		result.FilePath = cfg.File
		result.UsingFile = true
	}

	result.Logger = newWithWriter(wrapFormat(out, cfg.Format, result.UsingFile), level, cfg.Caller)
	return result
}

// NewLoggerWithWriter builds a logger that writes to w, mainly for tests.
func NewLoggerWithWriter(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return newWithWriter(wrapFormat(w, format, false), lvl, false)
}

func newWithWriter(w io.Writer, level zerolog.Level, caller bool) zerolog.Logger {
	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// wrapFormat returns a console writer for human formats. Files always get JSON.
func wrapFormat(w io.Writer, format string, toFile bool) io.Writer {
	if toFile {
		return w
	}
	switch strings.ToLower(format) {
	case FormatConsole, FormatText:
		return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminalWriter(w)}
	default:
		return w
	}
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("log output is %q but no file is configured", OutputFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are being written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not use log file (%s), logging to stderr\n", reason)
}
