// Package server exposes the payback calculators over HTTP.
//
// Each browser gets its own result state, keyed by a session cookie, so the
// tree equivalence and fastest-payback highlight reflect only that browser's
// submissions. The index page is a plain HTML form that talks to the JSON
// API with fetch.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/rshade/ecopayback/internal/format"
	"github.com/rshade/ecopayback/internal/session"
)

// Server timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Locale is used when a request does not ask for one.
	Locale string

	// AllowedOrigins enables CORS for the listed origins. Empty disables CORS.
	AllowedOrigins []string
}

// Server serves the calculator API and form.
type Server struct {
	opts      Options
	store     *session.Store
	logger    zerolog.Logger
	formatter *format.Formatter
	router    *mux.Router
}

// New creates a Server backed by store. An unsupported default locale falls
// back to format.DefaultLocale.
func New(store *session.Store, opts Options, logger zerolog.Logger) *Server {
	f, err := format.New(opts.Locale)
	if err != nil {
		logger.Warn().Str("locale", opts.Locale).Msg("unsupported locale, using default")
		f = format.MustNew(format.DefaultLocale)
	}

	s := &Server{
		opts:      opts,
		store:     store,
		logger:    logger,
		formatter: f,
	}
	s.router = s.routes()
	return s
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return s.middleware(s.router)
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("http server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info().Msg("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
