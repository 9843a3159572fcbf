package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/zerolog"

	"github.com/rshade/ecopayback/internal/logging"
)

const (
	headerRequestID    = "X-Request-ID"
	maxRequestIDLength = 64
)

// middleware wraps h, outermost first: panic recovery, CORS, request ID,
// access log.
func (s *Server) middleware(h http.Handler) http.Handler {
	h = handlers.CustomLoggingHandler(io.Discard, h, s.accessLog)
	h = s.requestID(h)
	if len(s.opts.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(s.opts.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type", headerRequestID}),
			handlers.ExposedHeaders([]string{headerRequestID}),
			handlers.AllowCredentials(),
		)(h)
	}
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger: s.logger}),
	)(h)
}

// requestID propagates the caller's X-Request-ID, or assigns a ULID, and
// stores a request-scoped logger carrying it in the request context.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = logging.GenerateTraceID()
			r.Header.Set(headerRequestID, id)
		}
		w.Header().Set(headerRequestID, id)

		ctx := logging.WithTraceID(r.Context(), s.logger, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) accessLog(_ io.Writer, p handlers.LogFormatterParams) {
	evt := s.logger.Info()
	switch {
	case p.StatusCode >= http.StatusInternalServerError:
		evt = s.logger.Error()
	case p.StatusCode >= http.StatusBadRequest:
		evt = s.logger.Warn()
	}

	evt.Str("method", p.Request.Method).
		Str("path", p.URL.Path).
		Int("status", p.StatusCode).
		Int("size", p.Size).
		Dur("duration", time.Since(p.TimeStamp)).
		Str(logging.TraceIDField, p.Request.Header.Get(headerRequestID)).
		Str("remote_addr", p.Request.RemoteAddr).
		Msg("http request")
}

// recoveryLogger adapts zerolog to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	logger zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error().Msg(fmt.Sprint(v...))
}
