package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// API paths.
const (
	pathHealth       = "/healthz"
	pathIndex        = "/"
	pathCalculations = "/api/v1/calculations"
	pathCalculation  = "/api/v1/calculations/{investment}"
	pathSummary      = "/api/v1/summary"
	pathSession      = "/api/v1/session"
)

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc(pathHealth, s.health).Methods(http.MethodGet)
	r.HandleFunc(pathIndex, s.index).Methods(http.MethodGet)

	r.HandleFunc(pathCalculations, s.calculateSolarAndWater).Methods(http.MethodPost)
	r.HandleFunc(pathCalculation, s.calculate).Methods(http.MethodPost)
	r.HandleFunc(pathSummary, s.summary).Methods(http.MethodGet)
	r.HandleFunc(pathSession, s.resetSession).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
