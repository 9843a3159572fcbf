package server

import (
	_ "embed"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rshade/ecopayback/internal/format"
	"github.com/rshade/ecopayback/internal/logging"
	"github.com/rshade/ecopayback/internal/payback"
	"github.com/rshade/ecopayback/internal/session"
)

const (
	sessionCookie = "ecopayback_session"
	localeParam   = "locale"
)

//go:embed web/index.html
var indexHTML []byte

type calculationRequest struct {
	Fields rawFields `json:"fields"`
}

type combinedRequest struct {
	Solar rawFields `json:"solar"`
	Water rawFields `json:"water"`
}

type summaryMessages struct {
	Feedback string `json:"feedback,omitempty"`
	Trees    string `json:"trees"`
	Best     string `json:"best"`
}

type summaryResponse struct {
	Results  []payback.InvestmentResult `json:"results"`
	Trees    payback.TreeSummary        `json:"trees"`
	Best     *payback.InvestmentType    `json:"best"`
	Cards    []format.Card              `json:"cards"`
	Messages summaryMessages            `json:"messages"`
}

type calculationResponse struct {
	Result  *payback.InvestmentResult `json:"result,omitempty"`
	Error   string                    `json:"error,omitempty"`
	Summary summaryResponse           `json:"summary"`
}

type combinedResponse struct {
	Solar   *payback.InvestmentResult `json:"solar,omitempty"`
	Water   *payback.InvestmentResult `json:"water,omitempty"`
	Error   string                    `json:"error,omitempty"`
	Summary summaryResponse           `json:"summary"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}

func (s *Server) calculate(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	inv, err := payback.ParseInvestmentType(mux.Vars(r)["investment"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req calculationRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fields, err := req.Fields.fieldSet()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	f := s.formatterFor(r)
	entry := s.session(w, r)

	var resp calculationResponse
	calcErr := entry.Do(func(state *payback.ResultState) error {
		result, runErr := state.Run(inv, fields)
		if runErr == nil {
			resp.Result = &result
		}
		resp.Summary = buildSummary(f, state, runErr)
		return runErr
	})

	if calcErr != nil {
		log.Info().Str("investment", inv.String()).Err(calcErr).Msg("calculation rejected")
		resp.Error = calcErr.Error()
		writeJSON(w, statusFor(calcErr), resp)
		return
	}

	log.Debug().
		Str("investment", inv.String()).
		Float64("payback_years", resp.Result.PaybackYears).
		Msg("calculation completed")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) calculateSolarAndWater(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var req combinedRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	solarFields, err := req.Solar.fieldSet()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	waterFields, err := req.Water.fieldSet()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	f := s.formatterFor(r)
	entry := s.session(w, r)

	var resp combinedResponse
	calcErr := entry.Do(func(state *payback.ResultState) error {
		solar, water, runErr := state.RunSolarAndWater(solarFields.SolarInput(), waterFields.WaterInput())
		if runErr == nil {
			resp.Solar, resp.Water = &solar, &water
		}
		resp.Summary = buildSummary(f, state, runErr)
		return runErr
	})

	if calcErr != nil {
		log.Info().Err(calcErr).Msg("combined calculation rejected")
		resp.Error = calcErr.Error()
		writeJSON(w, statusFor(calcErr), resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	f := s.formatterFor(r)
	entry := s.session(w, r)

	var resp summaryResponse
	_ = entry.Do(func(state *payback.ResultState) error {
		resp = buildSummary(f, state, nil)
		resp.Messages.Feedback = ""
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) resetSession(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil && s.store.Delete(c.Value) {
		logging.FromContext(r.Context()).Debug().Msg("session reset")
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// session returns the caller's session, starting one and setting the cookie
// when the request carries no live session.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Entry {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}

	entry, created := s.store.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    entry.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return entry
}

// formatterFor honours a supported ?locale= query parameter.
func (s *Server) formatterFor(r *http.Request) *format.Formatter {
	if locale := r.URL.Query().Get(localeParam); locale != "" {
		if f, err := format.New(locale); err == nil {
			return f
		}
	}
	return s.formatter
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, payback.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, payback.ErrUnknownInvestment):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func buildSummary(f *format.Formatter, state *payback.ResultState, calcErr error) summaryResponse {
	rep := f.Report(state)

	resp := summaryResponse{
		Results: state.Results(),
		Trees:   rep.Trees,
		Cards:   rep.Cards,
		Messages: summaryMessages{
			Feedback: f.Feedback(calcErr),
			Trees:    rep.TreeLine,
			Best:     rep.BestLine,
		},
	}
	if rep.HasWinner {
		winner := rep.Winner
		resp.Best = &winner
	}
	return resp
}
