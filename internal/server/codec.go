package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/rshade/ecopayback/internal/payback"
)

// maxBodyBytes bounds request bodies; a full form is a few hundred bytes.
const maxBodyBytes = 64 << 10

//nolint:gochecknoglobals // Shared, concurrency-safe codec configuration.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errorResponse is the body of every non-2xx reply that has no summary.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody decodes a bounded JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if len(data) == 0 {
		return errors.New("empty body")
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// rawFields is a form as posted by a client. Values may be JSON numbers,
// strings or null.
type rawFields map[string]any

// fieldSet converts posted values to the raw strings payback.ParseField
// expects. Numbers keep their shortest exact representation and null is an
// empty field.
func (f rawFields) fieldSet() (payback.FieldSet, error) {
	out := make(payback.FieldSet, len(f))
	for name, v := range f {
		switch x := v.(type) {
		case nil:
			out[name] = ""
		case string:
			out[name] = x
		case float64:
			out[name] = strconv.FormatFloat(x, 'g', -1, 64)
		default:
			return nil, fmt.Errorf("field %q: expected a number or a string", name)
		}
	}
	return out, nil
}
