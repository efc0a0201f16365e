package server

import (
	"errors"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the body of every non-2xx JSON answer.
type ErrorResponse struct {
	Message  string `json:"message"`
	Input    any    `json:"input,omitempty"`
	Expected any    `json:"expected,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func respondRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// respondProviderError maps client errors to status codes: a missing key is
// our fault (500), an unsupported league or missing parameter the caller's
// (422), an endpoint the provider lacks 501, anything else the upstream's (502).
func respondProviderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apisports.ErrMissingAPIKey):
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
	case errors.Is(err, apisports.ErrUnsupportedLeague), errors.Is(err, apisports.ErrMissingParameter):
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Message: err.Error()})
	case errors.Is(err, apisports.ErrInjuriesUnsupported):
		respondJSON(w, http.StatusNotImplemented, ErrorResponse{Message: err.Error()})
	default:
		slog.Error("Provider request failed", "error", err)
		respondJSON(w, http.StatusBadGateway, ErrorResponse{Message: "provider request failed: " + err.Error()})
	}
}
