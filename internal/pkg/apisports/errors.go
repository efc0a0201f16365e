package apisports

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnsupportedLeague = errors.New("unsupported league")
	ErrMissingAPIKey     = errors.New("APISPORTS_KEY missing")
	ErrMissingParameter  = errors.New("missing required parameter")

	// ErrInjuriesUnsupported is returned for leagues whose API has no injuries endpoint.
	ErrInjuriesUnsupported = errors.New("injuries are not provided for this league")
)

// StatusError is a non-2xx provider response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200]
	}
	return fmt.Sprintf("api-sports: unexpected status code %d: %s", e.Code, body)
}

// Retryable reports rate limiting and gateway errors.
func (e *StatusError) Retryable() bool {
	switch e.Code {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
