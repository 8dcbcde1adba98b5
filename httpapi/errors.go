// Package httpapi exposes the Edgeworth solver over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/indifference"
	"github.com/katalvlaran/edgeworth/utility"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{
		Error:     message,
		Details:   details,
		RequestID: w.Header().Get(headerRequestID),
	})
}

// classify maps a Solve error to a status code and a stable error code,
// which doubles as the metrics outcome label.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, utility.ErrInvalidExpression):
		return http.StatusUnprocessableEntity, "invalid_expression"
	case errors.Is(err, economy.ErrDegenerateEndowment):
		return http.StatusUnprocessableEntity, "degenerate_endowment"
	case errors.Is(err, indifference.ErrBadDomain):
		return http.StatusUnprocessableEntity, "unsolvable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		return statusClientClosed, "canceled"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// statusClientClosed is the de-facto code for a client that went away.
const statusClientClosed = 499
