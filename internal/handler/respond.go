package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tourmarket/backend/internal/domain"
)

// errorDetail is the machine-readable error payload.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse wraps every non-2xx body, so clients can always look at
// .error.code / .error.message regardless of endpoint.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a service error onto the HTTP status/code taxonomy:
// not found → 404, forbidden → 403, validation → 422, anything else 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: "not found"},
		})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error: errorDetail{Code: "forbidden", Message: "you are not allowed to do that"},
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	default:
		slog.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal", Message: "internal server error"},
		})
	}
}

// badRequest reports a request rejected before reaching the service
// layer (e.g. malformed JSON, bad UUID).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "bad_request", Message: message},
	})
}

// decodeJSON reads the request body into v, limiting how much of the
// body error detail leaks back to the client.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body")
	}
	return nil
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.BookingService.Create: validation error: select at least
// one person" → "select at least one person".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrValidation.Error())+2:]
	}
	return msg
}
