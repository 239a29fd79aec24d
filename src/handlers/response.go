package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/security/validation"
	"github.com/username/bankrecon/backend/src/services"
)

type contextKey string

// maxJSONBodyBytes caps JSON request bodies; uploads have their own limit.
const maxJSONBodyBytes = 1 << 20

func sendJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	logger.L.Warn("Sending JSON error to client", "message", message, "statusCode", statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func sendJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("Error encoding JSON response", "path", r.URL.Path, "error", err)
	}
}

// sendServiceError maps service errors onto HTTP statuses. Anything that is
// not a known sentinel is logged and reported as a 500 carrying only the
// request id.
func sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		sendJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrConflict):
		sendJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, validation.ErrValidationFailed):
		sendJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		logger.FromContext(r.Context()).Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg := "Internal server error"
		if id, ok := RequestIDFromContext(r.Context()); ok {
			msg += " (request " + id + ")"
		}
		sendJSONError(w, msg, http.StatusInternalServerError)
	}
}

// decodeJSONBody decodes a single JSON object into dst, rejecting unknown
// fields and trailing data.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", services.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON body: %v", services.ErrInvalidInput, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: request body must contain a single JSON object", services.ErrInvalidInput)
	}
	return nil
}
