// internal/server/respond.go

// Package server exposes the portal over HTTP: the registration and join
// submission endpoints, public reads, and the session-guarded admin surface.
package server

import (
	"encoding/json"
	"net/http"

	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, log logger.Logger, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// writeError maps portal error codes to HTTP statuses. Anything without a
// recognized code is a plain 500.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal error"

	switch errors.CodeOf(err) {
	case errors.ErrCodeValidationFailed:
		statusCode = http.StatusBadRequest
	case errors.ErrCodeRecordNotFound:
		statusCode = http.StatusNotFound
	case errors.ErrCodeSessionInvalid:
		statusCode = http.StatusUnauthorized
	case errors.ErrCodeSessionCheckFailed:
		statusCode = http.StatusBadGateway
	}
	if stdErr, ok := err.(*errors.StandardError); ok {
		message = stdErr.Message
	}

	writeJSON(w, log, statusCode, errorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewValidationFailedError("invalid JSON body")
	}
	return nil
}
