package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// errorBody is the JSON shape of every failed response
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// statusFor maps the error taxonomy onto an HTTP status and a generic message
func statusFor(err error) (int, string) {
	var ve *models.ValidationError
	switch {
	case models.IsNotFound(err):
		return http.StatusNotFound, "Not found"
	case errors.As(err, &ve) && ve.FromBackend():
		return http.StatusUnprocessableEntity, "Rejected by database"
	case errors.As(err, &ve):
		return http.StatusBadRequest, "Validation failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// details is what the client sees after the generic message. Request
// validation keeps its field prefix; backend failures report the native text.
func details(err error) string {
	var ve *models.ValidationError
	if errors.As(err, &ve) && !ve.FromBackend() {
		return ve.Error()
	}
	if models.IsNotFound(err) {
		return err.Error()
	}
	return models.BackendMessage(err)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		if errors.Is(err, context.Canceled) {
			slog.Debug("request cancelled", "method", r.Method, "path", r.URL.Path)
		} else {
			slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		}
	}
	writeJSON(w, status, errorBody{Error: msg, Details: details(err)})
}

// decodeJSON reads a bounded JSON body into dst. An empty body decodes to
// the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return models.NewValidationError("body", "malformed JSON: %v", err)
	}
	return nil
}
