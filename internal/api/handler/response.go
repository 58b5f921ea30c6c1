package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes returned in ErrorResponse.Error.
const (
	codeInvalidDisableCache = "invalid_disable_cache"
	codeShowsUnavailable    = "shows_unavailable"
	codeInternal            = "internal_error"
)

// JSON encodes data before touching w, so an encoding failure still yields a clean 500.
func JSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if data != nil {
		if err := json.NewEncoder(&buf).Encode(data); err != nil {
			slog.Error("failed to encode response", slog.String("error", err.Error()))
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// Text writes a plain-text body.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func Error(w http.ResponseWriter, status int, code string, message string) {
	JSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}
