package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MaxRequestBody caps how much of a request body is read from the client.
const MaxRequestBody = 1 << 16

// WriteJSON encodes v as the response body.
func WriteJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// WriteRaw relays a processor body exactly as it was received.
func WriteRaw(w http.ResponseWriter, status int, body json.RawMessage, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}
