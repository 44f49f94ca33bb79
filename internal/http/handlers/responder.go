package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/roster-service/internal/http/middleware"
	"github.com/preston-bernstein/roster-service/internal/http/requestutil"
	"github.com/preston-bernstein/roster-service/internal/logging"
)

type errorBody struct {
	Error     string   `json:"error"`
	RequestID string   `json:"requestId,omitempty"`
	Problems  []string `json:"problems,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, errorBody{Error: message}, logger)
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body errorBody, logger *slog.Logger) {
	body.RequestID = middleware.RequestIDFromContext(r.Context())
	if body.RequestID == "" {
		body.RequestID = r.Header.Get(requestutil.HeaderRequestID)
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
