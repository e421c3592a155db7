package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"

	"nfl-records-service/internal/logging"
)

func (h *Handler) writeJSON(w nethttp.ResponseWriter, r *nethttp.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := h.loggerFrom(r)
		if logger != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, r *nethttp.Request, status int, message string) {
	body := map[string]string{"error": message}
	if reqID := RequestIDFromContext(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	h.writeJSON(w, r, status, body)
}

func (h *Handler) loggerFrom(r *nethttp.Request) *slog.Logger {
	if r == nil {
		return h.logger
	}
	return logging.FromContext(r.Context(), h.logger)
}
