package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"nfl-records-service/internal/app"
	"nfl-records-service/internal/auth"
	"nfl-records-service/internal/poller"
)

// Handler wires HTTP routes to the report catalog.
type Handler struct {
	reports  *app.Reports
	auth     *auth.Manager
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(reports *app.Reports, authMgr *auth.Manager, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		reports:  reports,
		auth:     authMgr,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, r, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether a snapshot has been loaded and refreshes are healthy.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		h.writeJSON(w, r, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}

	status := h.statusFn()
	if !status.IsReady() {
		h.writeJSON(w, r, nethttp.StatusServiceUnavailable, map[string]any{
			"status":               "not ready",
			"consecutive_failures": status.ConsecutiveFailures,
			"last_error":           status.LastError,
		})
		return
	}
	h.writeJSON(w, r, nethttp.StatusOK, map[string]any{
		"status":       "ready",
		"last_refresh": h.reports.LastRefreshed().UTC().Format(time.RFC3339),
	})
}

// Seasons lists the seasons available in the archive.
func (h *Handler) Seasons(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, r, nethttp.StatusOK, map[string]any{"seasons": h.reports.Seasons()})
}

// Token exchanges the shared dashboard key for a session token.
func (h *Handler) Token(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.auth.Enabled() {
		h.writeError(w, r, nethttp.StatusNotFound, "auth is not configured")
		return
	}

	var body struct {
		Key     string `json:"key"`
		Subject string `json:"subject"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, nethttp.StatusBadRequest, "invalid request body")
		return
	}
	if body.Subject == "" {
		body.Subject = "dashboard"
	}

	token, err := h.auth.IssueForKey(body.Key, body.Subject)
	if err != nil {
		h.writeError(w, r, nethttp.StatusUnauthorized, "invalid key")
		return
	}
	h.writeJSON(w, r, nethttp.StatusOK, map[string]string{"token": token})
}

// report wraps a catalog method that only needs the common query filters.
func (h *Handler) report(build func(app.Query) any) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		q, ok := h.queryFrom(w, r)
		if !ok {
			return
		}
		h.writeJSON(w, r, nethttp.StatusOK, build(q))
	}
}

// Matchup needs both team names.
func (h *Handler) Matchup(w nethttp.ResponseWriter, r *nethttp.Request) {
	q, ok := h.queryFrom(w, r)
	if !ok {
		return
	}
	teamA := r.URL.Query().Get("teamA")
	teamB := r.URL.Query().Get("teamB")
	if teamA == "" || teamB == "" || teamA == teamB {
		h.writeError(w, r, nethttp.StatusBadRequest, "teamA and teamB must name two different teams")
		return
	}
	h.writeJSON(w, r, nethttp.StatusOK, h.reports.Matchup(q, teamA, teamB))
}

// StrengthOfSchedule needs a season.
func (h *Handler) StrengthOfSchedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, ok := h.requireSeason(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, nethttp.StatusOK, h.reports.StrengthOfSchedule(season))
}

// PowerRankings needs a season.
func (h *Handler) PowerRankings(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, ok := h.requireSeason(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, nethttp.StatusOK, h.reports.PowerRankings(season))
}

func (h *Handler) queryFrom(w nethttp.ResponseWriter, r *nethttp.Request) (app.Query, bool) {
	q := app.Query{
		Team: r.URL.Query().Get("team"),
		Week: r.URL.Query().Get("week"),
	}

	raw := r.URL.Query().Get("season")
	if raw == "" {
		return q, true
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season <= 0 {
		h.writeError(w, r, nethttp.StatusBadRequest, "season must be a positive year")
		return app.Query{}, false
	}
	q.Season = season
	return q, true
}

func (h *Handler) requireSeason(w nethttp.ResponseWriter, r *nethttp.Request) (int, bool) {
	season, err := strconv.Atoi(r.URL.Query().Get("season"))
	if err != nil || season <= 0 {
		h.writeError(w, r, nethttp.StatusBadRequest, "season must be a positive year")
		return 0, false
	}
	return season, true
}
