// Package http wires the report catalog, auth, and health probes into a
// request router.
package http

import (
	"log/slog"
	nethttp "net/http"

	"nfl-records-service/internal/app"
	"nfl-records-service/internal/metrics"
)

// NewRouter builds the full route table. Report routes sit behind the auth
// guard when a signing secret is configured.
func NewRouter(h *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/auth/token", h.Token)

	guarded := nethttp.NewServeMux()
	guarded.HandleFunc("/seasons", h.Seasons)
	for path, handler := range h.reportRoutes() {
		guarded.HandleFunc(path, handler)
	}
	mux.Handle("/seasons", AuthMiddleware(h.auth, guarded))
	mux.Handle("/reports/", AuthMiddleware(h.auth, guarded))

	return LoggingMiddleware(logger, recorder, mux)
}

// reportRoutes maps each report path to its handler. Most reports take the
// common season/team filters; matchup, strength of schedule, and power
// rankings carry extra parameters.
func (h *Handler) reportRoutes() map[string]nethttp.HandlerFunc {
	return map[string]nethttp.HandlerFunc{
		"/reports/standings":            h.report(func(q app.Query) any { return h.reports.Standings(q) }),
		"/reports/season-recaps":        h.report(func(q app.Query) any { return h.reports.SeasonRecaps(q) }),
		"/reports/matchup":              h.Matchup,
		"/reports/rivalries":            h.report(func(q app.Query) any { return h.reports.Rivalries(q) }),
		"/reports/playoff-stats":        h.report(func(q app.Query) any { return h.reports.PlayoffStats(q) }),
		"/reports/championships":        h.report(func(q app.Query) any { return h.reports.ChampionshipHistory(q) }),
		"/reports/division-dominance":   h.report(func(q app.Query) any { return h.reports.DivisionDominance(q) }),
		"/reports/conference-battles":   h.report(func(q app.Query) any { return h.reports.ConferenceBattles(q) }),
		"/reports/weather-impact":       h.report(func(q app.Query) any { return h.reports.WeatherImpact(q) }),
		"/reports/primetime":            h.report(func(q app.Query) any { return h.reports.PrimetimeRecords(q) }),
		"/reports/day-of-week":          h.report(func(q app.Query) any { return h.reports.DayOfWeek(q) }),
		"/reports/home-field":           h.report(func(q app.Query) any { return h.reports.HomeFieldAdvantage(q) }),
		"/reports/spread-accuracy":      h.report(func(q app.Query) any { return h.reports.SpreadAccuracy(q) }),
		"/reports/spread-buckets":       h.report(func(q app.Query) any { return h.reports.SpreadBuckets(q) }),
		"/reports/favorite-underdog":    h.report(func(q app.Query) any { return h.reports.FavoriteUnderdog(q) }),
		"/reports/over-under":           h.report(func(q app.Query) any { return h.reports.OverUnderTrends(q) }),
		"/reports/streaks":              h.report(func(q app.Query) any { return h.reports.StreakLeaders(q) }),
		"/reports/consistency":          h.report(func(q app.Query) any { return h.reports.ConsistencyIndex(q) }),
		"/reports/pythagorean":          h.report(func(q app.Query) any { return h.reports.Pythagorean(q) }),
		"/reports/strength-of-schedule": h.StrengthOfSchedule,
		"/reports/power-rankings":       h.PowerRankings,
		"/reports/scoring-trends":       h.report(func(q app.Query) any { return h.reports.ScoringTrends(q) }),
		"/reports/margin-profiles":      h.report(func(q app.Query) any { return h.reports.MarginProfiles(q) }),
		"/reports/ties":                 h.report(func(q app.Query) any { return h.reports.TieHistory(q) }),
		"/reports/franchises":           h.report(func(q app.Query) any { return h.reports.FranchiseHistory(q) }),
		"/reports/recent-form":          h.report(func(q app.Query) any { return h.reports.RecentForm(q) }),
	}
}
