// Package app exposes the report catalog over the current fact snapshot.
// Every method pulls a fresh copy of the snapshot, applies the query filters,
// and hands the result to the matching assembler.
package app

import (
	"log/slog"
	"time"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/logging"
	"nfl-records-service/internal/metrics"
	"nfl-records-service/internal/stats"
	"nfl-records-service/internal/stats/reports"
)

// Query narrows a report to one season, team, or week. Zero values mean no
// filtering.
type Query struct {
	Season int
	Team   string
	Week   string
}

// Reports assembles dashboard reports from the snapshot held by the domain
// service.
type Reports struct {
	svc      *domain.Service
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewReports constructs the report catalog.
func NewReports(svc *domain.Service, logger *slog.Logger, recorder *metrics.Recorder) *Reports {
	return &Reports{svc: svc, logger: logger, recorder: recorder}
}

// Seasons lists the distinct seasons present in the snapshot, ascending.
func (r *Reports) Seasons() []int {
	return stats.Seasons(r.svc.Facts())
}

// LastRefreshed reports when the snapshot was last replaced.
func (r *Reports) LastRefreshed() time.Time {
	return r.svc.LastRefreshed()
}

func (r *Reports) factsFor(q Query) []domain.GameFact {
	facts := r.svc.Facts()
	if q.Season != 0 {
		facts = stats.SeasonFacts(facts, q.Season)
	}
	if q.Team != "" {
		facts = stats.TeamFacts(facts, q.Team)
	}
	if q.Week != "" {
		facts = stats.WeekFacts(facts, q.Week)
	}
	return facts
}

func (r *Reports) record(report string, start time.Time) {
	elapsed := time.Since(start)
	if r.recorder != nil {
		r.recorder.RecordReportBuild(report, elapsed)
	}
	if r.logger != nil {
		r.logger.Debug("report built",
			slog.String(logging.FieldReport, report),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	}
}

func (r *Reports) Standings(q Query) reports.StandingsReport {
	defer r.record("standings", time.Now())
	return reports.BuildStandings(r.factsFor(q))
}

func (r *Reports) SeasonRecaps(q Query) reports.SeasonRecapsReport {
	defer r.record("season_recaps", time.Now())
	return reports.BuildSeasonRecaps(r.factsFor(q))
}

func (r *Reports) Matchup(q Query, teamA, teamB string) reports.MatchupReport {
	defer r.record("matchup", time.Now())
	return reports.BuildMatchup(r.factsFor(q), teamA, teamB)
}

func (r *Reports) Rivalries(q Query) reports.RivalriesReport {
	defer r.record("rivalries", time.Now())
	return reports.BuildRivalries(r.factsFor(q))
}

func (r *Reports) PlayoffStats(q Query) reports.PlayoffStatsReport {
	defer r.record("playoff_stats", time.Now())
	return reports.BuildPlayoffStats(r.factsFor(q))
}

func (r *Reports) ChampionshipHistory(q Query) reports.ChampionshipHistoryReport {
	defer r.record("championship_history", time.Now())
	return reports.BuildChampionshipHistory(r.factsFor(q))
}

func (r *Reports) DivisionDominance(q Query) reports.DivisionDominanceReport {
	defer r.record("division_dominance", time.Now())
	return reports.BuildDivisionDominance(r.factsFor(q))
}

func (r *Reports) ConferenceBattles(q Query) reports.ConferenceBattlesReport {
	defer r.record("conference_battles", time.Now())
	return reports.BuildConferenceBattles(r.factsFor(q))
}

func (r *Reports) WeatherImpact(q Query) reports.WeatherImpactReport {
	defer r.record("weather_impact", time.Now())
	return reports.BuildWeatherImpact(r.factsFor(q))
}

func (r *Reports) PrimetimeRecords(q Query) reports.PrimetimeRecordsReport {
	defer r.record("primetime_records", time.Now())
	return reports.BuildPrimetimeRecords(r.factsFor(q))
}

func (r *Reports) DayOfWeek(q Query) reports.DayOfWeekReport {
	defer r.record("day_of_week", time.Now())
	return reports.BuildDayOfWeek(r.factsFor(q))
}

func (r *Reports) HomeFieldAdvantage(q Query) reports.HomeFieldAdvantageReport {
	defer r.record("home_field_advantage", time.Now())
	return reports.BuildHomeFieldAdvantage(r.factsFor(q))
}

func (r *Reports) SpreadAccuracy(q Query) reports.SpreadAccuracyReport {
	defer r.record("spread_accuracy", time.Now())
	return reports.BuildSpreadAccuracy(r.factsFor(q))
}

func (r *Reports) SpreadBuckets(q Query) reports.SpreadBucketsReport {
	defer r.record("spread_buckets", time.Now())
	return reports.BuildSpreadBuckets(r.factsFor(q))
}

func (r *Reports) FavoriteUnderdog(q Query) reports.FavoriteUnderdogReport {
	defer r.record("favorite_underdog", time.Now())
	return reports.BuildFavoriteUnderdog(r.factsFor(q))
}

func (r *Reports) OverUnderTrends(q Query) reports.OverUnderTrendsReport {
	defer r.record("over_under_trends", time.Now())
	return reports.BuildOverUnderTrends(r.factsFor(q))
}

func (r *Reports) StreakLeaders(q Query) reports.StreakLeadersReport {
	defer r.record("streak_leaders", time.Now())
	return reports.BuildStreakLeaders(r.factsFor(q))
}

func (r *Reports) ConsistencyIndex(q Query) reports.ConsistencyIndexReport {
	defer r.record("consistency_index", time.Now())
	return reports.BuildConsistencyIndex(r.factsFor(q))
}

func (r *Reports) Pythagorean(q Query) reports.PythagoreanReport {
	defer r.record("pythagorean", time.Now())
	return reports.BuildPythagorean(r.factsFor(q))
}

// StrengthOfSchedule always works from the full snapshot so opponent records
// reflect the whole league, not the filtered slice.
func (r *Reports) StrengthOfSchedule(season int) reports.StrengthOfScheduleReport {
	defer r.record("strength_of_schedule", time.Now())
	return reports.BuildStrengthOfSchedule(r.svc.Facts(), season)
}

func (r *Reports) PowerRankings(season int) reports.PowerRankingsReport {
	defer r.record("power_rankings", time.Now())
	return reports.BuildPowerRankings(r.svc.Facts(), season)
}

func (r *Reports) ScoringTrends(q Query) reports.ScoringTrendsReport {
	defer r.record("scoring_trends", time.Now())
	return reports.BuildScoringTrends(r.factsFor(q))
}

func (r *Reports) MarginProfiles(q Query) reports.MarginProfilesReport {
	defer r.record("margin_profiles", time.Now())
	return reports.BuildMarginProfiles(r.factsFor(q))
}

func (r *Reports) TieHistory(q Query) reports.TieHistoryReport {
	defer r.record("tie_history", time.Now())
	return reports.BuildTieHistory(r.factsFor(q))
}

func (r *Reports) FranchiseHistory(q Query) reports.FranchiseHistoryReport {
	defer r.record("franchise_history", time.Now())
	return reports.BuildFranchiseHistory(r.factsFor(q), r.svc.Teams())
}

func (r *Reports) RecentForm(q Query) reports.RecentFormReport {
	defer r.record("recent_form", time.Now())
	return reports.BuildRecentForm(r.factsFor(q))
}
