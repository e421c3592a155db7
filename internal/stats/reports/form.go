package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// TeamForm is one team's shape over its last games. Ties count in the window
// record but are skipped by the form streak, which tracks decisive results
// only.
type TeamForm struct {
	Team          string       `json:"team"`
	Window        stats.Record `json:"window"`
	PointsPerGame string       `json:"pointsPerGame"`
	FormStreak    stats.Streak `json:"formStreak"`
}

// RecentFormReport summarizes each team's last ten played games.
type RecentFormReport struct {
	Teams []TeamForm `json:"teams"`
}

// BuildRecentForm takes every team's most recent played games up to the
// shared window and ranks teams by window win rate.
func BuildRecentForm(facts []domain.GameFact) RecentFormReport {
	played := stats.Filter(facts, domain.GameFact.Played)
	tallies := stats.TallyTeams(played)

	teams := make([]TeamForm, 0, tallies.Len())
	rates := make(map[string]float64)
	for _, tally := range tallies.Ordered() {
		recent := stats.SortByDateDesc(stats.TeamFacts(played, tally.Key))
		if len(recent) > stats.RecentWindow {
			recent = recent[:stats.RecentWindow]
		}

		var window stats.TeamTally
		points := 0
		for _, g := range recent {
			pf, pa, _ := g.TeamScore(tally.Key)
			window.Add(pf, pa)
			points += pf
		}

		rates[tally.Key] = window.WinRate()
		teams = append(teams, TeamForm{
			Team:          tally.Key,
			Window:        window.Record(),
			PointsPerGame: stats.Avg(points, window.Games()),
			FormStreak:    stats.CurrentStreak(recent, tally.Key, stats.TieSkipped),
		})
	}

	ranked := stats.RankTopN(teams, func(t TeamForm) float64 { return rates[t.Team] }, -1, true)
	return RecentFormReport{Teams: ranked}
}
