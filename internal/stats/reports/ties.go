package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// TieGame is one deadlocked final.
type TieGame struct {
	Season   int    `json:"season"`
	Week     string `json:"week"`
	Date     string `json:"date"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Score    int    `json:"score"`
}

// TeamTies is one team's career tie count.
type TeamTies struct {
	Team string `json:"team"`
	Ties int    `json:"ties"`
}

// TieHistoryReport lists every tie chronologically. The scoreline heuristic
// hides a genuine 0-0 final, which reads as an unplayed fixture; the league
// has not produced one since 1943, so the gap is accepted.
type TieHistoryReport struct {
	Games []TieGame  `json:"games"`
	Teams []TeamTies `json:"teams"`
}

// BuildTieHistory collects played ties and ranks teams by how often they
// settle for one.
func BuildTieHistory(facts []domain.GameFact) TieHistoryReport {
	ties := stats.SortBySeasonWeek(stats.Filter(facts, func(g domain.GameFact) bool {
		return g.Played() && g.IsTie()
	}))

	games := make([]TieGame, 0, len(ties))
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, g := range ties {
		games = append(games, TieGame{
			Season:   g.Season,
			Week:     g.Week,
			Date:     g.Date,
			HomeTeam: g.HomeTeam.Name,
			AwayTeam: g.AwayTeam.Name,
			Score:    g.HomeScore,
		})
		for _, team := range []string{g.HomeTeam.Name, g.AwayTeam.Name} {
			if _, ok := counts[team]; !ok {
				order = append(order, team)
			}
			counts[team]++
		}
	}

	teams := make([]TeamTies, 0, len(order))
	for _, team := range order {
		teams = append(teams, TeamTies{Team: team, Ties: counts[team]})
	}
	ranked := stats.RankTopN(teams, func(t TeamTies) float64 {
		return float64(t.Ties)
	}, -1, true)

	return TieHistoryReport{Games: games, Teams: ranked}
}
