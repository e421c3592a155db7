package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// MatchupGame is one meeting in the head-to-head history.
type MatchupGame struct {
	Season    int    `json:"season"`
	Week      string `json:"week"`
	Date      string `json:"date"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Winner    string `json:"winner"` // "" for a tie
}

// MatchupReport is the head-to-head view for two named teams. Team order is
// normalized, so swapping the arguments yields the same report.
type MatchupReport struct {
	TeamA       string        `json:"teamA"`
	TeamB       string        `json:"teamB"`
	Games       int           `json:"games"`
	AWins       int           `json:"aWins"`
	BWins       int           `json:"bWins"`
	Ties        int           `json:"ties"`
	APoints     int           `json:"aPoints"`
	BPoints     int           `json:"bPoints"`
	ARecord     stats.Record  `json:"aRecord"`
	BRecord     stats.Record  `json:"bRecord"`
	AvgTotal    string        `json:"avgTotal"`
	Recent      []MatchupGame `json:"recent"`     // most recent first, capped
	StreakTeam  *string       `json:"streakTeam"` // nil when no live streak
	StreakCount int           `json:"streakCount"`
}

// BuildMatchup aggregates every meeting between the two teams. The recent list
// is ordered by date descending and capped at the shared window. A tie breaks
// the head-to-head streak in this report.
func BuildMatchup(facts []domain.GameFact, teamA, teamB string) MatchupReport {
	first, second := stats.NormalizePair(teamA, teamB)

	meetings := stats.Filter(facts, func(g domain.GameFact) bool {
		return g.Involves(first) && g.Involves(second)
	})

	pair := stats.NewPairSet().Get(first, second)
	for _, g := range meetings {
		pair.Add(g)
	}

	report := MatchupReport{
		TeamA:    first,
		TeamB:    second,
		Games:    pair.Games(),
		AWins:    pair.AWins,
		BWins:    pair.BWins,
		Ties:     pair.Ties,
		APoints:  pair.APoints,
		BPoints:  pair.BPoints,
		ARecord:  stats.TallyRecord(pair.AWins, pair.BWins, pair.Ties),
		BRecord:  stats.TallyRecord(pair.BWins, pair.AWins, pair.Ties),
		AvgTotal: stats.Avg(pair.APoints+pair.BPoints, pair.Games()),
		Recent:   make([]MatchupGame, 0, stats.RecentWindow),
	}

	for i, g := range stats.SortByDateDesc(meetings) {
		if i == stats.RecentWindow {
			break
		}
		report.Recent = append(report.Recent, MatchupGame{
			Season:    g.Season,
			Week:      g.Week,
			Date:      g.Date,
			HomeTeam:  g.HomeTeam.Name,
			AwayTeam:  g.AwayTeam.Name,
			HomeScore: g.HomeScore,
			AwayScore: g.AwayScore,
			Winner:    g.Winner(),
		})
	}

	streakTeam, streakCount := headToHeadStreak(meetings)
	if streakTeam != "" {
		report.StreakTeam = &streakTeam
	}
	report.StreakCount = streakCount

	return report
}

// headToHeadStreak walks the meetings chronologically; a tie resets the
// running streak to nothing.
func headToHeadStreak(meetings []domain.GameFact) (string, int) {
	team, count := "", 0
	for _, g := range stats.SortBySeasonWeek(meetings) {
		winner := g.Winner()
		switch {
		case winner == "":
			team, count = "", 0
		case winner == team:
			count++
		default:
			team, count = winner, 1
		}
	}
	return team, count
}
