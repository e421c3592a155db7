package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// TeamHomeAdvantage contrasts one team's home and road form.
type TeamHomeAdvantage struct {
	Team  string       `json:"team"`
	Home  stats.Record `json:"home"`
	Away  stats.Record `json:"away"`
	Delta string       `json:"delta"` // home win rate minus away win rate, three decimals
}

// HomeFieldAdvantageReport measures the home edge league-wide and per team.
type HomeFieldAdvantageReport struct {
	LeagueHomeRecord stats.Record        `json:"leagueHomeRecord"`
	HomeWinRate      string              `json:"homeWinRate"` // percent, two decimals
	AvgHomeMargin    string              `json:"avgHomeMargin"`
	Teams            []TeamHomeAdvantage `json:"teams"`
}

// BuildHomeFieldAdvantage folds every fact from the home side's perspective
// and splits each team's record by venue, ranked by the home-road delta.
func BuildHomeFieldAdvantage(facts []domain.GameFact) HomeFieldAdvantageReport {
	var league stats.TeamTally
	marginSum := 0
	home := stats.NewTallySet()
	away := stats.NewTallySet()

	for _, g := range facts {
		league.Add(g.HomeScore, g.AwayScore)
		marginSum += g.HomeScore - g.AwayScore
		home.Get(g.HomeTeam.Name).Add(g.HomeScore, g.AwayScore)
		away.Get(g.AwayTeam.Name).Add(g.AwayScore, g.HomeScore)
	}

	deltas := make(map[string]float64)
	order := make([]string, 0, home.Len())
	seen := make(map[string]bool)
	for _, tally := range home.Ordered() {
		order = append(order, tally.Key)
		seen[tally.Key] = true
	}
	for _, tally := range away.Ordered() {
		if !seen[tally.Key] {
			order = append(order, tally.Key)
		}
	}

	teams := make([]TeamHomeAdvantage, 0, len(order))
	for _, team := range order {
		entry := TeamHomeAdvantage{
			Team: team,
			Home: stats.TallyRecord(0, 0, 0),
			Away: stats.TallyRecord(0, 0, 0),
		}
		homeRate, awayRate := 0.0, 0.0
		if t, ok := home.Lookup(team); ok {
			entry.Home = t.Record()
			homeRate = t.WinRate()
		}
		if t, ok := away.Lookup(team); ok {
			entry.Away = t.Record()
			awayRate = t.WinRate()
		}
		deltas[team] = homeRate - awayRate
		entry.Delta = stats.PctValue(deltas[team])
		teams = append(teams, entry)
	}
	ranked := stats.RankTopN(teams, func(t TeamHomeAdvantage) float64 {
		return deltas[t.Team]
	}, -1, true)

	return HomeFieldAdvantageReport{
		LeagueHomeRecord: league.Record(),
		HomeWinRate:      stats.Rate(league.Wins, league.Games()),
		AvgHomeMargin:    stats.Avg(marginSum, league.Games()),
		Teams:            ranked,
	}
}
