package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// TeamPythagorean contrasts a team's actual wins with its point-differential
// expectation. Luck is actual minus expected: positive means the team won
// more than its scoring profile suggests.
type TeamPythagorean struct {
	Team          string `json:"team"`
	Games         int    `json:"games"`
	PointsFor     int    `json:"pointsFor"`
	PointsAgainst int    `json:"pointsAgainst"`
	ActualWins    int    `json:"actualWins"`
	ExpectedWins  string `json:"expectedWins"` // one decimal
	Luck          string `json:"luck"`         // one decimal, signed
}

// PythagoreanReport ranks teams by expected wins.
type PythagoreanReport struct {
	Teams []TeamPythagorean `json:"teams"`
}

// BuildPythagorean folds every team's points profile and applies the
// Pythagorean expectation.
func BuildPythagorean(facts []domain.GameFact) PythagoreanReport {
	tallies := stats.TallyTeams(facts)

	teams := make([]TeamPythagorean, 0, tallies.Len())
	expected := make(map[string]float64)
	for _, tally := range tallies.Ordered() {
		exp := stats.PythagoreanExpectedWins(tally.Games(), tally.PointsFor, tally.PointsAgainst)
		expected[tally.Key] = exp
		teams = append(teams, TeamPythagorean{
			Team:          tally.Key,
			Games:         tally.Games(),
			PointsFor:     tally.PointsFor,
			PointsAgainst: tally.PointsAgainst,
			ActualWins:    tally.Wins,
			ExpectedWins:  stats.Fixed1(exp),
			Luck:          stats.Fixed1(float64(tally.Wins) - exp),
		})
	}

	ranked := stats.RankTopN(teams, func(t TeamPythagorean) float64 {
		return expected[t.Team]
	}, -1, true)

	return PythagoreanReport{Teams: ranked}
}
