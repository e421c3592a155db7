package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// SeasonRecap summarizes one season.
type SeasonRecap struct {
	Season        int          `json:"season"`
	Games         int          `json:"games"`
	Ties          int          `json:"ties"`
	Champion      string       `json:"champion"` // "" when the season has no championship fact
	BestTeam      string       `json:"bestTeam"`
	BestRecord    stats.Record `json:"bestRecord"`
	WorstTeam     string       `json:"worstTeam"`
	WorstRecord   stats.Record `json:"worstRecord"`
	PointsPerGame string       `json:"pointsPerGame"` // both teams combined
}

// SeasonRecapsReport lists one recap per season, ascending.
type SeasonRecapsReport struct {
	Seasons []SeasonRecap `json:"seasons"`
}

// BuildSeasonRecaps produces a per-season summary across the whole fact set.
func BuildSeasonRecaps(facts []domain.GameFact) SeasonRecapsReport {
	recaps := make([]SeasonRecap, 0)

	for _, season := range stats.Seasons(facts) {
		seasonFacts := stats.SeasonFacts(facts, season)
		tallies := stats.TallyTeams(seasonFacts)

		recap := SeasonRecap{
			Season:      season,
			Games:       len(seasonFacts),
			BestRecord:  stats.TallyRecord(0, 0, 0),
			WorstRecord: stats.TallyRecord(0, 0, 0),
		}

		totalPoints := 0
		for _, g := range seasonFacts {
			totalPoints += g.HomeScore + g.AwayScore
			if g.IsTie() && g.Played() {
				recap.Ties++
			}
			if g.Championship {
				recap.Champion = g.Winner()
			}
		}
		recap.PointsPerGame = stats.Avg(totalPoints, len(seasonFacts))

		best := stats.RankTopN(tallies.Ordered(), rateOf, 1, true)
		if len(best) == 1 {
			recap.BestTeam = best[0].Key
			recap.BestRecord = best[0].Record()
		}
		worst := stats.RankTopN(tallies.Ordered(), rateOf, 1, false)
		if len(worst) == 1 {
			recap.WorstTeam = worst[0].Key
			recap.WorstRecord = worst[0].Record()
		}

		recaps = append(recaps, recap)
	}

	return SeasonRecapsReport{Seasons: recaps}
}

func rateOf(t *stats.TeamTally) float64 { return t.WinRate() }
