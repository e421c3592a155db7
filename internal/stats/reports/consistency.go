package reports

import (
	"fmt"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

const consistencyLeaderLimit = 10

// TeamSeasonConsistency scores how steady one team-season's scoring was.
// Scores are 1/(1+stddev): bounded in (0,1], higher means steadier.
type TeamSeasonConsistency struct {
	Team               string `json:"team"`
	Season             int    `json:"season"`
	Games              int    `json:"games"`
	ScoredStdDev       string `json:"scoredStdDev"`
	AllowedStdDev      string `json:"allowedStdDev"`
	ScoredConsistency  string `json:"scoredConsistency"`
	AllowedConsistency string `json:"allowedConsistency"`
}

// ConsistencyIndexReport scores every team-season; unplayed 0-0 fixtures are
// excluded via the scoreline heuristic so they cannot flatten the variance.
type ConsistencyIndexReport struct {
	Entries        []TeamSeasonConsistency `json:"entries"`
	MostConsistent []TeamSeasonConsistency `json:"mostConsistent"`
}

// BuildConsistencyIndex computes population standard deviation of points
// scored and allowed per team-season and maps both to bounded consistency
// scores.
func BuildConsistencyIndex(facts []domain.GameFact) ConsistencyIndexReport {
	played := stats.Filter(facts, domain.GameFact.Played)

	order := make([]string, 0)
	type seasonPoints struct {
		team    string
		season  int
		scored  []int
		allowed []int
	}
	byKey := make(map[string]*seasonPoints)

	for _, g := range played {
		for _, team := range []string{g.HomeTeam.Name, g.AwayTeam.Name} {
			pf, pa, _ := g.TeamScore(team)
			key := fmt.Sprintf("%s|%d", team, g.Season)
			entry, ok := byKey[key]
			if !ok {
				entry = &seasonPoints{team: team, season: g.Season}
				byKey[key] = entry
				order = append(order, key)
			}
			entry.scored = append(entry.scored, pf)
			entry.allowed = append(entry.allowed, pa)
		}
	}

	entries := make([]TeamSeasonConsistency, 0, len(order))
	scores := make(map[string]float64)
	for _, key := range order {
		sp := byKey[key]
		scoredSD := stats.PopulationStdDev(sp.scored)
		allowedSD := stats.PopulationStdDev(sp.allowed)
		scores[key] = stats.ConsistencyScore(scoredSD)
		entries = append(entries, TeamSeasonConsistency{
			Team:               sp.team,
			Season:             sp.season,
			Games:              len(sp.scored),
			ScoredStdDev:       stats.Fixed2(scoredSD),
			AllowedStdDev:      stats.Fixed2(allowedSD),
			ScoredConsistency:  stats.PctValue(stats.ConsistencyScore(scoredSD)),
			AllowedConsistency: stats.PctValue(stats.ConsistencyScore(allowedSD)),
		})
	}

	return ConsistencyIndexReport{
		Entries: entries,
		MostConsistent: stats.RankTopN(entries, func(e TeamSeasonConsistency) float64 {
			return scores[fmt.Sprintf("%s|%d", e.Team, e.Season)]
		}, consistencyLeaderLimit, true),
	}
}
