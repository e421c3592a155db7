package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// StrengthOfScheduleReport lists schedule strength for every team that
// appears in the chosen season, in order of first appearance.
type StrengthOfScheduleReport struct {
	Season int                      `json:"season"`
	Teams  []stats.ScheduleStrength `json:"teams"`
}

// BuildStrengthOfSchedule computes past/future/combined schedule strength for
// each team in the season. Opponent win rates come from the full fact set,
// and played-vs-remaining is inferred from the scoreline heuristic.
func BuildStrengthOfSchedule(facts []domain.GameFact, season int) StrengthOfScheduleReport {
	seasonFacts := stats.SeasonFacts(facts, season)

	seen := make(map[string]bool)
	teams := make([]stats.ScheduleStrength, 0)
	for _, g := range seasonFacts {
		for _, team := range []string{g.HomeTeam.Name, g.AwayTeam.Name} {
			if seen[team] {
				continue
			}
			seen[team] = true
			teams = append(teams, stats.StrengthOfSchedule(facts, team, season))
		}
	}

	return StrengthOfScheduleReport{Season: season, Teams: teams}
}
