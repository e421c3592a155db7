package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

const streakLeaderLimit = 10

// TeamStreaks is one team's streak ledger. In this report a tie breaks the
// running streak; it never extends or preserves one.
type TeamStreaks struct {
	Team        string       `json:"team"`
	Current     stats.Streak `json:"current"`
	LongestWin  int          `json:"longestWin"`
	LongestLoss int          `json:"longestLoss"`
}

// StreakLeadersReport ranks the longest runs in the fact set.
type StreakLeadersReport struct {
	Teams              []TeamStreaks `json:"teams"`
	LongestWinStreaks  []TeamStreaks `json:"longestWinStreaks"`
	LongestLossStreaks []TeamStreaks `json:"longestLossStreaks"`
}

// BuildStreakLeaders computes every team's current and longest streaks under
// the tie-breaks-streak rule, plus top-N leaderboards for both directions.
func BuildStreakLeaders(facts []domain.GameFact) StreakLeadersReport {
	tallies := stats.TallyTeams(facts)

	teams := make([]TeamStreaks, 0, tallies.Len())
	for _, tally := range tallies.Ordered() {
		longestWin, longestLoss := stats.LongestStreaks(facts, tally.Key, stats.TieBreaksStreak)
		teams = append(teams, TeamStreaks{
			Team:        tally.Key,
			Current:     stats.CurrentStreak(facts, tally.Key, stats.TieBreaksStreak),
			LongestWin:  longestWin,
			LongestLoss: longestLoss,
		})
	}

	return StreakLeadersReport{
		Teams: teams,
		LongestWinStreaks: stats.RankTopN(teams, func(t TeamStreaks) float64 {
			return float64(t.LongestWin)
		}, streakLeaderLimit, true),
		LongestLossStreaks: stats.RankTopN(teams, func(t TeamStreaks) float64 {
			return float64(t.LongestLoss)
		}, streakLeaderLimit, true),
	}
}
