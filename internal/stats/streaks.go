package stats

import "nfl-records-service/internal/domain"

// TieRule controls how a tie affects a running streak. Each report picks its
// rule explicitly; there is no default fallthrough.
type TieRule int

const (
	// TieBreaksStreak resets the running streak to nothing.
	TieBreaksStreak TieRule = iota
	// TieSkipped leaves the running streak untouched.
	TieSkipped
)

// Streak describes an active run. Side is "W" or "L", or "" when no streak is
// live (empty input, or a tie under TieBreaksStreak).
type Streak struct {
	Side  string `json:"side"`
	Count int    `json:"count"`
}

// CurrentStreak walks the team's games in chronological order and returns the
// active run. The signed running counter increases on a win, decreases on a
// loss, and resets to +/-1 when the result reverses sign.
func CurrentStreak(facts []domain.GameFact, team string, rule TieRule) Streak {
	run := 0
	for _, g := range SortBySeasonWeek(TeamFacts(facts, team)) {
		run = advanceStreak(run, g, team, rule)
	}
	return streakFromRun(run)
}

// LongestStreaks returns the longest win run and longest loss run (as a
// positive count) the team has ever put together, under the given tie rule.
func LongestStreaks(facts []domain.GameFact, team string, rule TieRule) (longestWin, longestLoss int) {
	run := 0
	for _, g := range SortBySeasonWeek(TeamFacts(facts, team)) {
		run = advanceStreak(run, g, team, rule)
		if run > longestWin {
			longestWin = run
		}
		if -run > longestLoss {
			longestLoss = -run
		}
	}
	return longestWin, longestLoss
}

func advanceStreak(run int, g domain.GameFact, team string, rule TieRule) int {
	pf, pa, ok := g.TeamScore(team)
	if !ok {
		return run
	}
	switch {
	case pf > pa:
		if run < 0 {
			return 1
		}
		return run + 1
	case pf < pa:
		if run > 0 {
			return -1
		}
		return run - 1
	default:
		if rule == TieBreaksStreak {
			return 0
		}
		return run
	}
}

func streakFromRun(run int) Streak {
	switch {
	case run > 0:
		return Streak{Side: "W", Count: run}
	case run < 0:
		return Streak{Side: "L", Count: -run}
	default:
		return Streak{}
	}
}
