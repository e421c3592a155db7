package stats

import (
	"sort"
	"strconv"

	"nfl-records-service/internal/domain"
)

const playoffOrderBase = 100

// WeekOrder maps a week token to a sortable position: numeric weeks keep
// their value, playoff rounds follow every numeric week in round order.
// Unknown tokens sort last.
func WeekOrder(week string) int {
	if n, err := strconv.Atoi(week); err == nil {
		return n
	}
	switch week {
	case domain.WeekWildCard:
		return playoffOrderBase + 1
	case domain.WeekDivision:
		return playoffOrderBase + 2
	case domain.WeekConfChamp:
		return playoffOrderBase + 3
	case domain.WeekSuperBowl:
		return playoffOrderBase + 4
	default:
		return playoffOrderBase + 50
	}
}

// PlayoffRounds lists the playoff week tokens in play order.
func PlayoffRounds() []string {
	return []string{
		domain.WeekWildCard,
		domain.WeekDivision,
		domain.WeekConfChamp,
		domain.WeekSuperBowl,
	}
}

// SortBySeasonWeek returns a copy of facts in chronological order: season
// ascending, then week ascending. The sort is stable so same-week facts keep
// their input order.
func SortBySeasonWeek(facts []domain.GameFact) []domain.GameFact {
	sorted := make([]domain.GameFact, len(facts))
	copy(sorted, facts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Season != sorted[j].Season {
			return sorted[i].Season < sorted[j].Season
		}
		return WeekOrder(sorted[i].Week) < WeekOrder(sorted[j].Week)
	})
	return sorted
}

// SortByDateDesc returns a copy of facts most-recent-first. Dates are
// YYYY-MM-DD strings, so lexical comparison is chronological.
func SortByDateDesc(facts []domain.GameFact) []domain.GameFact {
	sorted := make([]domain.GameFact, len(facts))
	copy(sorted, facts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
