package stats

import (
	"sort"

	"nfl-records-service/internal/domain"
)

// Filter returns the facts for which keep is true, in input order.
// The result is non-nil even when nothing matches.
func Filter(facts []domain.GameFact, keep func(domain.GameFact) bool) []domain.GameFact {
	out := make([]domain.GameFact, 0, len(facts))
	for _, g := range facts {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

// SeasonFacts returns the facts for one season.
func SeasonFacts(facts []domain.GameFact, season int) []domain.GameFact {
	return Filter(facts, func(g domain.GameFact) bool { return g.Season == season })
}

// TeamFacts returns the facts involving the named team.
func TeamFacts(facts []domain.GameFact, team string) []domain.GameFact {
	return Filter(facts, func(g domain.GameFact) bool { return g.Involves(team) })
}

// WeekFacts returns the facts for one week label.
func WeekFacts(facts []domain.GameFact, week string) []domain.GameFact {
	return Filter(facts, func(g domain.GameFact) bool { return g.Week == week })
}

// PlayoffFacts returns the playoff facts.
func PlayoffFacts(facts []domain.GameFact) []domain.GameFact {
	return Filter(facts, func(g domain.GameFact) bool { return g.Playoff })
}

// Seasons returns the distinct seasons present, ascending.
func Seasons(facts []domain.GameFact) []int {
	seen := make(map[int]bool, len(facts))
	out := make([]int, 0)
	for _, g := range facts {
		if !seen[g.Season] {
			seen[g.Season] = true
			out = append(out, g.Season)
		}
	}
	sort.Ints(out)
	return out
}
