package stats

import "sort"

// RankTopN stable-sorts items by metric and returns at most n of them.
// desc=true ranks highest first. Entries with equal metrics keep their
// original (insertion) order; several reports assert that ordering.
// The input slice is never mutated.
func RankTopN[T any](items []T, metric func(T) float64, n int, desc bool) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		if desc {
			return metric(ranked[i]) > metric(ranked[j])
		}
		return metric(ranked[i]) < metric(ranked[j])
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
