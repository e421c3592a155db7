package stats

import "nfl-records-service/internal/domain"

// FlipSpreadResult converts a home-perspective spread settlement to the away
// team's viewpoint. A push is a push from either side. Total settlements
// (over/under) are team-agnostic and have no flip.
func FlipSpreadResult(r domain.SpreadResult) domain.SpreadResult {
	switch r {
	case domain.SpreadCovered:
		return domain.SpreadLost
	case domain.SpreadLost:
		return domain.SpreadCovered
	default:
		return r
	}
}

// SpreadResultFor returns the spread settlement from the named side's
// perspective. isHome callers pass the stored result through unchanged.
func SpreadResultFor(r domain.SpreadResult, isHome bool) domain.SpreadResult {
	if isHome {
		return r
	}
	return FlipSpreadResult(r)
}
