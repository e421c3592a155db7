package reports

import (
	"math"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// SpreadBucketStats summarizes the favorite's fortunes inside one spread
// range. In the pick-em bucket the home team stands in as the listed side.
type SpreadBucketStats struct {
	Bucket      string             `json:"bucket"`
	Games       int                `json:"games"`
	FavoriteSU  stats.Record       `json:"favoriteSU"`
	FavoriteATS stats.MarketRecord `json:"favoriteATS"`
}

// SpreadBucketsReport always emits every bucket so the shape is fixed.
type SpreadBucketsReport struct {
	Buckets []SpreadBucketStats `json:"buckets"`
}

// BuildSpreadBuckets classifies each fact with a known spread into its range
// and tallies how the favorite fared straight up and against the number.
// Facts with no spread are excluded.
func BuildSpreadBuckets(facts []domain.GameFact) SpreadBucketsReport {
	type acc struct {
		games int
		su    stats.TeamTally
		ats   stats.SpreadTally
	}
	buckets := make(map[string]*acc, len(stats.SpreadBuckets))
	for _, label := range stats.SpreadBuckets.Labels() {
		buckets[label] = &acc{}
	}

	for _, g := range facts {
		spread, ok := stats.SpreadLine(g)
		if !ok {
			continue
		}
		label, ok := stats.SpreadBuckets.Assign(math.Abs(spread))
		if !ok {
			continue
		}
		a := buckets[label]
		a.games++

		// Negative spread means the home team is favored; exactly zero is a
		// pick-em and the home side is treated as the listed favorite.
		homeFavored := spread <= 0
		if homeFavored {
			a.su.Add(g.HomeScore, g.AwayScore)
		} else {
			a.su.Add(g.AwayScore, g.HomeScore)
		}
		if res, ok := stats.SettledSpread(g); ok {
			a.ats.Add(stats.SpreadResultFor(res, homeFavored))
		}
	}

	out := make([]SpreadBucketStats, 0, len(stats.SpreadBuckets))
	for _, label := range stats.SpreadBuckets.Labels() {
		a := buckets[label]
		out = append(out, SpreadBucketStats{
			Bucket:      label,
			Games:       a.games,
			FavoriteSU:  a.su.Record(),
			FavoriteATS: a.ats.Record(),
		})
	}

	return SpreadBucketsReport{Buckets: out}
}
