package reports

import (
	"math"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// FavoriteBucket is the upset ledger for one spread range.
type FavoriteBucket struct {
	Bucket    string `json:"bucket"`
	Games     int    `json:"games"`
	Upsets    int    `json:"upsets"`
	UpsetRate string `json:"upsetRate"` // percent, two decimals
}

// FavoriteUnderdogReport contrasts favorites and underdogs. True pick-ems
// (spread exactly zero) have no favorite and are excluded from this report.
type FavoriteUnderdogReport struct {
	FavoriteSU  stats.Record       `json:"favoriteSU"`
	UnderdogSU  stats.Record       `json:"underdogSU"`
	FavoriteATS stats.MarketRecord `json:"favoriteATS"`
	UnderdogATS stats.MarketRecord `json:"underdogATS"`
	UpsetRate   string             `json:"upsetRate"`
	ByBucket    []FavoriteBucket   `json:"byBucket"`
}

// BuildFavoriteUnderdog measures how favorites hold up straight up and
// against the spread, with an upset-rate breakdown per spread range.
func BuildFavoriteUnderdog(facts []domain.GameFact) FavoriteUnderdogReport {
	var favSU, dogSU stats.TeamTally
	var favATS, dogATS stats.SpreadTally
	upsets, decided := 0, 0

	type bucketAcc struct {
		games  int
		upsets int
	}
	buckets := make(map[string]*bucketAcc, len(stats.SpreadBuckets))
	for _, label := range stats.SpreadBuckets.Labels() {
		buckets[label] = &bucketAcc{}
	}

	for _, g := range facts {
		spread, ok := stats.SpreadLine(g)
		if !ok || spread == 0 {
			continue
		}
		homeFavored := spread < 0

		favFor, favAgainst := g.HomeScore, g.AwayScore
		if !homeFavored {
			favFor, favAgainst = g.AwayScore, g.HomeScore
		}
		favSU.Add(favFor, favAgainst)
		dogSU.Add(favAgainst, favFor)

		if res, ok := stats.SettledSpread(g); ok {
			favRes := stats.SpreadResultFor(res, homeFavored)
			favATS.Add(favRes)
			dogATS.Add(stats.FlipSpreadResult(favRes))
		}

		upset := favAgainst > favFor
		if !g.IsTie() {
			decided++
			if upset {
				upsets++
			}
		}
		if label, ok := stats.SpreadBuckets.Assign(math.Abs(spread)); ok {
			buckets[label].games++
			if upset {
				buckets[label].upsets++
			}
		}
	}

	byBucket := make([]FavoriteBucket, 0, len(stats.SpreadBuckets))
	for _, label := range stats.SpreadBuckets.Labels() {
		a := buckets[label]
		byBucket = append(byBucket, FavoriteBucket{
			Bucket:    label,
			Games:     a.games,
			Upsets:    a.upsets,
			UpsetRate: stats.Rate(a.upsets, a.games),
		})
	}

	return FavoriteUnderdogReport{
		FavoriteSU:  favSU.Record(),
		UnderdogSU:  dogSU.Record(),
		FavoriteATS: favATS.Record(),
		UnderdogATS: dogATS.Record(),
		UpsetRate:   stats.Rate(upsets, decided),
		ByBucket:    byBucket,
	}
}
