package stats

import "nfl-records-service/internal/domain"

// game builds a minimal played fact for fold tests.
func game(season int, week, home string, hs int, away string, as int) domain.GameFact {
	return domain.GameFact{
		Season:    season,
		Week:      week,
		Date:      "2023-10-01",
		HomeTeam:  domain.Participant{Name: home},
		AwayTeam:  domain.Participant{Name: away},
		HomeScore: hs,
		AwayScore: as,
	}
}

func withDate(g domain.GameFact, date string) domain.GameFact {
	g.Date = date
	return g
}

func withMarket(g domain.GameFact, spread, total *float64, sr *domain.SpreadResult, tr *domain.TotalResult) domain.GameFact {
	g.Market = &domain.Market{Spread: spread, OverUnder: total, SpreadResult: sr, TotalResult: tr}
	return g
}

func f64(v float64) *float64 { return &v }

func sr(v domain.SpreadResult) *domain.SpreadResult { return &v }

func tr(v domain.TotalResult) *domain.TotalResult { return &v }
