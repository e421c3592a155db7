package reports

import "nfl-records-service/internal/domain"

func game(season int, week, home string, hs int, away string, as int) domain.GameFact {
	return domain.GameFact{
		Season:    season,
		Week:      week,
		Date:      "2023-10-01",
		Day:       "Sun",
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

func withDivisions(g domain.GameFact, home, away string) domain.GameFact {
	g.HomeTeam.Division = home
	g.AwayTeam.Division = away
	return g
}

func withConferences(g domain.GameFact, home, away string) domain.GameFact {
	g.HomeTeam.Conference = home
	g.AwayTeam.Conference = away
	return g
}

func withSpread(g domain.GameFact, spread float64, res domain.SpreadResult) domain.GameFact {
	if g.Market == nil {
		g.Market = &domain.Market{}
	}
	g.Market.Spread = &spread
	g.Market.SpreadResult = &res
	return g
}

func withTotal(g domain.GameFact, line float64, res domain.TotalResult) domain.GameFact {
	if g.Market == nil {
		g.Market = &domain.Market{}
	}
	g.Market.OverUnder = &line
	g.Market.TotalResult = &res
	return g
}

func asChampionship(g domain.GameFact) domain.GameFact {
	g.Playoff = true
	g.Championship = true
	g.Week = domain.WeekSuperBowl
	return g
}
