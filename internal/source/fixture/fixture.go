// Package fixture provides a deterministic in-memory archive useful for local
// development and bootstrapping without a database.
package fixture

import (
	"context"

	"nfl-records-service/internal/domain"
)

// Source returns a small static slate of historical results.
type Source struct{}

// New creates a fixture source.
func New() *Source {
	return &Source{}
}

// FetchFacts returns a deterministic set of example games spanning two
// seasons, one championship game, and a mix of market and weather data.
func (s *Source) FetchFacts(ctx context.Context) ([]domain.GameFact, error) {
	_ = ctx

	return []domain.GameFact{
		{
			Season: 2022, Week: "1", Date: "2022-09-11", Day: "Sun",
			HomeTeam: bears, AwayTeam: packers,
			HomeScore: 19, AwayScore: 27,
			Market: market(1.5, 42.5, domain.SpreadLost, domain.TotalOver),
			Weather: outdoor(71, "8 mph"),
		},
		{
			Season: 2022, Week: "13", Date: "2022-12-04", Day: "Sun",
			HomeTeam: packers, AwayTeam: bears,
			HomeScore: 28, AwayScore: 19,
			Market: market(-4, 41, domain.SpreadCovered, domain.TotalOver),
			Weather: outdoor(28, "12 mph"),
			Primetime: "SNF",
		},
		{
			Season: 2022, Week: domain.WeekSuperBowl, Date: "2023-02-12", Day: "Sun",
			Playoff: true, Championship: true,
			HomeTeam: chiefs, AwayTeam: eagles,
			HomeScore: 38, AwayScore: 35,
			Market: market(1.5, 51, domain.SpreadCovered, domain.TotalOver),
			Weather: dome(),
		},
		{
			Season: 2023, Week: "1", Date: "2023-09-10", Day: "Sun",
			HomeTeam: bears, AwayTeam: packers,
			HomeScore: 20, AwayScore: 38,
			Market: market(-1, 42.5, domain.SpreadLost, domain.TotalOver),
			Weather: outdoor(78, "6 mph"),
		},
		{
			Season: 2023, Week: "2", Date: "2023-09-17", Day: "Sun",
			HomeTeam: eagles, AwayTeam: chiefs,
			HomeScore: 21, AwayScore: 17,
			Market: market(2.5, 46, domain.SpreadCovered, domain.TotalUnder),
			Weather: outdoor(66, "4 mph"),
			Primetime: "MNF",
		},
	}, nil
}

// FetchTeams returns metadata for every team that appears in the fixture
// facts.
func (s *Source) FetchTeams(ctx context.Context) ([]domain.TeamMeta, error) {
	_ = ctx
	return []domain.TeamMeta{
		{Name: "Chicago Bears", Abbreviation: "CHI", Conference: "NFC", Division: "NFC North", FranchiseKey: "chicago-bears", Active: true},
		{Name: "Green Bay Packers", Abbreviation: "GB", Conference: "NFC", Division: "NFC North", FranchiseKey: "green-bay-packers", Active: true},
		{Name: "Kansas City Chiefs", Abbreviation: "KC", Conference: "AFC", Division: "AFC West", FranchiseKey: "kansas-city-chiefs", Active: true},
		{Name: "Philadelphia Eagles", Abbreviation: "PHI", Conference: "NFC", Division: "NFC East", FranchiseKey: "philadelphia-eagles", Active: true},
	}, nil
}

var (
	bears   = domain.Participant{Name: "Chicago Bears", Abbr: "CHI", Conference: "NFC", Division: "NFC North"}
	packers = domain.Participant{Name: "Green Bay Packers", Abbr: "GB", Conference: "NFC", Division: "NFC North"}
	chiefs  = domain.Participant{Name: "Kansas City Chiefs", Abbr: "KC", Conference: "AFC", Division: "AFC West"}
	eagles  = domain.Participant{Name: "Philadelphia Eagles", Abbr: "PHI", Conference: "NFC", Division: "NFC East"}
)

func market(spread, total float64, sr domain.SpreadResult, tr domain.TotalResult) *domain.Market {
	return &domain.Market{
		Spread:       &spread,
		OverUnder:    &total,
		SpreadResult: &sr,
		TotalResult:  &tr,
	}
}

func outdoor(temp int, wind string) *domain.Weather {
	return &domain.Weather{Temperature: &temp, Wind: wind, Condition: "Outdoor"}
}

func dome() *domain.Weather {
	return &domain.Weather{Condition: "Dome"}
}
