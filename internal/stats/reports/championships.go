package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// ChampionshipGame is one title game.
type ChampionshipGame struct {
	Season      int    `json:"season"`
	Date        string `json:"date"`
	Winner      string `json:"winner"`
	Loser       string `json:"loser"`
	WinnerScore int    `json:"winnerScore"`
	LoserScore  int    `json:"loserScore"`
}

// TitleCount is one team's championship ledger.
type TitleCount struct {
	Team        string `json:"team"`
	Titles      int    `json:"titles"`
	Appearances int    `json:"appearances"`
}

// ChampionshipHistoryReport lists every championship game and the title table.
type ChampionshipHistoryReport struct {
	Games  []ChampionshipGame `json:"games"`
	Titles []TitleCount       `json:"titles"`
}

// BuildChampionshipHistory compiles the championship-game history, season
// ascending, and a title table ranked by titles won.
func BuildChampionshipHistory(facts []domain.GameFact) ChampionshipHistoryReport {
	finals := stats.SortBySeasonWeek(stats.Filter(facts, func(g domain.GameFact) bool {
		return g.Championship
	}))

	games := make([]ChampionshipGame, 0, len(finals))
	counts := stats.NewTallySet()
	for _, g := range finals {
		winner, loser := g.Winner(), g.Loser()
		winScore, loseScore := g.HomeScore, g.AwayScore
		if winScore < loseScore {
			winScore, loseScore = loseScore, winScore
		}
		games = append(games, ChampionshipGame{
			Season:      g.Season,
			Date:        g.Date,
			Winner:      winner,
			Loser:       loser,
			WinnerScore: winScore,
			LoserScore:  loseScore,
		})
		counts.Get(g.HomeTeam.Name).Add(g.HomeScore, g.AwayScore)
		counts.Get(g.AwayTeam.Name).Add(g.AwayScore, g.HomeScore)
	}

	titles := make([]TitleCount, 0, counts.Len())
	for _, tally := range counts.Ordered() {
		titles = append(titles, TitleCount{
			Team:        tally.Key,
			Titles:      tally.Wins,
			Appearances: tally.Games(),
		})
	}
	ranked := stats.RankTopN(titles, func(t TitleCount) float64 {
		return float64(t.Titles)
	}, -1, true)

	return ChampionshipHistoryReport{Games: games, Titles: ranked}
}
