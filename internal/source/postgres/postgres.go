// Package postgres loads the results archive from a Postgres database. The
// schema mirrors the scraped archive: one row per game with nullable market
// and weather columns.
package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/source"
)

const sourceName = "postgres"

const factsQuery = `
SELECT season, week, game_date, game_day, playoff, championship,
       home_team, home_abbr, home_conference, home_division,
       away_team, away_abbr, away_conference, away_division,
       home_score, away_score,
       spread, over_under, spread_result, ou_result,
       temperature, wind, condition, primetime
  FROM games
 WHERE season >= $1
 ORDER BY season, game_date, home_team`

const teamsQuery = `
SELECT name, abbreviation, conference, division, franchise_key, active
  FROM teams
 ORDER BY name`

// Source reads game facts from Postgres.
type Source struct {
	db          *sqlx.DB
	firstSeason int
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, url string, maxConns, firstSeason int) (*Source, error) {
	db, err := sqlx.Open("postgres", url)
	if err != nil {
		return nil, &source.QueryError{Source: sourceName, Op: "open", Err: err}
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &source.QueryError{Source: sourceName, Op: "ping", Err: err}
	}
	return &Source{db: db, firstSeason: firstSeason}, nil
}

// Close releases the connection pool.
func (s *Source) Close() error {
	return s.db.Close()
}

// FetchFacts loads every archived game from the first configured season on.
func (s *Source) FetchFacts(ctx context.Context) ([]domain.GameFact, error) {
	var rows []gameRow
	if err := s.db.SelectContext(ctx, &rows, factsQuery, s.firstSeason); err != nil {
		return nil, &source.QueryError{Source: sourceName, Op: "fetch facts", Err: err}
	}
	if len(rows) == 0 {
		return nil, source.ErrNoFacts
	}

	facts := make([]domain.GameFact, 0, len(rows))
	for _, row := range rows {
		fact, err := row.toFact()
		if err != nil {
			return nil, &source.QueryError{Source: sourceName, Op: "map facts", Err: err}
		}
		facts = append(facts, fact)
	}
	return facts, nil
}

// FetchTeams loads the team metadata table.
func (s *Source) FetchTeams(ctx context.Context) ([]domain.TeamMeta, error) {
	var rows []teamRow
	if err := s.db.SelectContext(ctx, &rows, teamsQuery); err != nil {
		return nil, &source.QueryError{Source: sourceName, Op: "fetch teams", Err: err}
	}

	teams := make([]domain.TeamMeta, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, domain.TeamMeta{
			Name:         row.Name,
			Abbreviation: row.Abbreviation,
			Conference:   row.Conference.String,
			Division:     row.Division.String,
			FranchiseKey: row.FranchiseKey.String,
			Active:       row.Active,
		})
	}
	return teams, nil
}
