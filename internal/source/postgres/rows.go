package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"nfl-records-service/internal/domain"
)

// gameRow mirrors one archived game. Market lines are stored as numerics and
// scanned through decimal so a line like 41.5 survives the round trip exactly.
type gameRow struct {
	Season       int                 `db:"season"`
	Week         string              `db:"week"`
	GameDate     time.Time           `db:"game_date"`
	GameDay      string              `db:"game_day"`
	Playoff      bool                `db:"playoff"`
	Championship bool                `db:"championship"`
	HomeTeam     string              `db:"home_team"`
	HomeAbbr     sql.NullString      `db:"home_abbr"`
	HomeConf     sql.NullString      `db:"home_conference"`
	HomeDiv      sql.NullString      `db:"home_division"`
	AwayTeam     string              `db:"away_team"`
	AwayAbbr     sql.NullString      `db:"away_abbr"`
	AwayConf     sql.NullString      `db:"away_conference"`
	AwayDiv      sql.NullString      `db:"away_division"`
	HomeScore    int                 `db:"home_score"`
	AwayScore    int                 `db:"away_score"`
	Spread       decimal.NullDecimal `db:"spread"`
	OverUnder    decimal.NullDecimal `db:"over_under"`
	SpreadResult sql.NullString      `db:"spread_result"`
	OUResult     sql.NullString      `db:"ou_result"`
	Temperature  sql.NullInt64       `db:"temperature"`
	Wind         sql.NullString      `db:"wind"`
	Condition    sql.NullString      `db:"condition"`
	Primetime    sql.NullString      `db:"primetime"`
}

type teamRow struct {
	Name         string         `db:"name"`
	Abbreviation string         `db:"abbreviation"`
	Conference   sql.NullString `db:"conference"`
	Division     sql.NullString `db:"division"`
	FranchiseKey sql.NullString `db:"franchise_key"`
	Active       bool           `db:"active"`
}

func (r gameRow) toFact() (domain.GameFact, error) {
	market, err := r.toMarket()
	if err != nil {
		return domain.GameFact{}, err
	}

	return domain.GameFact{
		Season:       r.Season,
		Week:         r.Week,
		Date:         r.GameDate.Format("2006-01-02"),
		Day:          r.GameDay,
		Playoff:      r.Playoff,
		Championship: r.Championship,
		HomeTeam: domain.Participant{
			Name:       r.HomeTeam,
			Abbr:       r.HomeAbbr.String,
			Conference: r.HomeConf.String,
			Division:   r.HomeDiv.String,
		},
		AwayTeam: domain.Participant{
			Name:       r.AwayTeam,
			Abbr:       r.AwayAbbr.String,
			Conference: r.AwayConf.String,
			Division:   r.AwayDiv.String,
		},
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
		Market:    market,
		Weather:   r.toWeather(),
		Primetime: r.Primetime.String,
	}, nil
}

// toMarket returns nil when every market column is null; individual fields
// stay nil when their column is null.
func (r gameRow) toMarket() (*domain.Market, error) {
	if !r.Spread.Valid && !r.OverUnder.Valid && !r.SpreadResult.Valid && !r.OUResult.Valid {
		return nil, nil
	}

	m := &domain.Market{}
	if r.Spread.Valid {
		v, _ := r.Spread.Decimal.Float64()
		m.Spread = &v
	}
	if r.OverUnder.Valid {
		v, _ := r.OverUnder.Decimal.Float64()
		m.OverUnder = &v
	}
	if r.SpreadResult.Valid {
		res, err := parseSpreadResult(r.SpreadResult.String)
		if err != nil {
			return nil, err
		}
		m.SpreadResult = &res
	}
	if r.OUResult.Valid {
		res, err := parseTotalResult(r.OUResult.String)
		if err != nil {
			return nil, err
		}
		m.TotalResult = &res
	}
	return m, nil
}

func (r gameRow) toWeather() *domain.Weather {
	if !r.Temperature.Valid && !r.Wind.Valid && !r.Condition.Valid {
		return nil
	}

	w := &domain.Weather{
		Wind:      r.Wind.String,
		Condition: r.Condition.String,
	}
	if r.Temperature.Valid {
		temp := int(r.Temperature.Int64)
		w.Temperature = &temp
	}
	return w
}

func parseSpreadResult(raw string) (domain.SpreadResult, error) {
	switch domain.SpreadResult(raw) {
	case domain.SpreadCovered, domain.SpreadLost, domain.SpreadPush:
		return domain.SpreadResult(raw), nil
	default:
		return "", fmt.Errorf("unknown spread result %q", raw)
	}
}

func parseTotalResult(raw string) (domain.TotalResult, error) {
	switch domain.TotalResult(raw) {
	case domain.TotalOver, domain.TotalUnder, domain.TotalPush:
		return domain.TotalResult(raw), nil
	default:
		return "", fmt.Errorf("unknown over/under result %q", raw)
	}
}
