package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfl-records-service/internal/domain"
)

func TestBuildStandings(t *testing.T) {
	facts := []domain.GameFact{
		game(2023, "1", "Bears", 27, "Packers", 20),
		game(2023, "2", "Bears", 17, "Lions", 31),
		game(2023, "3", "Packers", 24, "Lions", 24),
	}

	report := BuildStandings(facts)
	require.Len(t, report.Teams, 3)

	byTeam := make(map[string]TeamStanding)
	for _, s := range report.Teams {
		byTeam[s.Team] = s
	}

	bears := byTeam["Bears"]
	assert.Equal(t, 1, bears.Overall.Wins)
	assert.Equal(t, 1, bears.Overall.Losses)
	assert.Equal(t, "0.500", bears.Overall.Pct)
	assert.Equal(t, 2, bears.Home.Wins+bears.Home.Losses, "both Bears games were at home")
	assert.Equal(t, 0, bears.Away.Wins+bears.Away.Losses+bears.Away.Ties)
	assert.Equal(t, 44, bears.PointsFor)
	assert.Equal(t, 51, bears.PointsAgainst)
	assert.Equal(t, "22.0", bears.PointsPerGame)

	lions := byTeam["Lions"]
	assert.Equal(t, 1, lions.Overall.Wins)
	assert.Equal(t, 1, lions.Overall.Ties)

	// Bears (1-1) and Lions (1-0-1) both sit at .500; Bears appeared first in
	// the facts and keep the higher slot. Packers (0-1-1) trail.
	assert.Equal(t, "Bears", report.Teams[0].Team)
	assert.Equal(t, "Lions", report.Teams[1].Team)
	assert.Equal(t, "Packers", report.Teams[2].Team)
}

func TestBuildStandingsTieBreakKeepsFirstAppearance(t *testing.T) {
	facts := []domain.GameFact{
		game(2023, "1", "Bears", 20, "Packers", 10),
		game(2023, "2", "Lions", 20, "Vikings", 10),
	}

	report := BuildStandings(facts)
	require.Len(t, report.Teams, 4)

	// Bears and Lions are both 1-0; Bears appeared first in the facts.
	assert.Equal(t, "Bears", report.Teams[0].Team)
	assert.Equal(t, "Lions", report.Teams[1].Team)
}
