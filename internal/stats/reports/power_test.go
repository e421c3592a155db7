package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfl-records-service/internal/domain"
)

func TestBuildPowerRankings(t *testing.T) {
	facts := []domain.GameFact{
		game(2023, "1", "Bears", 20, "Packers", 10),
		game(2023, "2", "Packers", 24, "Lions", 14),
		game(2023, "2", "Vikings", 13, "Bears", 27),
		// Wrong season, ignored.
		game(2022, "1", "Bears", 3, "Packers", 40),
	}

	report := BuildPowerRankings(facts, 2023)
	assert.Equal(t, 2023, report.Season)
	require.Len(t, report.Weeks, 2)

	weekOne := report.Weeks[0]
	assert.Equal(t, "1", weekOne.Week)
	require.Len(t, weekOne.Entries, 2)
	assert.Equal(t, 1, weekOne.Entries[0].Rank)
	assert.Equal(t, "Bears", weekOne.Entries[0].Team)
	assert.Equal(t, "1.000", weekOne.Entries[0].Rating)

	weekTwo := report.Weeks[1]
	require.Len(t, weekTwo.Entries, 4)
	assert.Equal(t, "Bears", weekTwo.Entries[0].Team, "2-0 leads")
	assert.Equal(t, "1.000", weekTwo.Entries[0].Rating)
	assert.Equal(t, 2, weekTwo.Entries[0].Record.Wins)

	// Packers sit at 1-1 after losing week one and winning week two.
	var packers PowerRankingEntry
	for _, e := range weekTwo.Entries {
		if e.Team == "Packers" {
			packers = e
		}
	}
	assert.Equal(t, "0.500", packers.Rating)
	assert.Equal(t, 2, packers.Rank)
}
