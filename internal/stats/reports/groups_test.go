package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfl-records-service/internal/domain"
)

func TestBuildDivisionDominance(t *testing.T) {
	facts := []domain.GameFact{
		withDivisions(game(2023, "1", "Bears", 27, "Vikings", 20), "NFC North", "NFC North"),
		withDivisions(game(2023, "2", "Bears", 17, "Cowboys", 31), "NFC North", "NFC East"),
		withDivisions(game(2023, "3", "Eagles", 21, "Packers", 28), "NFC East", "NFC North"),
		// One side has no division on record, excluded from the pair table.
		withDivisions(game(2023, "4", "Bills", 30, "Lions", 24), "", "NFC North"),
	}

	report := BuildDivisionDominance(facts)
	require.Len(t, report.Divisions, 2)

	byName := make(map[string]DivisionRecord)
	for _, d := range report.Divisions {
		byName[d.Division] = d
	}
	// North: both sides of the week-1 game plus three cross games.
	north := byName["NFC North"]
	assert.Equal(t, 2, north.Record.Wins)
	assert.Equal(t, 3, north.Record.Losses)

	require.Len(t, report.Matchups, 1, "intra-division and unknown-division games stay out")
	pair := report.Matchups[0]
	assert.Equal(t, "NFC East", pair.DivisionA)
	assert.Equal(t, "NFC North", pair.DivisionB)
	assert.Equal(t, 1, pair.AWins)
	assert.Equal(t, 1, pair.BWins)
}

func TestBuildConferenceBattles(t *testing.T) {
	facts := []domain.GameFact{
		withConferences(game(2022, "1", "Bears", 20, "Bills", 27), "NFC", "AFC"),
		withConferences(game(2022, "2", "Chiefs", 13, "Packers", 17), "AFC", "NFC"),
		withConferences(game(2023, "1", "Bears", 10, "Jets", 24), "NFC", "AFC"),
		// Intra-conference, counts toward records but not the cross series.
		withConferences(game(2023, "2", "Bears", 21, "Packers", 14), "NFC", "NFC"),
	}

	report := BuildConferenceBattles(facts)
	require.Len(t, report.Conferences, 2)
	require.Len(t, report.Seasons, 2)

	assert.Equal(t, 2022, report.Seasons[0].Season)
	assert.Equal(t, "Split", report.Seasons[0].Winner)

	assert.Equal(t, 2023, report.Seasons[1].Season)
	assert.Equal(t, "AFC", report.Seasons[1].Winner)
	require.Len(t, report.Seasons[1].Series, 1)
	assert.Equal(t, 1, report.Seasons[1].Series[0].AWins+report.Seasons[1].Series[0].BWins)
}
