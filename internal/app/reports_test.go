package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/metrics"
	"nfl-records-service/internal/store"
)

func newReportsFixture(t *testing.T) (*Reports, *metrics.Recorder) {
	t.Helper()

	svc := domain.NewService(store.NewMemoryStore())
	svc.ReplaceFacts([]domain.GameFact{
		{Season: 2022, Week: "1", Date: "2022-09-11", HomeTeam: domain.Participant{Name: "Bears"}, AwayTeam: domain.Participant{Name: "Packers"}, HomeScore: 19, AwayScore: 27},
		{Season: 2023, Week: "1", Date: "2023-09-10", HomeTeam: domain.Participant{Name: "Bears"}, AwayTeam: domain.Participant{Name: "Packers"}, HomeScore: 20, AwayScore: 38},
		{Season: 2023, Week: "2", Date: "2023-09-17", HomeTeam: domain.Participant{Name: "Lions"}, AwayTeam: domain.Participant{Name: "Vikings"}, HomeScore: 31, AwayScore: 17},
	})
	svc.ReplaceTeams([]domain.TeamMeta{{Name: "Bears", FranchiseKey: "bears", Active: true}})

	rec := metrics.NewRecorder()
	return NewReports(svc, nil, rec), rec
}

func TestReportsSeasonFilter(t *testing.T) {
	reports, _ := newReportsFixture(t)

	all := reports.Standings(Query{})
	require.Len(t, all.Teams, 4)

	season := reports.Standings(Query{Season: 2022})
	require.Len(t, season.Teams, 2)
	assert.Equal(t, 1, season.Teams[0].Overall.Wins+season.Teams[1].Overall.Wins)
}

func TestReportsTeamFilter(t *testing.T) {
	reports, _ := newReportsFixture(t)

	form := reports.RecentForm(Query{Team: "Lions"})
	require.Len(t, form.Teams, 2, "a team filter keeps both participants of each game")
	for _, team := range form.Teams {
		assert.Contains(t, []string{"Lions", "Vikings"}, team.Team)
	}
}

func TestReportsWeekFilter(t *testing.T) {
	reports, _ := newReportsFixture(t)

	week := reports.Standings(Query{Season: 2023, Week: "2"})
	require.Len(t, week.Teams, 2)
	for _, team := range week.Teams {
		assert.Contains(t, []string{"Lions", "Vikings"}, team.Team)
	}
}

func TestReportsRecordMetrics(t *testing.T) {
	reports, rec := newReportsFixture(t)

	reports.Standings(Query{})
	reports.Standings(Query{Season: 2023})
	reports.Matchup(Query{}, "Bears", "Packers")

	assert.Equal(t, 2, rec.ReportBuilds("standings"))
	assert.Equal(t, 1, rec.ReportBuilds("matchup"))
}

func TestReportsSeasonsAndRefresh(t *testing.T) {
	reports, _ := newReportsFixture(t)

	assert.Equal(t, []int{2022, 2023}, reports.Seasons())
	assert.WithinDuration(t, time.Now(), reports.LastRefreshed(), time.Minute)
}

func TestReportsSeasonScopedBuilders(t *testing.T) {
	reports, _ := newReportsFixture(t)

	power := reports.PowerRankings(2023)
	assert.Equal(t, 2023, power.Season)
	require.Len(t, power.Weeks, 2)

	sos := reports.StrengthOfSchedule(2023)
	assert.Equal(t, 2023, sos.Season)
	assert.NotEmpty(t, sos.Teams)
}

func TestReportsFranchiseHistoryUsesTeamMetadata(t *testing.T) {
	reports, _ := newReportsFixture(t)

	history := reports.FranchiseHistory(Query{})
	require.NotEmpty(t, history.Franchises)

	var bears bool
	for _, f := range history.Franchises {
		if f.Franchise == "bears" {
			bears = true
		}
	}
	assert.True(t, bears, "the Bears lineage should use its franchise key")
}
