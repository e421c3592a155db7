package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksSourceAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSourceAttempt("postgres", 10*time.Millisecond, nil)
	rec.RecordSourceAttempt("postgres", 15*time.Millisecond, errors.New("boom"))

	if got := rec.SourceCalls("postgres"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.SourceErrors("postgres"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("postgres"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("postgres")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksReportBuilds(t *testing.T) {
	rec := NewRecorder()
	rec.RecordReportBuild("standings", time.Millisecond)
	rec.RecordReportBuild("standings", 2*time.Millisecond)
	rec.RecordReportBuild("matchup", time.Millisecond)

	if got := rec.ReportBuilds("standings"); got != 2 {
		t.Fatalf("expected 2 standings builds, got %d", got)
	}
	if got := rec.ReportBuilds("matchup"); got != 1 {
		t.Fatalf("expected 1 matchup build, got %d", got)
	}
	if got := rec.ReportBuilds("unknown"); got != 0 {
		t.Fatalf("expected 0 builds for unknown report, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordSourceAttempt("postgres", time.Millisecond, nil)
	rec.RecordReportBuild("standings", time.Millisecond)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordRefreshCycle(time.Millisecond, nil)

	if got := rec.Snapshot("postgres"); got != (Snapshot{}) {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", got)
	}
	if got := rec.ReportBuilds("standings"); got != 0 {
		t.Fatalf("expected 0 builds from nil recorder, got %d", got)
	}
}
