package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/store"
)

type stubSource struct {
	facts  []domain.GameFact
	teams  []domain.TeamMeta
	err    error
	calls  atomic.Int32
	notify chan struct{}
}

func (s *stubSource) FetchFacts(ctx context.Context) ([]domain.GameFact, error) {
	s.calls.Add(1)
	if s.notify != nil {
		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.facts, nil
}

func (s *stubSource) FetchTeams(ctx context.Context) ([]domain.TeamMeta, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.teams, nil
}

func TestPollerRefreshesSnapshot(t *testing.T) {
	src := &stubSource{
		facts: []domain.GameFact{{
			Season:   2023,
			Week:     "1",
			HomeTeam: domain.Participant{Name: "Chicago Bears"},
			AwayTeam: domain.Participant{Name: "Green Bay Packers"},
		}},
		teams:  []domain.TeamMeta{{Name: "Chicago Bears"}},
		notify: make(chan struct{}, 1),
	}
	svc := domain.NewService(store.NewMemoryStore())

	p := New(src, svc, nil, nil, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-src.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	facts := svc.Facts()
	if len(facts) != 1 || facts[0].HomeTeam.Name != "Chicago Bears" {
		t.Fatalf("unexpected snapshot %+v", facts)
	}
	if teams := svc.Teams(); len(teams) != 1 {
		t.Fatalf("expected team metadata to refresh, got %+v", teams)
	}
	if src.calls.Load() < 1 {
		t.Fatal("expected at least one fetch call")
	}
	if !p.Status().IsReady() {
		t.Fatalf("expected ready status, got %+v", p.Status())
	}
}

func TestPollerKeepsSnapshotOnFailure(t *testing.T) {
	svc := domain.NewService(store.NewMemoryStore())
	svc.ReplaceFacts([]domain.GameFact{{Season: 2022, HomeTeam: domain.Participant{Name: "Keep"}}})

	src := &stubSource{err: errors.New("archive offline"), notify: make(chan struct{}, 1)}
	p := New(src, svc, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	select {
	case <-src.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for refresh attempt")
	}
	_ = p.Stop(context.Background())

	if facts := svc.Facts(); len(facts) != 1 || facts[0].HomeTeam.Name != "Keep" {
		t.Fatalf("expected previous snapshot to survive, got %+v", facts)
	}

	status := p.Status()
	if status.ConsecutiveFailures == 0 && status.LastError == "" {
		// The failure bookkeeping may lag the notify by a moment.
		time.Sleep(20 * time.Millisecond)
		status = p.Status()
	}
	if status.LastError == "" {
		t.Fatalf("expected a recorded failure, got %+v", status)
	}
	if status.IsReady() {
		t.Fatal("expected not-ready status after a failed boot refresh")
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	src := &stubSource{notify: make(chan struct{}, 1)}
	svc := domain.NewService(store.NewMemoryStore())
	p := New(src, svc, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx)

	select {
	case <-src.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for refresh")
	}
	_ = p.Stop(context.Background())
	_ = p.Stop(context.Background())
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&stubSource{}, domain.NewService(store.NewMemoryStore()), nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval, got %s", p.interval)
	}
}
