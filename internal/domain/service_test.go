package domain

import (
	"testing"
	"time"
)

type stubStore struct {
	facts     []GameFact
	teams     []TeamMeta
	refreshed time.Time
}

func (s *stubStore) ListFacts() []GameFact     { return s.facts }
func (s *stubStore) ListTeams() []TeamMeta     { return s.teams }
func (s *stubStore) SetFacts(facts []GameFact) { s.facts = facts; s.refreshed = time.Now() }
func (s *stubStore) SetTeams(teams []TeamMeta) { s.teams = teams }
func (s *stubStore) LastRefreshed() time.Time  { return s.refreshed }

func TestServiceDelegatesToStore(t *testing.T) {
	st := &stubStore{}
	svc := NewService(st)

	if got := svc.Facts(); len(got) != 0 {
		t.Fatalf("expected no facts, got %d", len(got))
	}

	svc.ReplaceFacts([]GameFact{{Season: 2023, HomeTeam: Participant{Name: "Bears"}}})
	if got := svc.Facts(); len(got) != 1 || got[0].HomeTeam.Name != "Bears" {
		t.Fatalf("unexpected facts %+v", got)
	}
	if svc.LastRefreshed().IsZero() {
		t.Fatal("expected refresh time after replace")
	}

	svc.ReplaceTeams([]TeamMeta{{Name: "Chicago Bears"}})
	if got := svc.Teams(); len(got) != 1 || got[0].Name != "Chicago Bears" {
		t.Fatalf("unexpected teams %+v", got)
	}
}
