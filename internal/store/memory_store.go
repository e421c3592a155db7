package store

import (
	"sync"
	"time"

	"nfl-records-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of game facts and team metadata
// in memory. Readers always get copies; the snapshot itself is never handed
// out for mutation.
type MemoryStore struct {
	mu        sync.RWMutex
	facts     []domain.GameFact
	teams     []domain.TeamMeta
	refreshed time.Time
	now       func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// ListFacts returns a copy of the current fact snapshot.
func (s *MemoryStore) ListFacts() []domain.GameFact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.GameFact, len(s.facts))
	copy(result, s.facts)
	return result
}

// ListTeams returns a copy of the current team metadata.
func (s *MemoryStore) ListTeams() []domain.TeamMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.TeamMeta, len(s.teams))
	copy(result, s.teams)
	return result
}

// SetFacts replaces the existing facts with a new snapshot.
func (s *MemoryStore) SetFacts(facts []domain.GameFact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.facts = make([]domain.GameFact, len(facts))
	copy(s.facts, facts)
	s.refreshed = s.now()
}

// SetTeams replaces the existing team metadata with a new snapshot.
func (s *MemoryStore) SetTeams(teams []domain.TeamMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make([]domain.TeamMeta, len(teams))
	copy(s.teams, teams)
}

// LastRefreshed reports when SetFacts last ran; zero before the first load.
func (s *MemoryStore) LastRefreshed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshed
}
