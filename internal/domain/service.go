package domain

import "time"

// Store defines the contract for holding the current fact snapshot.
type Store interface {
	ListFacts() []GameFact
	ListTeams() []TeamMeta
	SetFacts(facts []GameFact)
	SetTeams(teams []TeamMeta)
	LastRefreshed() time.Time
}

// Service coordinates domain operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Facts returns the current fact snapshot.
func (s *Service) Facts() []GameFact {
	return s.store.ListFacts()
}

// Teams returns the current team metadata snapshot.
func (s *Service) Teams() []TeamMeta {
	return s.store.ListTeams()
}

// ReplaceFacts swaps the in-memory facts with a new snapshot.
func (s *Service) ReplaceFacts(facts []GameFact) {
	s.store.SetFacts(facts)
}

// ReplaceTeams swaps the in-memory team metadata with a new snapshot.
func (s *Service) ReplaceTeams(teams []TeamMeta) {
	s.store.SetTeams(teams)
}

// LastRefreshed reports when the snapshot was last replaced.
func (s *Service) LastRefreshed() time.Time {
	return s.store.LastRefreshed()
}
