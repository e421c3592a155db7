// Package source defines how the historical results archive is fetched and
// normalized into game facts. Implementations live in subpackages; this
// package holds the contract and the generic wrappers.
package source

import (
	"context"

	"nfl-records-service/internal/domain"
)

// FactSource loads the full results archive and the team metadata that goes
// with it. Implementations return the complete history on every call; the
// snapshot store handles caching.
type FactSource interface {
	FetchFacts(ctx context.Context) ([]domain.GameFact, error)
	FetchTeams(ctx context.Context) ([]domain.TeamMeta, error)
}
