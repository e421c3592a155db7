package server

import (
	"context"

	"nfl-records-service/internal/poller"
)

// Poller defines the minimal refresh-loop behavior the server needs.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
