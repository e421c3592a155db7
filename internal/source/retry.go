package source

import (
	"context"
	"log/slog"
	"time"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/logging"
	"nfl-records-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a FactSource with retry/backoff behavior and records
// every attempt against the metrics recorder.
type retryingSource struct {
	inner       FactSource
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingSource wraps the given source with retries. If maxAttempts/backoff
// are <= 0, defaults are used.
func NewRetryingSource(inner FactSource, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) FactSource {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSource) FetchFacts(ctx context.Context) ([]domain.GameFact, error) {
	var facts []domain.GameFact
	err := r.withRetries(ctx, "fetch facts", func() error {
		var err error
		facts, err = r.inner.FetchFacts(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return facts, nil
}

func (r *retryingSource) FetchTeams(ctx context.Context) ([]domain.TeamMeta, error) {
	var teams []domain.TeamMeta
	err := r.withRetries(ctx, "fetch teams", func() error {
		var err error
		teams, err = r.inner.FetchTeams(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Close forwards to the wrapped source when it holds resources.
func (r *retryingSource) Close() error {
	if closer, ok := r.inner.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (r *retryingSource) withRetries(ctx context.Context, op string, call func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := call()
		if r.recorder != nil {
			r.recorder.RecordSourceAttempt(r.name, time.Since(start), err)
		}
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "source "+op+" retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "source "+op+" failed", "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingSource) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	logWithSource(ctx, logger, slog.LevelWarn, r.name, msg, args...)
}
