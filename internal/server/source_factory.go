package server

import (
	"context"
	"fmt"
	"log/slog"

	"nfl-records-service/internal/config"
	"nfl-records-service/internal/metrics"
	"nfl-records-service/internal/source"
	"nfl-records-service/internal/source/fixture"
	"nfl-records-service/internal/source/postgres"
)

// sourceFactory assembles the archive source with the shared retry wrapper.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(ctx context.Context, cfg config.Config) (source.FactSource, error) {
	base, name, err := f.selectSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return source.NewRetryingSource(base, f.logger, f.metrics, name, 0, 0), nil
}

func (f sourceFactory) selectSource(ctx context.Context, cfg config.Config) (source.FactSource, string, error) {
	switch cfg.Source {
	case "postgres":
		if cfg.Database.URL == "" {
			return nil, "", fmt.Errorf("source postgres requires DATABASE_URL")
		}
		src, err := postgres.Open(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.FirstSeason)
		if err != nil {
			return nil, "", fmt.Errorf("open postgres source: %w", err)
		}
		return src, "postgres", nil
	case "", "fixture":
		return fixture.New(), "fixture", nil
	default:
		return nil, "", fmt.Errorf("unknown source %q", cfg.Source)
	}
}
