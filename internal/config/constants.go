package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envSource          = "SOURCE"
	envFirstSeason     = "FIRST_SEASON"
	envDatabaseURL     = "DATABASE_URL"
	envDatabaseMaxConn = "DATABASE_MAX_CONNS"
	envAuthSecret      = "AUTH_SECRET"
	envAuthTokenTTL    = "AUTH_TOKEN_TTL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort   = "4000"
	defaultSource = "fixture"
	// Results are final once a week completes; an hourly refresh is already generous.
	defaultRefreshInterval = Duration(time.Hour)
	// First season with a full results archive.
	defaultFirstSeason     = 1966
	defaultDatabaseMaxConn = 8
	defaultAuthTokenTTL    = 12 * Duration(time.Hour)
	defaultMetricsPort     = "9090"
)
