package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval Duration
	Source          string
	FirstSeason     int
	Database        DatabaseConfig
	Auth            AuthConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Source:          envOrDefault(envSource, defaultSource),
		FirstSeason:     intEnvOrDefault(envFirstSeason, defaultFirstSeason),
		Database:        loadDatabase(),
		Auth:            loadAuth(),
		Metrics:         loadMetrics(),
	}
}
