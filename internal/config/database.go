package config

// DatabaseConfig holds Postgres connection settings for the results archive.
type DatabaseConfig struct {
	URL      string
	MaxConns int
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		URL:      envOrDefault(envDatabaseURL, ""),
		MaxConns: intEnvOrDefault(envDatabaseMaxConn, defaultDatabaseMaxConn),
	}
}
