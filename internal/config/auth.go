package config

// AuthConfig holds session-token settings. An empty secret disables the
// protected surface entirely.
type AuthConfig struct {
	Secret   string
	TokenTTL Duration
}

func loadAuth() AuthConfig {
	return AuthConfig{
		Secret:   envOrDefault(envAuthSecret, ""),
		TokenTTL: durationEnvOrDefault(envAuthTokenTTL, defaultAuthTokenTTL),
	}
}
