package config

import "os"

// Config holds process configuration. Everything has a usable default; the
// server runs with no environment at all.
type Config struct {
	Port              string
	LogLevel          string
	CORSAllowedOrigin string
	GinMode           string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		CORSAllowedOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "*"),
		GinMode:           getEnvOrDefault("GIN_MODE", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
