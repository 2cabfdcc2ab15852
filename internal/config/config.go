// Package config loads and validates application configuration from environment variables.
package config

import (
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// MongoURL is the MongoDB connection string.
	// Defaults to "mongodb://localhost:27017".
	MongoURL string

	// DBName is the MongoDB database holding the trips, days, and
	// activities collections. Defaults to "tripflow_dev".
	DBName string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to
	// restrict it.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
// Every variable has a local-development default, so Load cannot fail on a
// bare environment.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "tripflow_dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
	}
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
