package config

import (
	"os"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// SpannerConfig holds the durable store configuration.
type SpannerConfig struct {
	// Database is the fully qualified database name, e.g.
	// projects/p/instances/i/databases/d.
	Database string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// WatchConfig holds snapshot subscription configuration.
type WatchConfig struct {
	// Interval is how often the watcher re-evaluates its queries.
	Interval time.Duration
}

// Config holds all configuration.
type Config struct {
	ServiceName string
	Server      ServerConfig
	Spanner     SpannerConfig
	Log         LogConfig
	Watch       WatchConfig
}

// Load reads configuration from environment variables with sensible
// defaults for local development against the Spanner emulator.
func Load() (*Config, error) {
	interval, err := time.ParseDuration(getEnv("WATCH_INTERVAL", "2s"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "staff-rental-service"),
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Spanner: SpannerConfig{
			Database: getEnv("SPANNER_DATABASE",
				"projects/test-project/instances/emulator-instance/databases/staff-rental"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Watch: WatchConfig{
			Interval: interval,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
