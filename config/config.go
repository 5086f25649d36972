package config

import (
	"log"
	"os"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local use; there are no flags beyond process
// start.
type Config struct {
	AppName string
	Env     string // development, production

	// SnapshotPath is the single JSON document holding all durable state.
	SnapshotPath string

	// CredentialScheme selects how passwords are stored: "plain" (legacy
	// snapshot format, default) or "bcrypt".
	CredentialScheme string

	// TickInterval is how often presentation re-renders countdowns.
	TickInterval time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		AppName:          getenv("APP_NAME", "eventapp"),
		Env:              getenv("APP_ENV", "development"),
		SnapshotPath:     getenv("SNAPSHOT_PATH", "event_app_data.json"),
		CredentialScheme: getenv("CREDENTIAL_SCHEME", "plain"),
		TickInterval:     getdur("TICK_INTERVAL", time.Second),
	}
}
