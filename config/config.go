// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backend selects which stores the identity and document repositories talk to.
type Backend string

const (
	BackendFirebase Backend = "firebase"
	BackendSQL      Backend = "sql"
)

type Config struct {
	ProjectID       string
	CredentialsFile string
	Backend         Backend
	DBDriver        string
	DatabaseURL     string
	Port            string
	LogLevel        string
	LogFormat       string
	// RandomSeed is zero when no fixed seed was requested.
	RandomSeed uint64
}

// Load reads .env (if present) and then the process environment.
// Variables already set in the environment win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		Backend:         Backend(strings.ToLower(getEnv("BACKEND", string(BackendFirebase)))),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DatabaseURL:     getEnv("DATABASE_URL", "seed.db"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}

	if raw := os.Getenv("SEED_RANDOM_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_RANDOM_SEED %q: %w", raw, err)
		}
		cfg.RandomSeed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFirebase, BackendSQL:
	default:
		return fmt.Errorf("unsupported BACKEND %q (want firebase or sql)", c.Backend)
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", c.DBDriver)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
