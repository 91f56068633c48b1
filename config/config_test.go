package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"FIREBASE_PROJECT_ID", "BACKEND", "DB_DRIVER", "DATABASE_URL", "PORT", "LOG_LEVEL", "LOG_FORMAT", "SEED_RANDOM_SEED"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendFirebase, cfg.Backend)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "seed.db", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.RandomSeed)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND", "SQL")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "host=localhost dbname=shop")
	t.Setenv("SEED_RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQL, cfg.Backend)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=localhost dbname=shop", cfg.DatabaseURL)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SEED_RANDOM_SEED", "not-a-number")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SEED_RANDOM_SEED", "")
	t.Setenv("BACKEND", "mongo")
	_, err = Load()
	assert.Error(t, err)
}
