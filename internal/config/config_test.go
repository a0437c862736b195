package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PATH", "PORT", "SESSION_TTL_HOURS", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "notes.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "notes")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_HOST", "db:3306")
	t.Setenv("DB_NAME", "notesdb")
	t.Setenv("JWT_SECRET", "topsecret")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "24")

	cfg := LoadConfig()
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "notes", cfg.DBUser)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "db:3306", cfg.DBHost)
	assert.Equal(t, "notesdb", cfg.DBName)
	assert.Equal(t, "topsecret", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadConfigBadTTLFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
}
