package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_EXPIRY", "SCORER_TIMEOUT", "SCORER_BIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10*time.Second, cfg.ScorerTimeout)
	assert.Equal(t, "python3", cfg.ScorerBin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("SCORER_TIMEOUT", "2s")
	t.Setenv("SCORER_BIN", "/usr/bin/python3.11")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 2*time.Second, cfg.ScorerTimeout)
	assert.Equal(t, "/usr/bin/python3.11", cfg.ScorerBin)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "a fortnight")

	cfg := Load()
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "s3cret",
		DBName:     "calorie_db",
		DBSSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "dbname=calorie_db")
	assert.Contains(t, dsn, "sslmode=require")
}
