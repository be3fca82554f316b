package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("LAUNCHHUB_TEST_STR", "value")
	assert.Equal(t, "value", GetEnvString("LAUNCHHUB_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("LAUNCHHUB_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("LAUNCHHUB_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("LAUNCHHUB_TEST_INT", 7))

	t.Setenv("LAUNCHHUB_TEST_BAD_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("LAUNCHHUB_TEST_BAD_INT", 7))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("LAUNCHHUB_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("LAUNCHHUB_TEST_DUR", time.Minute))

	t.Setenv("LAUNCHHUB_TEST_BAD_DUR", "soon")
	assert.Equal(t, time.Minute, GetEnvDuration("LAUNCHHUB_TEST_BAD_DUR", time.Minute))
}

func TestValidateRequiresJWTSecret(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:    "db.internal",
		DBPort:    5433,
		DBUser:    "app",
		DBName:    "launchhub",
		DBSSLMode: "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=app password= dbname=launchhub sslmode=require",
		cfg.DSN(),
	)
}
