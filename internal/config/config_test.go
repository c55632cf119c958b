package config_test

import (
	"testing"

	"github.com/dom/superhero-pets/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, 2, cfg.JWTExpirationHours)
	assert.True(t, cfg.SeedOnStart)
	assert.True(t, cfg.SeedRequiresAuth)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRATION_HOURS", "5")
	t.Setenv("SEED_REQUIRES_AUTH", "false")
	t.Setenv("SEED_ON_START", "not-a-bool")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5, cfg.JWTExpirationHours)
	assert.False(t, cfg.SeedRequiresAuth)
	assert.True(t, cfg.SeedOnStart, "unparseable values fall back to the default")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("non-positive expiry", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
