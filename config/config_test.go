package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should load with defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("GEMINI_KEY", "test-key")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "gemini-pro", cfg.GeminiModel)
		assert.Equal(t, 5, cfg.RateLimit)
		assert.Equal(t, time.Minute, cfg.RateLimitWindow)
		assert.Equal(t, "first", cfg.ExtractMatchPolicy)
	})

	t.Run("should fail without JWT secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("GEMINI_KEY", "test-key")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("should fail without Gemini key", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("GEMINI_KEY", "")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_KEY")
	})

	t.Run("should reject unknown extract policy", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("GEMINI_KEY", "test-key")
		t.Setenv("EXTRACT_MATCH_POLICY", "greedy")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "EXTRACT_MATCH_POLICY")
	})

	t.Run("should read overrides from environment", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("GEMINI_KEY", "test-key")
		t.Setenv("RATE_LIMIT", "10")
		t.Setenv("RATE_LIMIT_WINDOW", "30s")
		t.Setenv("EXTRACT_MATCH_POLICY", "validated")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 10, cfg.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
		assert.Equal(t, "validated", cfg.ExtractMatchPolicy)
	})
}
