package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OWM_API_KEY", "test-owm-key")
	t.Setenv("OPENROUTER_API_KEY", "test-or-key")
}

func TestConfigDefaults(t *testing.T) {
	setRequiredConfigEnv(t)

	cfg := config()

	assert.Equal(t, "8080", cfg.port)
	assert.False(t, cfg.devMode)
	assert.Equal(t, 20*time.Millisecond, cfg.typeInterval)
	assert.Equal(t, defaultFallbackModels, cfg.fallbackModels)
	assert.Equal(t, 10*time.Second, cfg.httpClient.Timeout)
	require.NotNil(t, cfg.geocoder)
	require.NotNil(t, cfg.weather)
	require.NotNil(t, cfg.chat)
}

func TestConfigOverrides(t *testing.T) {
	setRequiredConfigEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("TYPE_INTERVAL_MS", "50")
	t.Setenv("PROVIDER_TIMEOUT_SEC", "3")

	cfg := config()

	assert.Equal(t, "9999", cfg.port)
	assert.True(t, cfg.devMode)
	assert.Equal(t, 50*time.Millisecond, cfg.typeInterval)
	assert.Equal(t, 3*time.Second, cfg.httpClient.Timeout)
}

func TestConfigFallbackModels(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "Comma Separated With Spaces",
			value: "model-x , model-y,model-z",
			want:  []string{"model-x", "model-y", "model-z"},
		},
		{
			name:  "Empty Value Keeps Defaults",
			value: " , ",
			want:  defaultFallbackModels,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredConfigEnv(t)
			t.Setenv("FALLBACK_MODELS", tc.value)

			cfg := config()
			assert.Equal(t, tc.want, cfg.fallbackModels)
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Valid Value", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 7, logger))
	})

	t.Run("Invalid Value Uses Fallback", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 7, getEnvAsInt("TEST_INT_VAR", 7, logger))
	})

	t.Run("Unset Uses Fallback", func(t *testing.T) {
		assert.Equal(t, 7, getEnvAsInt("TEST_INT_VAR_UNSET", 7, logger))
	})
}
