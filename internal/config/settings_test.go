package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "APP_CONFIG_PATH", "LISTEN_ADDR", "APP_DEBUG"} {
		t.Setenv(key, "")
	}
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")

		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, "sk-test", s.OpenAIAPIKey)
		assert.Equal(t, "gpt-4", s.OpenAIModel)
		assert.Equal(t, "config/app_config.yaml", s.AppConfigPath)
		assert.Equal(t, ":8080", s.ListenAddr)
		assert.False(t, s.Debug)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("OPENAI_MODEL", "gpt-4o")
		t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1")
		t.Setenv("LISTEN_ADDR", ":9090")
		t.Setenv("APP_DEBUG", "true")

		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", s.OpenAIModel)
		assert.Equal(t, ":9090", s.ListenAddr)
		assert.True(t, s.Debug)

		ai := s.AIConfig()
		assert.Equal(t, "sk-test", ai.APIKey)
		assert.Equal(t, "gpt-4o", ai.Model)
		assert.Equal(t, "http://localhost:9999/v1", ai.BaseURL)
	})

	t.Run("missing api key", func(t *testing.T) {
		clearEnv(t)

		_, err := LoadSettings()
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("bad debug flag", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("APP_DEBUG", "sometimes")

		_, err := LoadSettings()
		assert.Error(t, err)
	})
}
