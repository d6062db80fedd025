package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/infrastructure"
)

const (
	defaultModel         = "gpt-4"
	defaultAppConfigPath = "config/app_config.yaml"
	defaultListenAddr    = ":8080"
)

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable not set")

// Settings is the process environment, read once at startup.
type Settings struct {
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	AppConfigPath string
	ListenAddr    string
	Debug         bool
}

// LoadSettings reads the environment. Call godotenv.Load first if a .env
// file should be honoured.
func LoadSettings() (*Settings, error) {
	s := &Settings{
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOr("OPENAI_MODEL", defaultModel),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		AppConfigPath: envOr("APP_CONFIG_PATH", defaultAppConfigPath),
		ListenAddr:    envOr("LISTEN_ADDR", defaultListenAddr),
	}
	if v := os.Getenv("APP_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("APP_DEBUG must be a boolean, got " + strconv.Quote(v))
		}
		s.Debug = debug
	}
	if s.OpenAIAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return s, nil
}

// AIConfig is the single model service binding shared by every role.
func (s *Settings) AIConfig() infrastructure.AIConfig {
	return infrastructure.AIConfig{
		APIKey:  s.OpenAIAPIKey,
		Model:   s.OpenAIModel,
		BaseURL: s.OpenAIBaseURL,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
