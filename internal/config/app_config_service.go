package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// AppConfigService defines the interface for application configuration management.
type AppConfigService interface {
	LoadAppConfig() (*domain.AppConfig, error)
}

// appConfigService is the implementation of AppConfigService.
type appConfigService struct {
	configPath string
	logger     *zap.Logger
}

// NewAppConfigService creates a new instance of appConfigService.
func NewAppConfigService(configPath string, logger *zap.Logger) AppConfigService {
	return &appConfigService{configPath: configPath, logger: logger}
}

// LoadAppConfig loads the application configuration from the configured YAML
// file on top of the built-in defaults. A missing file yields the defaults.
func (s *appConfigService) LoadAppConfig() (*domain.AppConfig, error) {
	appConfig := domain.DefaultAppConfig()

	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read app config file %s: %w", absPath, err)
		}
		s.logger.Info("app config file not found, using defaults", zap.String("path", absPath))
	} else {
		if err := yaml.Unmarshal(data, appConfig); err != nil {
			return nil, fmt.Errorf("failed to parse app config from %s: %w", absPath, err)
		}
		s.logger.Debug("app config loaded", zap.String("path", absPath), zap.Int("bytes", len(data)))
	}

	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("app config %s: %w", absPath, err)
	}
	return appConfig, nil
}
