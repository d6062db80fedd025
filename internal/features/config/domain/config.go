package domain

import (
	"errors"
	"fmt"
)

// AppConfig represents the application configuration.
type AppConfig struct {
	DefaultRequirements string         `yaml:"default_requirements" json:"default_requirements"`
	Roles               Roles          `yaml:"roles" json:"roles"`
	ModelParams         ModelParams    `yaml:"model_params" json:"model_params"`
	CodeGeneration      CodeGeneration `yaml:"code_generation" json:"code_generation"`
}

// RoleConfig binds a role name to the instructions sent as its system prompt.
type RoleConfig struct {
	Name         string `yaml:"name" json:"name"`
	Instructions string `yaml:"instructions" json:"instructions"`
}

// Roles holds the four pipeline roles in call order.
type Roles struct {
	Requirements RoleConfig `yaml:"requirements" json:"requirements"`
	UserStory    RoleConfig `yaml:"user_story" json:"user_story"`
	CodeGen      RoleConfig `yaml:"code_gen" json:"code_gen"`
	Aggregator   RoleConfig `yaml:"aggregator" json:"aggregator"`
}

// All returns the roles in pipeline order.
func (r Roles) All() []RoleConfig {
	return []RoleConfig{r.Requirements, r.UserStory, r.CodeGen, r.Aggregator}
}

// ModelParams defines the parameters for the AI model.
type ModelParams struct {
	Temperature float32 `yaml:"temperature" json:"temperature"`
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens"`
}

// CodeGeneration controls how the per-story code calls are issued.
// Concurrency 1 keeps them strictly sequential.
type CodeGeneration struct {
	Concurrency int `yaml:"concurrency" json:"concurrency"`
}

var ErrInvalidConfig = errors.New("invalid app config")

// Validate reports the first problem that would make the pipeline unusable.
func (c *AppConfig) Validate() error {
	for i, role := range c.Roles.All() {
		if role.Name == "" {
			return fmt.Errorf("%w: role %d has no name", ErrInvalidConfig, i+1)
		}
		if role.Instructions == "" {
			return fmt.Errorf("%w: role %s has no instructions", ErrInvalidConfig, role.Name)
		}
	}
	if c.CodeGeneration.Concurrency < 1 {
		return fmt.Errorf("%w: code_generation.concurrency must be at least 1, got %d", ErrInvalidConfig, c.CodeGeneration.Concurrency)
	}
	if c.ModelParams.MaxTokens < 0 {
		return fmt.Errorf("%w: model_params.max_tokens must not be negative", ErrInvalidConfig)
	}
	return nil
}
