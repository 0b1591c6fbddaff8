// Package model loads trained vocoder generators from checkpoint files.
//
// Construction goes through an explicit Registry of generator constructors
// injected by the caller, so the package has no compile-time knowledge of
// any network architecture and no global state.
package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultGeneratorType is assumed when a config does not name one.
const DefaultGeneratorType = "bigvgan"

// ConfigFileName is the config expected next to a checkpoint when the
// caller does not pass a Config explicitly.
const ConfigFileName = "config.yml"

// Config is the training-time configuration stored alongside checkpoints.
// The params maps are passed through to the generator constructor as-is.
type Config struct {
	GeneratorType   string         `yaml:"generator_type"`
	PromptNetType   string         `yaml:"prompt_net_type"`
	NumMels         int            `yaml:"num_mels"`
	FrontendParams  map[string]any `yaml:"frontend_params"`
	GeneratorParams map[string]any `yaml:"generator_params"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.GeneratorType == "" {
		cfg.GeneratorType = DefaultGeneratorType
	}

	return &cfg, nil
}
