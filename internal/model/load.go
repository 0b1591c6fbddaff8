package model

import (
	"fmt"
	"path/filepath"

	"github.com/unitvoc/unitvoc/internal/featstore"
)

// Load builds a generator from a checkpoint.
//
// The checkpoint is a feature container holding the state dict. When cfg
// is nil, ConfigFileName is read from the checkpoint's directory. The
// generator variant named by the config is constructed through the
// registry and handed every dataset in the checkpoint.
func Load(checkpointPath string, cfg *Config, reg *Registry) (Generator, error) {
	if cfg == nil {
		configPath := filepath.Join(filepath.Dir(checkpointPath), ConfigFileName)
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	gen, err := reg.New(cfg.GeneratorType, cfg)
	if err != nil {
		return nil, err
	}

	r, err := featstore.Open(checkpointPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint: %w", err)
	}
	defer func() {
		_ = r.Close() // Best effort close
	}()

	states, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	if err := gen.LoadStateDict(states); err != nil {
		return nil, fmt.Errorf("failed to load state dict: %w", err)
	}

	return gen, nil
}
