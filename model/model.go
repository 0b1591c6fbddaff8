// Copyright 2026 UnitVoc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model loads trained vocoder generators from checkpoint files.
//
// Construction goes through an explicit registry of constructors the
// caller injects, so this package knows nothing about any particular
// network architecture:
//
//	reg := model.NewRegistry()
//	err := reg.Register("hifigan", func(cfg *model.Config) (model.Generator, error) {
//	    return hifigan.New(cfg.GeneratorParams)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gen, err := model.Load("exp/checkpoint-400000steps.st", nil, reg)
package model

import (
	"github.com/unitvoc/unitvoc/internal/model"
)

// DefaultGeneratorType is assumed when a config does not name one.
const DefaultGeneratorType = model.DefaultGeneratorType

// ConfigFileName is the config expected next to a checkpoint when the
// caller does not pass a Config explicitly.
const ConfigFileName = model.ConfigFileName

// ErrUnknownVariant is returned when a config names a generator type that
// was never registered.
var ErrUnknownVariant = model.ErrUnknownVariant

// Config is the training-time configuration stored alongside checkpoints.
type Config = model.Config

// Generator is a constructed model ready to receive checkpoint weights.
type Generator = model.Generator

// Constructor builds an empty generator from a config.
type Constructor = model.Constructor

// Registry maps generator type names to constructors.
type Registry = model.Registry

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return model.NewRegistry()
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	return model.LoadConfig(path)
}

// Load builds a generator from a checkpoint, reading ConfigFileName from
// the checkpoint's directory when cfg is nil.
func Load(checkpointPath string, cfg *Config, reg *Registry) (Generator, error) {
	return model.Load(checkpointPath, cfg, reg)
}
