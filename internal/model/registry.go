package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/unitvoc/unitvoc/internal/tensor"
)

// ErrUnknownVariant is returned when a config names a generator type that
// was never registered.
var ErrUnknownVariant = errors.New("unknown generator variant")

// Generator is a constructed model ready to receive checkpoint weights.
// Implementations live with the caller; this package only wires weights
// into them.
type Generator interface {
	// LoadStateDict installs the named weight arrays read from a
	// checkpoint.
	LoadStateDict(states map[string]*tensor.Dense) error
}

// Constructor builds an empty generator from a config.
type Constructor func(cfg *Config) (Generator, error)

// Registry maps generator type names to constructors. Callers register
// every variant they support at startup and pass the registry to Load.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a constructor under a type name. Registering the same
// name twice is a wiring bug and fails.
func (r *Registry) Register(name string, build Constructor) error {
	if build == nil {
		return fmt.Errorf("nil constructor for generator type %q", name)
	}
	if _, ok := r.constructors[name]; ok {
		return fmt.Errorf("generator type %q already registered", name)
	}
	r.constructors[name] = build
	return nil
}

// Variants returns the registered type names, sorted.
func (r *Registry) Variants() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs a generator of the named type.
func (r *Registry) New(name string, cfg *Config) (Generator, error) {
	build, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownVariant, name, r.Variants())
	}
	return build(cfg)
}
