// Package mapgen defines the generator contract and the registry the CLI
// and orchestrator resolve generators from.
package mapgen

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Generator is one algorithm. Setup is called once before Build, and Build
// is called at most once per instance.
type Generator interface {
	Setup()
	Build() (*Result, error)
}

// Result is the final grid plus every frame recorded on the way there
type Result struct {
	Grid   *grid.Grid
	Frames frames.Sequence
}

// Factory builds a generator bound to a random source
type Factory func(src rng.Source) Generator

// NoiseUser is implemented by generators that sample a noise field
type NoiseUser interface {
	UseBasis(b noise.Basis)
}

// BuildOption adjusts a generator between its factory and Setup
type BuildOption func(gen Generator)

// WithNoise selects the noise basis. Generators that do not sample noise
// ignore it.
func WithNoise(b noise.Basis) BuildOption {
	return func(gen Generator) {
		if nu, ok := gen.(NoiseUser); ok {
			nu.UseBasis(b)
		}
	}
}

// Descriptor names a registered generator
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type entry struct {
	descriptor Descriptor
	factory    Factory
}

// Registry maps generator names to factories
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a factory under name
func (r *Registry) Register(name, description string, f Factory) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	if f == nil {
		vb.RequiredField("factory")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return errors.AlreadyExists("generator already registered").WithMeta("generator", name)
	}
	r.entries[name] = entry{
		descriptor: Descriptor{Name: name, Description: description},
		factory:    f,
	}
	return nil
}

// Lookup returns the factory registered under name
func (r *Registry) Lookup(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, errors.NotFoundf("generator %q not found", name).WithMeta("generator", name)
	}
	return e.factory, nil
}

// Names lists registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptors lists registered generators sorted by name
func (r *Registry) Descriptors() []Descriptor {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, len(names))
	for i, name := range names {
		out[i] = r.entries[name].descriptor
	}
	return out
}

// Build looks up name, binds it to src, applies opts and runs Setup then
// Build
func (r *Registry) Build(name string, src rng.Source, opts ...BuildOption) (*Result, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	gen := f(src)
	for _, opt := range opts {
		opt(gen)
	}
	return Run(gen)
}

// Run drives one generator through Setup and Build
func Run(gen Generator) (*Result, error) {
	gen.Setup()
	return gen.Build()
}

var defaultRegistry = NewRegistry()

// Default is the registry generator packages register into from init
func Default() *Registry {
	return defaultRegistry
}

// Register adds f to the default registry. It panics on a duplicate or
// empty name since registration only happens from init.
func Register(name, description string, f Factory) {
	if err := defaultRegistry.Register(name, description, f); err != nil {
		panic(err)
	}
}

// Lookup resolves name in the default registry
func Lookup(name string) (Factory, error) {
	return defaultRegistry.Lookup(name)
}

// Names lists the default registry
func Names() []string {
	return defaultRegistry.Names()
}

// Descriptors lists the default registry with descriptions
func Descriptors() []Descriptor {
	return defaultRegistry.Descriptors()
}
