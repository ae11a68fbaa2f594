// Package generator provides the built-in template generators used when no
// learned pattern profile is available. Each generator is a standalone
// sampler producing domain-shaped rows; generators register themselves with
// the package registry keyed by the intent they serve.
package generator

import (
	"sync"

	"go.uber.org/zap"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/intent"
	"github.com/tabsynth/tabsynth/pkg/logger"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

// Generator produces a synthetic table of count rows. Implementations draw
// all randomness from the supplied request-scoped context.
type Generator interface {
	Generate(ctx *synth.Context, count int) (*sample.Table, error)
}

// Factory creates a generator instance.
type Factory func() Generator

// Registry manages generator registration and instantiation
type Registry struct {
	factories map[intent.Type]Factory
	mu        sync.RWMutex
	logger    *zap.Logger
}

// Global registry instance
var globalRegistry = NewRegistry()

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[intent.Type]Factory),
		logger:    logger.Get().With(zap.String("component", "generator_registry")),
	}
}

// Register registers a generator factory for an intent
func (r *Registry) Register(it intent.Type, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[it]; exists {
		return errors.Newf(errors.ErrorTypeConfig, "generator %s already registered", it)
	}

	r.factories[it] = factory
	r.logger.Info("generator registered", zap.String("intent", string(it)))
	return nil
}

// Create creates a generator instance for an intent
func (r *Registry) Create(it intent.Type) (Generator, error) {
	r.mu.RLock()
	factory, exists := r.factories[it]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrorTypeValidation, "no generator registered for intent %s", it)
	}

	return factory(), nil
}

// List returns the intents with registered generators
func (r *Registry) List() []intent.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	intents := make([]intent.Type, 0, len(r.factories))
	for it := range r.factories {
		intents = append(intents, it)
	}
	return intents
}

// Register registers a generator factory with the global registry
func Register(it intent.Type, factory Factory) error {
	return globalRegistry.Register(it, factory)
}

// Create creates a generator from the global registry
func Create(it intent.Type) (Generator, error) {
	return globalRegistry.Create(it)
}

// List returns the intents registered with the global registry
func List() []intent.Type {
	return globalRegistry.List()
}
