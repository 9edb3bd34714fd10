// Package component reconstructs termination conditions from persisted
// provider/configuration pairs, without the caller knowing the concrete
// condition type in advance.
package component

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/TristanLib/autogen/domain/termination"
)

// Spec is the persisted form of a termination condition: a stable
// provider identifier plus the serialized configuration. Progress state
// is never part of a Spec.
type Spec struct {
	Provider string          `json:"provider"`
	Config   json.RawMessage `json:"config,omitempty"`
}

// Factory constructs a condition from serialized configuration.
type Factory func(config json.RawMessage) (termination.Condition, error)

// Component is implemented by conditions whose configuration can be
// serialized and later reconstructed through a Registry.
type Component interface {
	termination.Condition

	// Provider returns the stable component identifier.
	Provider() string

	// Config serializes the condition's configuration, never its
	// progress state.
	Config() (json.RawMessage, error)
}

// Registry maps provider identifiers to condition factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry pre-populated with every built-in
// condition provider.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}

	builtins := map[string]Factory{
		termination.ProviderStopMessage:  termination.NewStopMessageFromConfig,
		termination.ProviderMaxMessage:   termination.NewMaxMessageFromConfig,
		termination.ProviderTextMention:  termination.NewTextMentionFromConfig,
		termination.ProviderTokenUsage:   termination.NewTokenUsageFromConfig,
		termination.ProviderHandoff:      termination.NewHandoffFromConfig,
		termination.ProviderTimeout:      termination.NewTimeoutFromConfig,
		termination.ProviderExternal:     termination.NewExternalFromConfig,
		termination.ProviderSourceMatch:  termination.NewSourceMatchFromConfig,
		termination.ProviderTextMessage:  termination.NewTextMessageFromConfig,
		termination.ProviderFunctionCall: termination.NewFunctionCallFromConfig,
	}
	for provider, factory := range builtins {
		r.factories[provider] = factory
	}
	return r
}

// Register adds a factory for a provider.
func (r *Registry) Register(provider string, factory Factory) error {
	if provider == "" {
		return fmt.Errorf("%w: empty provider", ErrInvalidSpec)
	}
	if factory == nil {
		return fmt.Errorf("%w: nil factory for %s", ErrInvalidSpec, provider)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[provider]; exists {
		return fmt.Errorf("%w: %s", ErrProviderExists, provider)
	}
	r.factories[provider] = factory
	return nil
}

// Has checks whether a provider is registered.
func (r *Registry) Has(provider string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[provider]
	return ok
}

// Providers returns all registered provider identifiers, sorted.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for provider := range r.factories {
		providers = append(providers, provider)
	}
	sort.Strings(providers)
	return providers
}

// Load reconstructs a fresh, untriggered condition from a spec.
func (r *Registry) Load(spec Spec) (termination.Condition, error) {
	r.mu.RLock()
	factory, ok := r.factories[spec.Provider]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, spec.Provider)
	}

	config := spec.Config
	if len(config) == 0 {
		config = json.RawMessage("{}")
	}
	cond, err := factory(config)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", spec.Provider, err)
	}
	return cond, nil
}

// LoadAll reconstructs every spec in order. It fails on the first spec
// that cannot be loaded.
func (r *Registry) LoadAll(specs []Spec) ([]termination.Condition, error) {
	conditions := make([]termination.Condition, 0, len(specs))
	for i, spec := range specs {
		cond, err := r.Load(spec)
		if err != nil {
			return nil, fmt.Errorf("spec %d: %w", i, err)
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

// Dump serializes a condition's configuration into a spec. Conditions
// that do not implement Component report ErrNotSerializable.
func (r *Registry) Dump(cond termination.Condition) (Spec, error) {
	comp, ok := cond.(Component)
	if !ok {
		return Spec{}, fmt.Errorf("%s: %w", cond.Name(), termination.ErrNotSerializable)
	}
	config, err := comp.Config()
	if err != nil {
		return Spec{}, fmt.Errorf("dump %s: %w", comp.Provider(), err)
	}
	return Spec{Provider: comp.Provider(), Config: config}, nil
}
