package circumflex

import (
	"fmt"
	"sync"
)

// Factory produces a fresh instance of a configurable component.
type Factory func() (interface{}, error)

// Registry maps names to component factories and shared singletons.
//
// Components register themselves at startup, configuration values then select
// an implementation by name. This replaces resolving a type name through
// reflection: the registered name is the type descriptor.
type Registry struct {
	mu         sync.RWMutex
	factories  map[string]Factory
	singletons map[string]interface{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories:  map[string]Factory{},
		singletons: map[string]interface{}{},
	}
}

// Register adds a factory producing a fresh instance per Resolve.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	r.factories[name] = f
	r.mu.Unlock()
}

// RegisterSingleton adds a shared instance.
//
// Every Resolve of name returns the identical instance.
func (r *Registry) RegisterSingleton(name string, instance interface{}) {
	r.mu.Lock()
	r.singletons[name] = instance
	r.mu.Unlock()
}

// Resolve produces an instance for name.
//
// A shared singleton takes precedence over a factory. An unregistered name or
// a failing factory is an ErrInstantiation.
func (r *Registry) Resolve(name string) (interface{}, error) {
	r.mu.RLock()
	inst, isSingleton := r.singletons[name]
	f, hasFactory := r.factories[name]
	r.mu.RUnlock()

	if isSingleton {
		return inst, nil
	}

	if hasFactory {
		inst, err := f()
		if err != nil {
			return nil, fmt.Errorf("%w: building %q: %v", ErrInstantiation, name, err)
		}

		return inst, nil
	}

	return nil, fmt.Errorf("%w: %q is not registered", ErrInstantiation, name)
}
