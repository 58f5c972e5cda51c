package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/easytest/pkg/domain"
)

// Registry manages the available modules.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

// Default is the registry application packages register into from init.
var Default = New()

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		modules: make(map[string]*Module),
	}
}

// Module creates a module and registers it.
// If a module with the same name exists, it is replaced.
func (r *Registry) Module(name string, requires ...string) *Module {
	m := NewModule(name, requires...)
	r.Register(m)
	return m
}

// Register adds an existing module, replacing any module with the same name.
func (r *Registry) Register(m *Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[m.Name()] = m
}

// Lookup returns the module registered under name.
func (r *Registry) Lookup(name string) (*Module, error) {
	r.mu.RLock()
	m, ok := r.modules[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, name)
	}
	return m, nil
}

// Names returns the registered module names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
