package registry

import (
	"maps"
	"sync"
)

// Module groups service recipes, controllers and directives under a name.
// Modules may require other modules; the injector loads requirements first.
type Module struct {
	mu          sync.RWMutex
	name        string
	requires    []string
	recipes     []Recipe
	controllers map[string]ControllerFunc
	directives  map[string]Directive
}

// NewModule creates a module without registering it anywhere.
func NewModule(name string, requires ...string) *Module {
	return &Module{
		name:        name,
		requires:    append([]string(nil), requires...),
		controllers: make(map[string]ControllerFunc),
		directives:  make(map[string]Directive),
	}
}

func (m *Module) Name() string { return m.name }

// Requires returns the names of the modules this one depends on.
func (m *Module) Requires() []string {
	return append([]string(nil), m.requires...)
}

// Add appends a recipe. Later recipes for the same name win.
func (m *Module) Add(r Recipe) *Module {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipes = append(m.recipes, r)
	return m
}

// Factory registers a factory function.
func (m *Module) Factory(name string, fn FactoryFunc) *Module {
	return m.Add(Recipe{Name: name, Kind: KindFactory, Factory: fn})
}

// Service registers a service constructor.
func (m *Module) Service(name string, fn FactoryFunc) *Module {
	return m.Add(Recipe{Name: name, Kind: KindService, Factory: fn})
}

// Provider registers a provider.
func (m *Module) Provider(name string, p Provider) *Module {
	return m.Add(Recipe{Name: name, Kind: KindProvider, Provider: p})
}

// Value registers a ready-made value.
func (m *Module) Value(name string, v any) *Module {
	return m.Add(Recipe{Name: name, Kind: KindValue, Value: v})
}

// Constant registers a constant.
func (m *Module) Constant(name string, v any) *Module {
	return m.Add(Recipe{Name: name, Kind: KindConstant, Value: v})
}

// Controller registers a controller constructor.
func (m *Module) Controller(name string, fn ControllerFunc) *Module {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.controllers[name] = fn
	return m
}

// Directive registers a directive under its camelCase name.
func (m *Module) Directive(name string, d Directive) *Module {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.directives[Normalize(name)] = d
	return m
}

// Recipes returns the recipes in registration order.
func (m *Module) Recipes() []Recipe {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Recipe(nil), m.recipes...)
}

// Controllers returns a copy of the controller table.
func (m *Module) Controllers() map[string]ControllerFunc {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.controllers)
}

// Directives returns a copy of the directive table.
func (m *Module) Directives() map[string]Directive {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.directives)
}
