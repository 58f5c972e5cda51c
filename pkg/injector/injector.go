package injector

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/aretw0/easytest/internal/logging"
	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/registry"
	"github.com/aretw0/easytest/pkg/scope"
)

// Names of the services every injector provides.
const (
	InjectorName   = "$injector"
	RootScopeName  = "$rootScope"
	ControllerName = "$controller"
	ScopeLocal     = "$scope"
)

// Option configures an Injector.
type Option func(*Injector)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Injector) {
		i.logger = logger
	}
}

// Injector resolves services by name and instantiates controllers.
// Instances are created once and cached. Not safe for concurrent use.
type Injector struct {
	recipes     map[string]registry.Recipe
	controllers map[string]registry.ControllerFunc
	directives  map[string]registry.Directive
	instances   map[string]any
	resolving   []string
	loaded      []string
	root        *scope.Scope
	logger      *slog.Logger
}

// New loads modules (and, depth-first, the modules they require from reg)
// and returns an injector over their recipes. A module is loaded once even
// if several modules require it; recipes loaded later override earlier ones.
func New(reg *registry.Registry, modules []*registry.Module, opts ...Option) (*Injector, error) {
	i := &Injector{
		recipes:     make(map[string]registry.Recipe),
		controllers: make(map[string]registry.ControllerFunc),
		directives:  make(map[string]registry.Directive),
		instances:   make(map[string]any),
		root:        scope.NewRoot(),
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}

	i.instances[InjectorName] = i
	i.instances[RootScopeName] = i.root
	i.instances[ControllerName] = i

	seen := make(map[*registry.Module]bool)
	for _, m := range modules {
		if err := i.load(reg, m, seen); err != nil {
			return nil, err
		}
	}
	return i, nil
}

func (i *Injector) load(reg *registry.Registry, m *registry.Module, seen map[*registry.Module]bool) error {
	if seen[m] {
		return nil
	}
	seen[m] = true

	for _, name := range m.Requires() {
		if reg == nil {
			return fmt.Errorf("module %s: %w: %s", m.Name(), domain.ErrModuleNotFound, name)
		}
		dep, err := reg.Lookup(name)
		if err != nil {
			return fmt.Errorf("module %s: %w", m.Name(), err)
		}
		if err := i.load(reg, dep, seen); err != nil {
			return err
		}
	}

	recipes := m.Recipes()
	for _, r := range recipes {
		i.recipes[r.Name] = r
	}
	maps.Copy(i.controllers, m.Controllers())
	maps.Copy(i.directives, m.Directives())
	i.loaded = append(i.loaded, m.Name())

	i.logger.Debug("module loaded", "module", m.Name(), "recipes", len(recipes))
	return nil
}

// Modules returns the names of the loaded modules in load order.
func (i *Injector) Modules() []string {
	return slices.Clone(i.loaded)
}

// RootScope returns the injector's root scope.
func (i *Injector) RootScope() *scope.Scope {
	return i.root
}

// Has reports whether name can be resolved.
func (i *Injector) Has(name string) bool {
	if _, ok := i.instances[name]; ok {
		return true
	}
	_, ok := i.recipes[name]
	return ok
}

// Names returns every resolvable service name, sorted.
func (i *Injector) Names() []string {
	set := make(map[string]struct{}, len(i.recipes)+len(i.instances))
	for name := range i.recipes {
		set[name] = struct{}{}
	}
	for name := range i.instances {
		set[name] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get resolves the service called name.
func (i *Injector) Get(name string) (any, error) {
	if v, ok := i.instances[name]; ok {
		return v, nil
	}

	r, ok := i.recipes[name]
	if !ok {
		return nil, &UnknownProviderError{Name: name, Path: i.requesters()}
	}

	if slices.Contains(i.resolving, name) {
		path := append([]string{name}, i.requesters()...)
		return nil, fmt.Errorf("%w: %s", domain.ErrCircularDependency, strings.Join(path, " <- "))
	}

	i.resolving = append(i.resolving, name)
	defer func() { i.resolving = i.resolving[:len(i.resolving)-1] }()

	v, err := i.instantiate(r)
	if err != nil {
		return nil, err
	}

	i.instances[name] = v
	i.logger.Debug("service instantiated", "service", name, "kind", r.Kind)
	return v, nil
}

// requesters returns the services currently being resolved, closest first.
func (i *Injector) requesters() []string {
	path := slices.Clone(i.resolving)
	slices.Reverse(path)
	return path
}

func (i *Injector) instantiate(r registry.Recipe) (any, error) {
	switch r.Kind {
	case registry.KindValue, registry.KindConstant:
		return r.Value, nil
	case registry.KindProvider:
		if r.Provider == nil {
			return nil, fmt.Errorf("provider %s: no provider set", r.Name)
		}
		return r.Provider.Get(i)
	default:
		if r.Factory == nil {
			return nil, fmt.Errorf("%s %s: no factory set", r.Kind, r.Name)
		}
		return r.Factory(i)
	}
}

// Directive returns the directive registered under its camelCase name.
func (i *Injector) Directive(name string) (registry.Directive, bool) {
	d, ok := i.directives[name]
	return d, ok
}
