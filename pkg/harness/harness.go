// Package harness holds the framework state of a single test: the queue of
// modules to load, and the injector created from it on first use.
package harness

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/easytest/internal/logging"
	"github.com/aretw0/easytest/pkg/compile"
	"github.com/aretw0/easytest/pkg/dom"
	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/injector"
	"github.com/aretw0/easytest/pkg/ports"
	"github.com/aretw0/easytest/pkg/registry"
)

const (
	// CoreModule is loaded before every queued module.
	CoreModule = "ng"
	// CompileName is the service holding the *compile.Compiler.
	CompileName = "$compile"
)

var _ ports.Framework = (*Harness)(nil)

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger handed to the injector and compiler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

type queued struct {
	name    string
	recipes []registry.Recipe
}

// Harness implements ports.Framework over a registry. Not safe for
// concurrent use.
type Harness struct {
	reg    *registry.Registry
	queue  []queued
	inj    *injector.Injector
	logger *slog.Logger
}

// New returns a Harness reading modules from reg, or from registry.Default
// when reg is nil.
func New(reg *registry.Registry, opts ...Option) *Harness {
	if reg == nil {
		reg = registry.Default
	}
	h := &Harness{
		reg:    reg,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// LoadModules queues modules by name. Names are resolved when the injector
// is created.
func (h *Harness) LoadModules(names ...string) error {
	if h.inj != nil {
		return fmt.Errorf("load %s: %w", strings.Join(names, ", "), domain.ErrInjectorCreated)
	}
	for _, name := range names {
		h.queue = append(h.queue, queued{name: name})
	}
	return nil
}

// MockModule queues a module followed by recipes overriding its services.
func (h *Harness) MockModule(name string, recipes ...registry.Recipe) error {
	if h.inj != nil {
		return fmt.Errorf("mock %s: %w", name, domain.ErrInjectorCreated)
	}
	h.queue = append(h.queue, queued{name: name, recipes: recipes})
	return nil
}

// Injector returns the injector, creating it from the core module and the
// queue on first call.
func (h *Harness) Injector() (*injector.Injector, error) {
	if h.inj != nil {
		return h.inj, nil
	}

	modules := []*registry.Module{h.core()}
	for i, q := range h.queue {
		m, err := h.reg.Lookup(q.name)
		if err != nil {
			return nil, fmt.Errorf("create injector: %w", err)
		}
		modules = append(modules, m)

		if len(q.recipes) > 0 {
			mock := registry.NewModule(fmt.Sprintf("%s.mock%d", q.name, i))
			for _, r := range q.recipes {
				mock.Add(r)
			}
			modules = append(modules, mock)
		}
	}

	inj, err := injector.New(h.reg, modules, injector.WithLogger(h.logger))
	if err != nil {
		return nil, fmt.Errorf("create injector: %w", err)
	}
	h.logger.Debug("injector created", "modules", inj.Modules())
	h.inj = inj
	return inj, nil
}

func (h *Harness) core() *registry.Module {
	return registry.NewModule(CoreModule).
		Factory(CompileName, func(r registry.Resolver) (any, error) {
			raw, err := r.Get(injector.InjectorName)
			if err != nil {
				return nil, err
			}
			inj, ok := raw.(*injector.Injector)
			if !ok {
				return nil, fmt.Errorf("%s is %T", injector.InjectorName, raw)
			}
			return compile.New(inj, compile.WithLogger(h.logger)), nil
		})
}

// Service resolves one service.
func (h *Harness) Service(name string) (any, error) {
	inj, err := h.Injector()
	if err != nil {
		return nil, err
	}
	return inj.Get(name)
}

// Services resolves several services into a map keyed by name.
func (h *Harness) Services(names ...string) (map[string]any, error) {
	out := make(map[string]any, len(names))
	for _, name := range names {
		v, err := h.Service(name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// NewContext instantiates controller on a new child of the root scope.
func (h *Harness) NewContext(controller string) (*domain.Context, error) {
	inj, err := h.Injector()
	if err != nil {
		return nil, err
	}
	s := inj.RootScope().New()
	ctrl, err := inj.Controller(controller, map[string]any{injector.ScopeLocal: s})
	if err != nil {
		return nil, err
	}
	return &domain.Context{Scope: s, Controller: ctrl}, nil
}

// BoundController sets bindings on the controller instance, in key order,
// before running its constructor.
func (h *Harness) BoundController(name string, bindings map[string]any) (any, error) {
	inj, err := h.Injector()
	if err != nil {
		return nil, err
	}
	p, err := inj.Prepare(name, map[string]any{injector.ScopeLocal: inj.RootScope().New()})
	if err != nil {
		return nil, err
	}
	for _, k := range slices.Sorted(maps.Keys(bindings)) {
		p.Instance.Set(k, bindings[k])
	}
	return p.Instantiate()
}

// Compile parses markup, appends it to parent when given, links it to a new
// child of the root scope extended with values, and digests.
func (h *Harness) Compile(markup string, values map[string]any, parent *dom.Element) (*dom.Element, error) {
	raw, err := h.Service(CompileName)
	if err != nil {
		return nil, err
	}
	compiler, ok := raw.(*compile.Compiler)
	if !ok {
		return nil, fmt.Errorf("%s is %T", CompileName, raw)
	}

	el, err := dom.Parse(markup)
	if err != nil {
		return nil, err
	}
	if parent != nil {
		parent.Append(el)
	}

	link, err := compiler.Compile(el)
	if err != nil {
		return nil, err
	}

	s := h.inj.RootScope().New()
	s.Extend(values)
	if err := link(s); err != nil {
		return nil, err
	}
	if err := s.Digest(); err != nil {
		return nil, err
	}
	return el, nil
}

// Reset drops the injector and the module queue.
func (h *Harness) Reset() {
	h.inj = nil
	h.queue = nil
}
