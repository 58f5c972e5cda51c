package injector

import (
	"fmt"
	"maps"

	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/registry"
	"github.com/aretw0/easytest/pkg/scope"
)

// Pending is a controller whose constructor has not run yet. Properties set
// on Instance before Instantiate are visible to the constructor.
type Pending struct {
	Name     string
	Instance *scope.Object

	ctx    *registry.ControllerContext
	fn     registry.ControllerFunc
	done   bool
	result any
}

// Instantiate runs the constructor once and returns the controller.
func (p *Pending) Instantiate() (any, error) {
	if p.done {
		return p.result, nil
	}

	ctrl, err := p.fn(p.ctx)
	if err != nil {
		return nil, fmt.Errorf("controller %s: %w", p.Name, err)
	}
	if ctrl == nil {
		ctrl = p.Instance
	}
	p.done, p.result = true, ctrl
	return ctrl, nil
}

// Prepare looks up a controller and binds its locals without running it.
// The "$scope" local, when present, must be a *scope.Scope.
func (i *Injector) Prepare(name string, locals map[string]any) (*Pending, error) {
	fn, ok := i.controllers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrControllerNotFound, name)
	}

	ctx := &registry.ControllerContext{
		This:     scope.NewObject(),
		Locals:   maps.Clone(locals),
		Resolver: i,
	}
	if raw, ok := locals[ScopeLocal]; ok {
		s, ok := raw.(*scope.Scope)
		if !ok {
			return nil, fmt.Errorf("controller %s: %s local is %T, not *scope.Scope", name, ScopeLocal, raw)
		}
		ctx.Scope = s
	}

	i.logger.Debug("controller prepared", "controller", name)
	return &Pending{Name: name, Instance: ctx.This, ctx: ctx, fn: fn}, nil
}

// Controller instantiates the named controller with locals.
func (i *Injector) Controller(name string, locals map[string]any) (any, error) {
	p, err := i.Prepare(name, locals)
	if err != nil {
		return nil, err
	}
	return p.Instantiate()
}
