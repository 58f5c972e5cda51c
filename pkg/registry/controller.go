package registry

import "github.com/aretw0/easytest/pkg/scope"

// ControllerContext is what a controller constructor receives.
type ControllerContext struct {
	// Scope is the scope passed as the "$scope" local, if any.
	Scope *scope.Scope
	// This is the controller's own property bag. Bindings are already on it
	// when the constructor runs.
	This *scope.Object
	// Locals override injector lookups for this instantiation.
	Locals   map[string]any
	Resolver Resolver
}

// Get resolves a dependency, preferring locals.
func (c *ControllerContext) Get(name string) (any, error) {
	if v, ok := c.Locals[name]; ok {
		return v, nil
	}
	return c.Resolver.Get(name)
}

// ControllerFunc constructs a controller. Returning a nil controller makes
// c.This the controller.
type ControllerFunc func(c *ControllerContext) (any, error)
