package domain

import "github.com/aretw0/easytest/pkg/scope"

// Context is a controller instantiated against a new child of the root scope.
type Context struct {
	Scope      *scope.Scope
	Controller any
}
