package ports

import (
	"github.com/aretw0/easytest/pkg/dom"
	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/registry"
)

// ModuleMocker queues modules for the next injector.
type ModuleMocker interface {
	// LoadModules queues registered modules by name.
	LoadModules(names ...string) error

	// MockModule queues a registered module followed by recipes that
	// override its services. Returns domain.ErrInjectorCreated once a
	// service has been resolved.
	MockModule(name string, recipes ...registry.Recipe) error
}

// ServiceResolver resolves services, creating the injector on first use.
type ServiceResolver interface {
	Service(name string) (any, error)
}

// ControllerFactory instantiates controllers.
type ControllerFactory interface {
	// NewContext instantiates a controller on a new child of the root scope.
	NewContext(controller string) (*domain.Context, error)

	// BoundController copies bindings onto the controller instance before
	// its constructor runs.
	BoundController(name string, bindings map[string]any) (any, error)
}

// DirectiveCompiler compiles markup.
type DirectiveCompiler interface {
	// Compile links markup to a new child scope extended with values,
	// appends it to parent when parent is not nil, and digests.
	Compile(markup string, values map[string]any, parent *dom.Element) (*dom.Element, error)
}

// Framework is everything the helpers need.
type Framework interface {
	ModuleMocker
	ServiceResolver
	ControllerFactory
	DirectiveCompiler

	// Reset drops the injector and the module queue.
	Reset()
}
