package easytest

import (
	"log/slog"
	"testing"

	"github.com/aretw0/easytest/internal/logging"
	"github.com/aretw0/easytest/pkg/dom"
	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/harness"
	"github.com/aretw0/easytest/pkg/ports"
	"github.com/aretw0/easytest/pkg/registry"
)

// EasyTest is the helper surface for a single test.
type EasyTest struct {
	t      testing.TB
	fw     ports.Framework
	reg    *registry.Registry
	logger *slog.Logger
}

// Option defines a functional option for configuring an EasyTest.
type Option func(*EasyTest)

// WithRegistry reads modules from reg instead of registry.Default.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *EasyTest) {
		e.reg = reg
	}
}

// WithFramework replaces the default harness. WithRegistry is ignored.
func WithFramework(fw ports.Framework) Option {
	return func(e *EasyTest) {
		e.fw = fw
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *EasyTest) {
		e.logger = logger
	}
}

// WithLogLevel logs through t.Log at level and above.
func WithLogLevel(level slog.Level) Option {
	return func(e *EasyTest) {
		e.logger = logging.NewTB(e.t, level)
	}
}

// New returns the helpers for t. Framework state is reset when t ends.
func New(t testing.TB, opts ...Option) *EasyTest {
	e := &EasyTest{
		t:      t,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.fw == nil {
		e.fw = harness.New(e.reg, harness.WithLogger(e.logger))
	}
	t.Cleanup(e.fw.Reset)
	return e
}

// Framework returns the framework the helpers drive.
func (e *EasyTest) Framework() ports.Framework { return e.fw }

// Injectify resolves several services at once, keyed by name.
func (e *EasyTest) Injectify(names ...string) (map[string]any, error) {
	out := make(map[string]any, len(names))
	for _, name := range names {
		v, err := e.fw.Service(name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// GetService resolves one service.
func (e *EasyTest) GetService(name string) (any, error) {
	return e.fw.Service(name)
}

// CreateTestContext instantiates controller on a new scope.
func (e *EasyTest) CreateTestContext(controller string) (*domain.Context, error) {
	return e.fw.NewContext(controller)
}

// GetController returns the controller of a fresh test context.
func (e *EasyTest) GetController(name string) (any, error) {
	ctx, err := e.fw.NewContext(name)
	if err != nil {
		return nil, err
	}
	return ctx.Controller, nil
}

// GetBoundController instantiates name with bindings already set on the
// controller instance when its constructor runs.
func (e *EasyTest) GetBoundController(name string, bindings map[string]any) (any, error) {
	return e.fw.BoundController(name, bindings)
}

// CompileOption configures CompileDirective.
type CompileOption func(*compileOptions)

type compileOptions struct {
	values map[string]any
	parent *dom.Element
}

// WithScope extends the new scope with values.
func WithScope(values map[string]any) CompileOption {
	return func(o *compileOptions) {
		o.values = values
	}
}

// WithParent appends the compiled element to parent.
func WithParent(parent *dom.Element) CompileOption {
	return func(o *compileOptions) {
		o.parent = parent
	}
}

// CompileDirective compiles markup against a new scope and digests it.
func (e *EasyTest) CompileDirective(markup string, opts ...CompileOption) (*dom.Element, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}
	return e.fw.Compile(markup, o.values, o.parent)
}
