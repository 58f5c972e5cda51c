package easytest

import (
	"fmt"

	"github.com/aretw0/easytest/pkg/dom"
	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/looks"
	"github.com/aretw0/easytest/pkg/scope"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// LooksLike reports the first property of target that does not match spec.
func (e *EasyTest) LooksLike(target any, spec *looks.Spec) error {
	return looks.Like(target, spec)
}

// TestScope validates the scope of a test context. ctx is a
// *domain.Context, a *scope.Scope, or the name of a controller to create a
// context for.
func (e *EasyTest) TestScope(ctx any, spec *looks.Spec) error {
	switch v := ctx.(type) {
	case string:
		c, err := e.CreateTestContext(v)
		if err != nil {
			return err
		}
		return looks.Like(c.Scope, spec)
	case *domain.Context:
		if v == nil {
			return fmt.Errorf("test scope: %w: nil %T", looks.ErrInvalidTarget, ctx)
		}
		return looks.Like(v.Scope, spec)
	case *scope.Scope:
		return looks.Like(v, spec)
	}
	return fmt.Errorf("test scope: %w: %T", looks.ErrInvalidTarget, ctx)
}

// TestController validates a controller, or the controller registered
// under a name.
func (e *EasyTest) TestController(ctrl any, spec *looks.Spec) error {
	if name, ok := ctrl.(string); ok {
		c, err := e.GetController(name)
		if err != nil {
			return err
		}
		ctrl = c
	}
	return looks.Like(ctrl, spec)
}

// TestService validates a service, or the service registered under a name.
func (e *EasyTest) TestService(svc any, spec *looks.Spec) error {
	if name, ok := svc.(string); ok {
		s, err := e.GetService(name)
		if err != nil {
			return err
		}
		svc = s
	}
	return looks.Like(svc, spec)
}

// GetBoundScope returns the "ctrl" published on the first child scope of
// the element's scope, as set by directives with ControllerAs "ctrl".
func (e *EasyTest) GetBoundScope(el *dom.Element) (any, bool) {
	s := el.Scope()
	if s == nil {
		return nil, false
	}
	children := s.Children()
	if len(children) == 0 {
		return nil, false
	}
	return children[0].Get("ctrl")
}

// HasAttr reports whether el, a *dom.Element or *html.Node, has attr, and
// when val is given, whether its value equals val[0].
func (e *EasyTest) HasAttr(el any, attr string, val ...string) bool {
	return HasAttr(el, attr, val...)
}

// HasAttr is EasyTest.HasAttr without a test.
func HasAttr(el any, attr string, val ...string) bool {
	switch n := el.(type) {
	case *dom.Element:
		return n != nil && n.HasAttr(attr, val...)
	case *html.Node:
		return dom.HasAttr(n, attr, val...)
	}
	return false
}

// RequireLooksLike fails t immediately when target does not match spec.
func RequireLooksLike(t require.TestingT, target any, spec *looks.Spec, msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.NoError(t, looks.Like(target, spec), msgAndArgs...)
}
