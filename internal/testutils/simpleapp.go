// Package testutils provides the module fixtures shared by package tests.
package testutils

import (
	"github.com/aretw0/easytest/pkg/registry"
	"github.com/aretw0/easytest/pkg/scope"
)

// ScopeProperties are set by TestController on its scope.
var ScopeProperties = []string{"one", "two", "test", "something", "somethingElse"}

// SimpleApp returns a fresh registry holding the simpleapp module family:
//
//   - simpleapp: TestService1, TestController, TestBoundController and
//     the testDirective directive
//   - simpleapp2: TestService2
//   - simpleapp3: TestService3
//   - simpleapp4: simpleCtrl and the $baz provider it depends on
func SimpleApp() *registry.Registry {
	reg := registry.New()

	reg.Module("simpleapp").
		Factory("TestService1", func(registry.Resolver) (any, error) {
			return scope.ObjectFrom(map[string]any{
				"one":       func() string { return "one" },
				"two":       "two",
				"test":      false,
				"something": scope.NewObject(),
			}), nil
		}).
		Controller("TestController", func(c *registry.ControllerContext) (any, error) {
			if _, err := c.Get("TestService1"); err != nil {
				return nil, err
			}
			c.Scope.Set("one", func() {})
			c.Scope.Set("two", "two")
			c.Scope.Set("test", false)
			c.Scope.Set("something", scope.NewObject())
			c.Scope.Set("somethingElse", scope.NewObject())
			c.This.Set("testFunction", func() {})
			return nil, nil
		}).
		Controller("TestBoundController", func(c *registry.ControllerContext) (any, error) {
			if _, err := c.Get("TestService1"); err != nil {
				return nil, err
			}
			c.This.Set("one", func() {})
			c.This.Set("two", "two")
			c.This.Set("test", false)
			c.This.Set("something", scope.NewObject())
			c.This.Set("somethingElse", scope.NewObject())
			c.This.Set("testFunction", func() {})
			return nil, nil
		}).
		Directive("testDirective", registry.Directive{
			Template:   "<div><p>Testa</p></div>",
			Controller: "TestController",
		})

	reg.Module("simpleapp2").
		Factory("TestService2", func(registry.Resolver) (any, error) {
			return scope.ObjectFrom(map[string]any{"testPropHere": 1}), nil
		})

	reg.Module("simpleapp3").
		Factory("TestService3", func(registry.Resolver) (any, error) {
			return scope.ObjectFrom(map[string]any{"anotherPropHere": 1}), nil
		})

	reg.Module("simpleapp4").
		Controller("simpleCtrl", func(c *registry.ControllerContext) (any, error) {
			baz, err := c.Get("$baz")
			if err != nil {
				return nil, err
			}
			c.Scope.Set("baz", func() any { return baz })
			return nil, nil
		}).
		Provider("$baz", registry.ProviderFunc(func(registry.Resolver) (any, error) {
			return "arbitrary result that should be mocked", nil
		}))

	return reg
}
