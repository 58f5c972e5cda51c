package ports

import (
	"testing"

	"github.com/aretw0/easytest/pkg/dom"
	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/registry"
	"github.com/aretw0/easytest/pkg/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunFrameworkContract runs a suite of tests to verify that a Framework
// implementation adheres to the interface contract. newFramework must
// return a fresh Framework reading modules from reg.
func RunFrameworkContract(t *testing.T, newFramework func(t *testing.T, reg *registry.Registry) Framework) {
	reg := registry.New()
	reg.Module("contract").
		Value("greeting", "hello").
		Factory("counter", func(registry.Resolver) (any, error) {
			return scope.ObjectFrom(map[string]any{"n": 1}), nil
		}).
		Controller("ContractController", func(c *registry.ControllerContext) (any, error) {
			c.Scope.Set("ready", true)
			c.This.Set("label", "contract")
			return nil, nil
		}).
		Directive("contractBox", registry.Directive{Template: "<i>boxed</i>"})

	t.Run("Service", func(t *testing.T) {
		fw := newFramework(t, reg)
		require.NoError(t, fw.LoadModules("contract"))

		v, err := fw.Service("greeting")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)

		first, err := fw.Service("counter")
		require.NoError(t, err)
		second, err := fw.Service("counter")
		require.NoError(t, err)
		assert.Same(t, first, second, "services are created once")
	})

	t.Run("Mock Overrides", func(t *testing.T) {
		fw := newFramework(t, reg)
		require.NoError(t, fw.MockModule("contract", registry.Recipe{
			Name: "greeting", Kind: registry.KindValue, Value: "mocked",
		}))

		v, err := fw.Service("greeting")
		require.NoError(t, err)
		assert.Equal(t, "mocked", v)
	})

	t.Run("Queue Closes", func(t *testing.T) {
		fw := newFramework(t, reg)
		require.NoError(t, fw.LoadModules("contract"))
		_, err := fw.Service("greeting")
		require.NoError(t, err)

		assert.ErrorIs(t, fw.LoadModules("contract"), domain.ErrInjectorCreated)

		fw.Reset()
		assert.NoError(t, fw.LoadModules("contract"), "Reset reopens the queue")
	})

	t.Run("Unknown Module", func(t *testing.T) {
		fw := newFramework(t, reg)
		require.NoError(t, fw.LoadModules("missing"))
		_, err := fw.Service("greeting")
		assert.ErrorIs(t, err, domain.ErrModuleNotFound)
	})

	t.Run("Context", func(t *testing.T) {
		fw := newFramework(t, reg)
		require.NoError(t, fw.LoadModules("contract"))

		ctx, err := fw.NewContext("ContractController")
		require.NoError(t, err)
		ready, ok := ctx.Scope.Get("ready")
		require.True(t, ok)
		assert.Equal(t, true, ready)
		assert.NotNil(t, ctx.Scope.Parent(), "context scope is a child scope")

		_, err = fw.NewContext("Missing")
		assert.ErrorIs(t, err, domain.ErrControllerNotFound)
	})

	t.Run("Bound Controller", func(t *testing.T) {
		fw := newFramework(t, reg)
		require.NoError(t, fw.LoadModules("contract"))

		ctrl, err := fw.BoundController("ContractController", map[string]any{"value": 1})
		require.NoError(t, err)
		obj, ok := ctrl.(*scope.Object)
		require.True(t, ok)
		v, _ := obj.Get("value")
		assert.Equal(t, 1, v)
	})

	t.Run("Compile", func(t *testing.T) {
		fw := newFramework(t, reg)
		require.NoError(t, fw.LoadModules("contract"))

		parent, err := dom.Parse("<section></section>")
		require.NoError(t, err)

		el, err := fw.Compile("<p contract-box></p>", nil, parent)
		require.NoError(t, err)
		assert.Equal(t, "boxed", el.Text())
		require.Len(t, parent.Children(), 1)
		assert.Equal(t, "boxed", parent.Children()[0].Text())

		el, err = fw.Compile("<b>{{ n }}</b>", map[string]any{"n": 6}, nil)
		require.NoError(t, err)
		assert.Equal(t, "6", el.Text())
	})
}
