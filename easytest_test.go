package easytest_test

import (
	"log/slog"
	"testing"

	"github.com/aretw0/easytest"
	"github.com/aretw0/easytest/internal/testutils"
	"github.com/aretw0/easytest/pkg/dom"
	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/injector"
	"github.com/aretw0/easytest/pkg/looks"
	"github.com/aretw0/easytest/pkg/registry"
	"github.com/aretw0/easytest/pkg/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEasyTest(t *testing.T, opts ...easytest.Option) *easytest.EasyTest {
	t.Helper()
	opts = append([]easytest.Option{
		easytest.WithRegistry(testutils.SimpleApp()),
		easytest.WithLogLevel(slog.LevelDebug),
	}, opts...)
	et := easytest.New(t, opts...)
	require.NoError(t, et.MockModule("simpleapp", nil))
	return et
}

func scopeSpec() *looks.Spec {
	return looks.NewSpec().
		Expect(looks.Function, "one").
		Expect(looks.String, "two").
		Expect(looks.Boolean, "test").
		Expect(looks.Object, "something somethingElse")
}

func serviceSpec() *looks.Spec {
	return looks.NewSpec().
		Expect(looks.Function, "one").
		Expect(looks.String, "two").
		Expect(looks.Boolean, "test").
		Expect(looks.Object, "something")
}

func TestMockModule(t *testing.T) {
	t.Run("Loads Module", func(t *testing.T) {
		et := newEasyTest(t)
		_, err := et.GetService("TestService1")
		assert.NoError(t, err)
	})

	t.Run("Provider", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModule("simpleapp4", []domain.Mock{{
			Name: "$baz",
			Provider: registry.ProviderFunc(func(registry.Resolver) (any, error) {
				return 4, nil
			}),
		}}))

		ctx, err := et.CreateTestContext("simpleCtrl")
		require.NoError(t, err)
		baz, ok := ctx.Scope.Get("baz")
		require.True(t, ok)
		assert.Equal(t, 4, baz.(func() any)())
	})

	t.Run("Constant", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModule("simpleapp", []domain.Mock{{Name: "foo", Constant: []int{666, 1337}}}))

		foo, err := et.GetService("foo")
		require.NoError(t, err)
		assert.Equal(t, []int{666, 1337}, foo)
	})

	t.Run("Value From Map", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModule("simpleapp", []map[string]any{{"name": "bar", "value": 5}}))

		bar, err := et.GetService("bar")
		require.NoError(t, err)
		assert.Equal(t, 5, bar)
	})

	t.Run("Factory", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModule("simpleapp", []domain.Mock{{
			Name:    "FakeFactory",
			Factory: map[string]any{"testFunction": func() {}},
		}}))

		assert.NoError(t, et.TestService("FakeFactory", looks.NewSpec().Expect(looks.Function, "testFunction")))
	})

	t.Run("Factory As Hash", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModule("simpleapp", map[string]any{
			"FakeFactory": map[string]any{"testFunction": func() {}},
		}))

		assert.NoError(t, et.TestService("FakeFactory", looks.NewSpec().Expect(looks.Function, "testFunction")))
	})

	t.Run("Service", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModule("simpleapp", []any{
			map[string]any{"name": "FakeService", "service": map[string]any{"testFunction": func() {}}},
		}))

		assert.NoError(t, et.TestService("FakeService", looks.NewSpec().Expect(looks.Function, "testFunction")))
	})

	t.Run("Replaces Module Service", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModule("simpleapp", map[string]any{"TestService1": "fake"}))

		svc, err := et.GetService("TestService1")
		require.NoError(t, err)
		assert.Equal(t, "fake", svc)
	})

	t.Run("Invalid", func(t *testing.T) {
		et := newEasyTest(t)
		assert.ErrorIs(t, et.MockModule("simpleapp", 42), domain.ErrInvalidMock)
		assert.ErrorIs(t, et.MockModule("simpleapp", []map[string]any{{"name": "x", "fatcory": 1}}), domain.ErrInvalidMock)
		assert.ErrorIs(t, et.MockModule("simpleapp", []domain.Mock{{Value: 1}}), domain.ErrInvalidMock)
		assert.ErrorIs(t, et.MockModule("simpleapp", []domain.Mock{{Name: "p", Provider: 1}}), domain.ErrInvalidMock)
	})

	t.Run("After Injector Created", func(t *testing.T) {
		et := newEasyTest(t)
		_, err := et.GetService("TestService1")
		require.NoError(t, err)

		assert.ErrorIs(t, et.MockModule("simpleapp2", nil), domain.ErrInjectorCreated)
	})

	t.Run("Unknown Module", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModule("nope", nil))

		_, err := et.GetService("TestService1")
		assert.ErrorIs(t, err, domain.ErrModuleNotFound)
	})
}

func TestMockModules(t *testing.T) {
	hasProp := func(name string) *looks.Spec { return looks.NewSpec().Expect(looks.Number, name) }

	t.Run("One String", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModules("simpleapp2 simpleapp3"))

		assert.NoError(t, et.TestService("TestService2", hasProp("testPropHere")))
		assert.NoError(t, et.TestService("TestService3", hasProp("anotherPropHere")))
	})

	t.Run("Several Strings", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModules("simpleapp2", "simpleapp3"))

		assert.NoError(t, et.TestService("TestService2", hasProp("testPropHere")))
		assert.NoError(t, et.TestService("TestService3", hasProp("anotherPropHere")))
	})

	t.Run("Fake Values", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModules("simpleapp2", map[string]any{
			"name": "simpleapp3",
			"values": []map[string]any{{
				"name":    "TestService3",
				"factory": map[string]any{"fakePropHere": 1},
			}},
		}))

		assert.NoError(t, et.TestService("TestService2", hasProp("testPropHere")))
		assert.ErrorIs(t, et.TestService("TestService3", hasProp("anotherPropHere")), looks.ErrMissingProperty)
		assert.NoError(t, et.TestService("TestService3", hasProp("fakePropHere")))
	})

	t.Run("Module Mock", func(t *testing.T) {
		et := newEasyTest(t)
		require.NoError(t, et.MockModules(domain.ModuleMock{
			Name:   "simpleapp3",
			Values: []domain.Mock{{Name: "TestService3", Value: "swapped"}},
		}))

		svc, err := et.GetService("TestService3")
		require.NoError(t, err)
		assert.Equal(t, "swapped", svc)
	})

	t.Run("Invalid", func(t *testing.T) {
		et := newEasyTest(t)
		assert.ErrorIs(t, et.MockModules(3), domain.ErrInvalidMock)
		assert.ErrorIs(t, et.MockModules(map[string]any{"name": "x", "extra": true}), domain.ErrInvalidMock)
	})
}

func TestInjectify(t *testing.T) {
	et := newEasyTest(t)
	names := []string{"TestService1", "$injector", "$rootScope"}

	services, err := et.Injectify(names...)
	require.NoError(t, err)
	for _, name := range names {
		assert.Contains(t, services, name)
	}

	_, err = et.Injectify("TestService1", "Missing")
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestCreateTestContext(t *testing.T) {
	et := newEasyTest(t)
	ctx, err := et.CreateTestContext("TestController")
	require.NoError(t, err)

	require.NotNil(t, ctx.Controller)
	require.NotNil(t, ctx.Scope)
	assert.NoError(t, looks.Like(ctx.Controller, looks.NewSpec().Expect(looks.Function, "testFunction")))
	for _, prop := range testutils.ScopeProperties {
		_, ok := looks.Lookup(ctx.Scope, prop)
		assert.True(t, ok, prop)
	}

	_, err = et.CreateTestContext("Nope")
	assert.ErrorIs(t, err, domain.ErrControllerNotFound)
}

func TestLooksLike(t *testing.T) {
	et := newEasyTest(t)
	ctx, err := et.CreateTestContext("TestController")
	require.NoError(t, err)

	t.Run("Matches", func(t *testing.T) {
		assert.NoError(t, et.LooksLike(ctx.Scope, scopeSpec()))
	})

	t.Run("Matches With Lists", func(t *testing.T) {
		spec := looks.NewSpec().
			ExpectNames(looks.Function, "one").
			ExpectNames(looks.String, "two").
			ExpectNames(looks.Boolean, "test").
			ExpectNames(looks.Object, "something", "somethingElse")
		assert.NoError(t, et.LooksLike(ctx.Scope, spec))
	})

	t.Run("Missing Property", func(t *testing.T) {
		spec := looks.NewSpec().
			Expect(looks.Function, "one four").
			Expect(looks.String, "two").
			Expect(looks.Boolean, "test").
			Expect(looks.Object, "something somethingElse")
		assert.EqualError(t, et.LooksLike(ctx.Scope, spec), "Expected object to have the property 'four'.")
	})

	t.Run("Wrong Type", func(t *testing.T) {
		spec := looks.NewSpec().
			Expect(looks.Boolean, "one").
			Expect(looks.String, "two").
			Expect(looks.Object, "something somethingElse")
		assert.EqualError(t, et.LooksLike(ctx.Scope, spec), "Expected property 'one' to be of type boolean.")
	})
}

func TestTestScope(t *testing.T) {
	et := newEasyTest(t)
	assert.NoError(t, et.TestScope("TestController", scopeSpec()))

	ctx, err := et.CreateTestContext("TestController")
	require.NoError(t, err)
	assert.NoError(t, et.TestScope(ctx, scopeSpec()))
	assert.NoError(t, et.TestScope(ctx.Scope, scopeSpec()))

	assert.ErrorIs(t, et.TestScope(42, scopeSpec()), looks.ErrInvalidTarget)

	var nilCtx *domain.Context
	require.NotPanics(t, func() {
		assert.ErrorIs(t, et.TestScope(nilCtx, scopeSpec()), looks.ErrInvalidTarget)
	})
}

func TestTestController(t *testing.T) {
	et := newEasyTest(t)
	spec := looks.NewSpec().Expect(looks.Function, "testFunction")

	assert.NoError(t, et.TestController("TestController", spec))

	ctrl, err := et.GetController("TestController")
	require.NoError(t, err)
	assert.NoError(t, et.TestController(ctrl, spec))

	wrong := looks.NewSpec().Expect(looks.String, "testFunction")
	assert.EqualError(t, et.TestController("TestController", wrong), "Expected property 'testFunction' to be of type string.")
	missing := looks.NewSpec().Expect(looks.Function, "nope")
	assert.EqualError(t, et.TestController(ctrl, missing), "Expected object to have the property 'nope'.")

	assert.ErrorIs(t, et.TestController("NoSuchController", spec), domain.ErrControllerNotFound)
}

func TestTestService(t *testing.T) {
	et := newEasyTest(t)
	assert.NoError(t, et.TestService("TestService1", serviceSpec()))

	svc, err := et.GetService("TestService1")
	require.NoError(t, err)
	assert.NoError(t, et.TestService(svc, serviceSpec()))
	easytest.RequireLooksLike(t, svc, serviceSpec())

	wrong := looks.NewSpec().Expect(looks.Number, "two")
	assert.EqualError(t, et.TestService("TestService1", wrong), "Expected property 'two' to be of type number.")

	err = et.TestService("NoSuchService", serviceSpec())
	var unknown *injector.UnknownProviderError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NoSuchService", unknown.Name)
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestCompileDirective(t *testing.T) {
	t.Run("Template", func(t *testing.T) {
		et := newEasyTest(t)
		el, err := et.CompileDirective(`<div test-directive></div>`)
		require.NoError(t, err)
		assert.Equal(t, "Testa", el.Text())
	})

	t.Run("Scope Values", func(t *testing.T) {
		et := newEasyTest(t)
		el, err := et.CompileDirective(`<b>{{something}}</b>`, easytest.WithScope(map[string]any{"something": 6}))
		require.NoError(t, err)
		assert.Equal(t, "6", el.Text())
	})

	t.Run("Parent", func(t *testing.T) {
		et := newEasyTest(t)
		parent, err := dom.Parse(`<div></div>`)
		require.NoError(t, err)

		_, err = et.CompileDirective(`<b>{{something}}</b>`,
			easytest.WithScope(map[string]any{"something": 6}),
			easytest.WithParent(parent))
		require.NoError(t, err)
		require.Len(t, parent.Children(), 1)
		assert.Equal(t, "6", parent.Children()[0].Text())
	})

	t.Run("Parent Without Scope", func(t *testing.T) {
		et := newEasyTest(t)
		parent, err := dom.Parse(`<div></div>`)
		require.NoError(t, err)

		_, err = et.CompileDirective(`<b test-directive></b>`, easytest.WithParent(parent))
		require.NoError(t, err)
		require.Len(t, parent.Children(), 1)
		assert.Equal(t, "Testa", parent.Children()[0].Text())
	})

	t.Run("No Element", func(t *testing.T) {
		et := newEasyTest(t)
		_, err := et.CompileDirective("plain text")
		assert.ErrorIs(t, err, dom.ErrNoElement)
	})
}

func TestGetBoundScope(t *testing.T) {
	reg := testutils.SimpleApp()
	reg.Module("boundapp", "simpleapp").
		Directive("boundDirective", registry.Directive{
			Template:         `<span>{{ ctrl.two }}</span>`,
			Controller:       "TestBoundController",
			ControllerAs:     "ctrl",
			BindToController: true,
			Bindings:         map[string]string{"value": "@"},
		})

	et := easytest.New(t, easytest.WithRegistry(reg))
	require.NoError(t, et.MockModules("boundapp"))

	el, err := et.CompileDirective(`<div bound-directive value="some value"></div>`)
	require.NoError(t, err)
	assert.Equal(t, "two", el.Text())

	ctrl, ok := et.GetBoundScope(el)
	require.True(t, ok)
	assert.NoError(t, looks.Like(ctrl, looks.NewSpec().Expect(looks.String, "two value")))

	plain, err := et.CompileDirective(`<p></p>`)
	require.NoError(t, err)
	_, ok = et.GetBoundScope(plain)
	assert.False(t, ok)
}

func TestHasAttr(t *testing.T) {
	et := newEasyTest(t)
	compile := func(markup string) *dom.Element {
		t.Helper()
		el, err := et.CompileDirective(markup)
		require.NoError(t, err)
		return el
	}

	assert.True(t, et.HasAttr(compile(`<div foo></div>`).Node(), "foo"))
	assert.False(t, et.HasAttr(compile(`<div></div>`).Node(), "foo"))
	assert.True(t, et.HasAttr(compile(`<div pi="3.14159"></div>`).Node(), "pi", "3.14159"))
	assert.False(t, et.HasAttr(compile(`<div pi="3.14159"></div>`).Node(), "pi", "2.71828"))
	assert.True(t, et.HasAttr(compile(`<div thing="stuff"></div>`), "thing", "stuff"))
	assert.False(t, easytest.HasAttr("not an element", "thing"))
}

func TestGetService(t *testing.T) {
	et := newEasyTest(t)
	root, err := et.GetService("$rootScope")
	require.NoError(t, err)

	services, err := et.Injectify("$rootScope")
	require.NoError(t, err)
	assert.Same(t, root, services["$rootScope"])
}

func TestGetController(t *testing.T) {
	et := newEasyTest(t)
	ctrl, err := et.GetController("TestController")
	require.NoError(t, err)
	assert.NoError(t, looks.Like(ctrl, looks.NewSpec().Expect(looks.Function, "testFunction")))
}

func TestGetBoundController(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		et := newEasyTest(t)
		ctrl, err := et.GetBoundController("TestBoundController", nil)
		require.NoError(t, err)

		two, _ := ctrl.(*scope.Object).Get("two")
		assert.Equal(t, "two", two)
	})

	t.Run("Extended", func(t *testing.T) {
		et := newEasyTest(t)
		ctrl, err := et.GetBoundController("TestBoundController", map[string]any{"value": "some value"})
		require.NoError(t, err)

		obj := ctrl.(*scope.Object)
		two, _ := obj.Get("two")
		value, _ := obj.Get("value")
		assert.Equal(t, "two", two)
		assert.Equal(t, "some value", value)
	})
}
