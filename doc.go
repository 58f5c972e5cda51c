/*
Package easytest removes the boilerplate from unit tests of applications built
on modules, services, controllers and directives.

Each test creates its own EasyTest, which owns the framework state for that
test: the modules to load, the injector created from them, and the scopes and
elements built along the way. State is dropped when the test ends.

# Usage

	func TestController(t *testing.T) {
		et := easytest.New(t)
		require.NoError(t, et.MockModule("simpleapp", nil))

		spec := looks.NewSpec().
			Expect(looks.Function, "one").
			Expect(looks.String, "two").
			Expect(looks.Boolean, "test").
			Expect(looks.Object, "something somethingElse")

		require.NoError(t, et.TestScope("TestController", spec))
	}

Specs can also come from YAML or JSON through looks.ParseSpec, which keeps
the order of the document:

	spec, err := looks.ParseSpec([]byte(`{"function": "one", "string": ["two"]}`))

# Mocks

MockModule accepts the mock descriptors of domain.Mock, plain maps with the
same keys, or a map of service names to the instances to return. Mocks are
registered after the module itself, so they replace its services.
*/
package easytest
