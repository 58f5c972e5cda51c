/*
Package ports defines the interfaces between the test helpers and the
framework they drive.

The helpers never reach for global framework state. They talk to a Framework,
which the default harness implements, so tests can substitute their own.

# Key Interfaces

  - ModuleMocker: queues modules and mock recipes before the injector exists.
  - ServiceResolver: resolves services by name.
  - ControllerFactory: builds test contexts and controllers.
  - DirectiveCompiler: compiles markup against a scope.
*/
package ports
