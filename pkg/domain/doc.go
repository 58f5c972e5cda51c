/*
Package domain holds the value types and sentinel errors shared by the
registry, the injector, the harness and the test helpers.

# Key Entities

  - Context: a freshly instantiated controller paired with the scope it was bound to.
  - Mock: a fake service registered into a module for the duration of a test.
  - ModuleMock: a module name plus the mocks to register into it.
*/
package domain
