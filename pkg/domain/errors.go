package domain

import "errors"

// ErrModuleNotFound is returned when a module name was never registered.
var ErrModuleNotFound = errors.New("module not available")

// ErrUnknownProvider is returned when no recipe exists for a service name.
var ErrUnknownProvider = errors.New("unknown provider")

// ErrCircularDependency is returned when a service depends on itself.
var ErrCircularDependency = errors.New("circular dependency found")

// ErrControllerNotFound is returned when a controller name is not registered.
var ErrControllerNotFound = errors.New("controller not registered")

// ErrInjectorCreated is returned when modules are queued after the injector exists.
var ErrInjectorCreated = errors.New("injector already created, can not register a module")

// ErrInvalidMock is returned when a mock descriptor cannot be decoded.
var ErrInvalidMock = errors.New("invalid mock")
