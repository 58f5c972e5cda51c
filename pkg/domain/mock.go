package domain

// Mock describes a fake service. Exactly which fields are set decides how it
// is registered; when several are set they are applied in the order
// Factory, Service, Provider, Value, Constant and the last one wins.
//
// Factory and Service values are returned as the instance itself. A Provider
// must implement registry.Provider.
type Mock struct {
	Name     string `json:"name" mapstructure:"name"`
	Factory  any    `json:"factory,omitempty" mapstructure:"factory"`
	Service  any    `json:"service,omitempty" mapstructure:"service"`
	Provider any    `json:"provider,omitempty" mapstructure:"provider"`
	Value    any    `json:"value,omitempty" mapstructure:"value"`
	Constant any    `json:"constant,omitempty" mapstructure:"constant"`
}

// ModuleMock names a module and the mocks to register into it.
// Values takes the same forms MockModule accepts: a list of Mock (or maps
// with the same keys) or a map of names to factory instances.
type ModuleMock struct {
	Name   string `json:"name" mapstructure:"name"`
	Values any    `json:"values,omitempty" mapstructure:"values"`
}
