package registry

// Kind identifies how a recipe produces its instance.
type Kind int

const (
	KindFactory Kind = iota
	KindService
	KindProvider
	KindValue
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindFactory:
		return "factory"
	case KindService:
		return "service"
	case KindProvider:
		return "provider"
	case KindValue:
		return "value"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Resolver is the view of the injector that recipes and controllers receive.
type Resolver interface {
	Get(name string) (any, error)
}

// FactoryFunc builds a service instance. It runs at most once per injector.
type FactoryFunc func(r Resolver) (any, error)

// Provider builds a service instance on first use.
type Provider interface {
	Get(r Resolver) (any, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(r Resolver) (any, error)

func (f ProviderFunc) Get(r Resolver) (any, error) { return f(r) }

// Recipe tells the injector how to produce the service called Name.
type Recipe struct {
	Name     string
	Kind     Kind
	Factory  FactoryFunc // factory and service
	Provider Provider    // provider
	Value    any         // value and constant
}

// Returning is a FactoryFunc that yields v itself.
func Returning(v any) FactoryFunc {
	return func(Resolver) (any, error) { return v, nil }
}
