package easytest

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/easytest/pkg/domain"
	"github.com/aretw0/easytest/pkg/registry"
	"github.com/mitchellh/mapstructure"
)

// MockModule loads module name with services replaced by mocks. services
// may be nil, a []domain.Mock, a list of maps with the keys of domain.Mock,
// or a map from service names to the instances their factories return.
func (e *EasyTest) MockModule(name string, services any) error {
	recipes, err := mockRecipes(services)
	if err != nil {
		return fmt.Errorf("mock module %s: %w", name, err)
	}
	return e.fw.MockModule(name, recipes...)
}

// MockModules loads several modules. A string argument holds one or more
// module names separated by spaces; a domain.ModuleMock, or a map with
// "name" and "values" keys, is passed to MockModule.
func (e *EasyTest) MockModules(modules ...any) error {
	for _, m := range modules {
		var err error
		switch v := m.(type) {
		case string:
			err = e.fw.LoadModules(strings.Fields(v)...)
		case domain.ModuleMock:
			err = e.MockModule(v.Name, v.Values)
		case *domain.ModuleMock:
			err = e.MockModule(v.Name, v.Values)
		case map[string]any:
			var mm domain.ModuleMock
			if err := decodeStrict(v, &mm); err != nil {
				return fmt.Errorf("%w: module descriptor: %v", domain.ErrInvalidMock, err)
			}
			err = e.MockModule(mm.Name, mm.Values)
		default:
			return fmt.Errorf("%w: module %T", domain.ErrInvalidMock, m)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func mockRecipes(services any) ([]registry.Recipe, error) {
	switch v := services.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		recipes := make([]registry.Recipe, 0, len(v))
		for _, name := range slices.Sorted(maps.Keys(v)) {
			recipes = append(recipes, registry.Recipe{
				Name:    name,
				Kind:    registry.KindFactory,
				Factory: registry.Returning(v[name]),
			})
		}
		return recipes, nil
	case []domain.Mock:
		return recipesFor(v)
	case domain.Mock:
		return recipesFor([]domain.Mock{v})
	case []map[string]any:
		mocks := make([]domain.Mock, len(v))
		for i, raw := range v {
			if err := decodeStrict(raw, &mocks[i]); err != nil {
				return nil, fmt.Errorf("%w: mock %d: %v", domain.ErrInvalidMock, i, err)
			}
		}
		return recipesFor(mocks)
	case []any:
		mocks := make([]domain.Mock, len(v))
		for i, raw := range v {
			if m, ok := raw.(domain.Mock); ok {
				mocks[i] = m
				continue
			}
			if err := decodeStrict(raw, &mocks[i]); err != nil {
				return nil, fmt.Errorf("%w: mock %d: %v", domain.ErrInvalidMock, i, err)
			}
		}
		return recipesFor(mocks)
	}
	return nil, fmt.Errorf("%w: services %T", domain.ErrInvalidMock, services)
}

// recipesFor turns each mock into one recipe per field that is set.
func recipesFor(mocks []domain.Mock) ([]registry.Recipe, error) {
	var recipes []registry.Recipe
	for _, m := range mocks {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: mock without a name", domain.ErrInvalidMock)
		}
		if m.Factory != nil {
			recipes = append(recipes, registry.Recipe{Name: m.Name, Kind: registry.KindFactory, Factory: registry.Returning(m.Factory)})
		}
		if m.Service != nil {
			recipes = append(recipes, registry.Recipe{Name: m.Name, Kind: registry.KindService, Factory: registry.Returning(m.Service)})
		}
		if m.Provider != nil {
			p, err := asProvider(m.Provider)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidMock, m.Name, err)
			}
			recipes = append(recipes, registry.Recipe{Name: m.Name, Kind: registry.KindProvider, Provider: p})
		}
		if m.Value != nil {
			recipes = append(recipes, registry.Recipe{Name: m.Name, Kind: registry.KindValue, Value: m.Value})
		}
		if m.Constant != nil {
			recipes = append(recipes, registry.Recipe{Name: m.Name, Kind: registry.KindConstant, Value: m.Constant})
		}
	}
	return recipes, nil
}

func asProvider(v any) (registry.Provider, error) {
	switch p := v.(type) {
	case registry.Provider:
		return p, nil
	case func(registry.Resolver) (any, error):
		return registry.ProviderFunc(p), nil
	case func() any:
		return registry.ProviderFunc(func(registry.Resolver) (any, error) { return p(), nil }), nil
	}
	return nil, fmt.Errorf("provider is %T", v)
}

func decodeStrict(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
