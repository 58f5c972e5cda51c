package injector

import (
	"strings"

	"github.com/aretw0/easytest/pkg/domain"
)

// UnknownProviderError reports a service name with no recipe, together with
// the chain of services that asked for it (closest first).
type UnknownProviderError struct {
	Name string
	Path []string
}

func (e *UnknownProviderError) Error() string {
	parts := append([]string{e.Name + "Provider", e.Name}, e.Path...)
	return domain.ErrUnknownProvider.Error() + ": " + strings.Join(parts, " <- ")
}

func (e *UnknownProviderError) Is(target error) bool {
	return target == domain.ErrUnknownProvider
}
