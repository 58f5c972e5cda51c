package looks

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingProperty matches every MissingPropertyError.
	ErrMissingProperty = errors.New("missing property")
	// ErrWrongType matches every WrongTypeError.
	ErrWrongType = errors.New("wrong type")
	// ErrInvalidTarget is returned when the target has no properties to read at all.
	ErrInvalidTarget = errors.New("invalid target")
)

// MissingPropertyError reports a property the spec requires but the target lacks.
type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("Expected object to have the property '%s'.", e.Property)
}

func (e *MissingPropertyError) Is(target error) bool {
	return target == ErrMissingProperty
}

// WrongTypeError reports a property whose type tag differs from the spec's.
type WrongTypeError struct {
	Property string
	Expected TypeTag
	Actual   TypeTag
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("Expected property '%s' to be of type %s.", e.Property, e.Expected)
}

func (e *WrongTypeError) Is(target error) bool {
	return target == ErrWrongType
}

// Violations holds every violation found by All.
type Violations struct {
	Errors []error
}

func (e *Violations) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d violations:", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err.Error())
	}
	return b.String()
}

func (e *Violations) Unwrap() []error { return e.Errors }

// IsViolation reports whether err is one of the two violation kinds, or
// holds one.
func IsViolation(err error) bool {
	return errors.Is(err, ErrMissingProperty) || errors.Is(err, ErrWrongType)
}
