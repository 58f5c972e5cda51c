package looks

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Properties is an ordered list of property names.
type Properties []string

// Split turns a space-delimited list into Properties.
// Every single space separates two names, so "a  b" holds an empty name and
// "" is a list with one empty name.
func Split(list string) Properties {
	return Properties(strings.Split(list, " "))
}

// String joins the names back into the space-delimited form.
func (p Properties) String() string {
	return strings.Join(p, " ")
}

// ParseProperties normalises a property list given either as one
// space-delimited string or as a sequence of strings ([]string, []any).
func ParseProperties(list any) (Properties, error) {
	if list == nil {
		return nil, errors.New("property list: nil")
	}

	var names []string
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: splitHook,
		Result:     &names,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(list); err != nil {
		return nil, fmt.Errorf("property list: %w", err)
	}
	return Properties(names), nil
}

// splitHook converts the string form into a slice before mapstructure
// decodes it, so both forms reach the decoder as sequences.
func splitHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	return []string(Split(reflect.ValueOf(data).String())), nil
}
