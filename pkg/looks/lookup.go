package looks

import (
	"fmt"
	"reflect"
	"strings"
)

// Lookuper is implemented by values that resolve their own properties,
// such as scopes and property bags.
type Lookuper interface {
	Lookup(name string) (any, bool)
}

func checkTarget(target any) error {
	if target == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTarget)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Errorf("%w: nil %s", ErrInvalidTarget, rv.Type())
	}
	return nil
}

// Lookup finds the property name on target and reports whether it exists.
func Lookup(target any, name string) (any, bool) {
	rv, ok := lookup(target, name)
	if !ok || !rv.IsValid() || !rv.CanInterface() {
		return nil, ok
	}
	return rv.Interface(), true
}

func lookup(target any, name string) (reflect.Value, bool) {
	if l, ok := target.(Lookuper); ok {
		v, found := l.Lookup(name)
		return reflect.ValueOf(v), found
	}

	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return reflect.Value{}, false
	}

	if m := rv.MethodByName(name); m.IsValid() {
		return m, true
	}
	if rv.Kind() != reflect.Pointer {
		if m, ok := reflect.PointerTo(rv.Type()).MethodByName(name); ok {
			return m.Func, true
		}
	}

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		return lookupKey(rv, name)
	case reflect.Struct:
		return lookupField(rv, name)
	default:
		return reflect.Value{}, false
	}
}

func lookupKey(rv reflect.Value, name string) (reflect.Value, bool) {
	keyType := rv.Type().Key()
	if keyType.Kind() != reflect.String {
		return reflect.Value{}, false
	}
	v := rv.MapIndex(reflect.ValueOf(name).Convert(keyType))
	return v, v.IsValid()
}

func lookupField(rv reflect.Value, name string) (reflect.Value, bool) {
	if f, ok := rv.Type().FieldByName(name); ok && f.IsExported() {
		v, err := rv.FieldByIndexErr(f.Index)
		return v, err == nil
	}

	for _, f := range reflect.VisibleFields(rv.Type()) {
		if !f.IsExported() || jsonName(f) != name {
			continue
		}
		v, err := rv.FieldByIndexErr(f.Index)
		return v, err == nil
	}
	return reflect.Value{}, false
}

func jsonName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return ""
	}
	n, _, _ := strings.Cut(tag, ",")
	if n == "-" {
		return ""
	}
	return n
}
