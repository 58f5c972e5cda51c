package looks

import (
	"math/big"
	"reflect"
)

// TypeTag names a runtime type category.
type TypeTag string

const (
	Function  TypeTag = "function"
	String    TypeTag = "string"
	Number    TypeTag = "number"
	Boolean   TypeTag = "boolean"
	Object    TypeTag = "object"
	Undefined TypeTag = "undefined"
	Symbol    TypeTag = "symbol"
	BigInt    TypeTag = "bigint"
)

// Tags lists every tag TypeOf can produce, plus Symbol which no Go value has.
var Tags = []TypeTag{Function, String, Number, Boolean, Object, Undefined, Symbol, BigInt}

// Known reports whether t belongs to the closed set of tags.
func (t TypeTag) Known() bool {
	for _, tag := range Tags {
		if t == tag {
			return true
		}
	}
	return false
}

var bigIntType = reflect.TypeOf(big.Int{})

// TypeOf returns the type tag of v.
//
// A nil interface is Undefined. Funcs are Function, strings String, bools
// Boolean, every integer and float kind Number, big.Int (or a pointer to one)
// BigInt. Everything else, including nil maps, slices and pointers, is Object.
func TypeOf(v any) TypeTag {
	return typeOfValue(reflect.ValueOf(v))
}

func typeOfValue(rv reflect.Value) TypeTag {
	if !rv.IsValid() {
		return Undefined
	}
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Undefined
		}
		return typeOfValue(rv.Elem())
	}

	t := rv.Type()
	if t == bigIntType || (t.Kind() == reflect.Pointer && t.Elem() == bigIntType) {
		return BigInt
	}

	switch rv.Kind() {
	case reflect.Func:
		return Function
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	default:
		return Object
	}
}
