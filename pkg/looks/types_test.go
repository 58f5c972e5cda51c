package looks

import (
	"math/big"
	"testing"
)

func TestTypeOf(t *testing.T) {
	var nilMap map[string]any
	var nilFunc func()

	tests := []struct {
		value any
		want  TypeTag
	}{
		{nil, Undefined},
		{func() {}, Function},
		{nilFunc, Function},
		{"hello", String},
		{"", String},
		{true, Boolean},
		{42, Number},
		{int8(1), Number},
		{uint64(1), Number},
		{3.14, Number},
		{float32(1), Number},
		{big.NewInt(1), BigInt},
		{*big.NewInt(1), BigInt},
		{map[string]any{}, Object},
		{nilMap, Object},
		{[]string{}, Object},
		{struct{}{}, Object},
		{&struct{}{}, Object},
		{complex(1, 2), Object},
		{make(chan int), Object},
	}

	for _, tt := range tests {
		if got := TypeOf(tt.value); got != tt.want {
			t.Errorf("TypeOf(%#v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestTypeTagKnown(t *testing.T) {
	for _, tag := range Tags {
		if !tag.Known() {
			t.Errorf("%q should be known", tag)
		}
	}
	if TypeTag("widget").Known() {
		t.Errorf("widget should not be known")
	}
}
