package scope

import (
	"sort"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// Object is an insertion-ordered property bag.
// The zero value is ready to use. Not safe for concurrent use.
type Object struct {
	props *linkedhashmap.Map[string, any]
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{props: linkedhashmap.New[string, any]()}
}

// ObjectFrom copies m into a new Object. Keys are added in sorted order.
func ObjectFrom(m map[string]any) *Object {
	o := NewObject()
	o.Extend(m)
	return o
}

func (o *Object) init() {
	if o.props == nil {
		o.props = linkedhashmap.New[string, any]()
	}
}

// Set stores value under name.
func (o *Object) Set(name string, value any) {
	o.init()
	o.props.Put(name, value)
}

// Get returns the value stored under name on this object only.
func (o *Object) Get(name string) (any, bool) {
	if o == nil || o.props == nil {
		return nil, false
	}
	return o.props.Get(name)
}

// Lookup implements looks.Lookuper.
func (o *Object) Lookup(name string) (any, bool) {
	return o.Get(name)
}

// Has reports whether name is set on this object.
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Delete removes name.
func (o *Object) Delete(name string) {
	if o.props != nil {
		o.props.Remove(name)
	}
}

// Keys returns the names in insertion order.
func (o *Object) Keys() []string {
	if o == nil || o.props == nil {
		return nil
	}
	return o.props.Keys()
}

// Len returns the number of properties.
func (o *Object) Len() int {
	if o == nil || o.props == nil {
		return 0
	}
	return o.props.Size()
}

// Extend copies every entry of m onto the object, in sorted key order.
func (o *Object) Extend(m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		o.Set(k, m[k])
	}
}

// ToMap returns a shallow copy of the properties.
func (o *Object) ToMap() map[string]any {
	out := make(map[string]any, o.Len())
	for _, k := range o.Keys() {
		out[k], _ = o.Get(k)
	}
	return out
}
