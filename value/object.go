package value

import "sort"

// Object is the JSON object value: a finite mapping from string keys to
// Values. Insertion order is preserved for Keys (ToJSON goes through a Go
// map, so encoded objects list their keys in sorted order); Cmp
// orders objects by sorted key content so that two processes comparing
// the same logical object always agree regardless of construction order.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns the empty object.
func NewObject() *Object {
	return &Object{}
}

func (*Object) valueTag() {}

func (o *Object) String() string {
	return "{object}"
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice must not be mutated.
func (o *Object) Keys() []string {
	return o.keys
}

// SortedKeys returns a freshly allocated, lexicographically sorted copy of Keys.
func (o *Object) SortedKeys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	sort.Strings(out)
	return out
}

// Get returns the value at key, or (Missing, false) if absent.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Missing, false
	}
	v, ok := o.vals[key]
	if !ok {
		return Missing, false
	}
	return v, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set returns a new Object with key bound to v, leaving o unmodified.
func (o *Object) Set(key string, v Value) *Object {
	out := o.Clone()
	if _, exists := out.vals[key]; !exists {
		out.keys = append(out.keys, key)
	}
	out.vals[key] = v
	return out
}

// Delete returns a new Object with key removed, leaving o unmodified.
func (o *Object) Delete(key string) *Object {
	if !o.Has(key) {
		return o
	}
	out := &Object{
		keys: make([]string, 0, len(o.keys)-1),
		vals: make(map[string]Value, len(o.vals)-1),
	}
	for _, k := range o.keys {
		if k == key {
			continue
		}
		out.keys = append(out.keys, k)
		out.vals[k] = o.vals[k]
	}
	return out
}

// Clone returns an independent shallow copy of o.
func (o *Object) Clone() *Object {
	out := &Object{
		keys: make([]string, len(o.keys)),
		vals: make(map[string]Value, len(o.vals)),
	}
	copy(out.keys, o.keys)
	for k, v := range o.vals {
		out.vals[k] = v
	}
	return out
}

// Equal reports whether o and other have the same keys mapped to equal values.
func (o *Object) Equal(other *Object) bool {
	return Cmp(o, other) == 0
}
