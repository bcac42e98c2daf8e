package json

import (
	O "github.com/hiraeth-ot/otjson/option"
)

// ToType round-trips src through JSON to coerce it into the shape of A,
// the way a generic map[string]any decoded from the wire gets coerced
// into a concrete payload struct.
func ToType[A any](src any) (A, error) {
	var zero A
	data, err := Marshal(src)
	if err != nil {
		return zero, err
	}
	return Unmarshal[A](data)
}

// ToTypeO is the Option-returning variant of [ToType], discarding the error.
func ToTypeO[A any](src any) O.Option[A] {
	a, err := ToType[A](src)
	if err != nil {
		return O.None[A]()
	}
	return O.Some(a)
}
