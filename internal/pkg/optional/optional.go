// Package optional provides a JSON wrapper that distinguishes a field that was
// absent from the request body from one that was explicitly sent as null.
// Partial-update endpoints only apply fields that were actually present.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value wraps a field of a partial-update payload. Present is true when the
// key appeared in the JSON object at all; Null is true when it appeared with
// an explicit null value.
type Value[T any] struct {
	Val     T
	Present bool
	Null    bool
}

// Of returns a present, non-null value. Mostly useful in tests.
func Of[T any](v T) Value[T] {
	return Value[T]{Val: v, Present: true}
}

// OfNull returns a present, explicitly-null value.
func OfNull[T any]() Value[T] {
	return Value[T]{Present: true, Null: true}
}

// UnmarshalJSON is only invoked by encoding/json for keys that exist in the
// payload, which is what makes Present trustworthy.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Present = true
	if bytes.Equal(data, []byte("null")) {
		v.Null = true
		var zero T
		v.Val = zero
		return nil
	}
	return json.Unmarshal(data, &v.Val)
}

// MarshalJSON restores the wire value; absent fields marshal as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Present || v.Null {
		return []byte("null"), nil
	}
	return json.Marshal(v.Val)
}

// Arg converts the value into a database bind argument: nil for an explicit
// null, the underlying value otherwise. Must only be called when Present.
func (v Value[T]) Arg() any {
	if v.Null {
		return nil
	}
	return v.Val
}
