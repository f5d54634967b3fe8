// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that remembers whether it was present in the
// decoded document and whether it was an explicit null.
//
// The zero value means "absent". Combined with the `omitzero` tag option an
// absent Optional is also skipped on encoding, so request bodies built by the
// client round-trip the same three states.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns a present Optional that encodes as JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key exists,
// so reaching it is enough to mark the field as set.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}

	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON encodes a null or absent Optional as JSON null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// IsZero reports whether the field was absent. Used by the `omitzero` tag option.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// Ptr returns nil for null, otherwise a pointer to a copy of Value.
// The result is meaningless for an absent Optional; check Set first.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}
