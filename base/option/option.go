// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package option provides optional (nullable) types.
package option

// Option represents an optional (nullable) value.
// The zero value is unset.
type Option[T any] struct {
	Value T
	Valid bool
}

// New returns a new [Option] set to the given value.
func New[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// Set sets the value to the given value.
func (o *Option[T]) Set(v T) *Option[T] {
	o.Value = v
	o.Valid = true
	return o
}

// Clear marks the value as unset.
func (o *Option[T]) Clear() {
	o.Valid = false
	var zero T
	o.Value = zero
}

// Or returns the value if it is set, and otherwise the given fallback value.
func (o Option[T]) Or(fallback T) T {
	if o.Valid {
		return o.Value
	}
	return fallback
}
