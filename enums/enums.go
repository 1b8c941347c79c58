// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces and helper functions for the
// generated method sets of enum types (see the enumgen.go files in the
// packages that declare //enums:enum types).
package enums

// Enum is the interface that all enum types satisfy.
// Enum types must be convertible to strings and int64s,
// must be able to return a description of their value,
// and must be able to report all of their possible values.
type Enum interface {
	// String returns the string representation of the enum value.
	String() string

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values of the enum type.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Pointers to enum types must
// satisfy all of the methods of [Enum], and must also
// be settable from strings and int64s.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// EnumConstraint is the generic type constraint that all enums satisfy.
type EnumConstraint interface {
	Enum
	comparable
}
