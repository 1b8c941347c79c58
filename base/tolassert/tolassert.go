// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

type num interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

type tHelper interface {
	Helper()
}

// Equal asserts that two numbers are equal within a standard tolerance
// of 0.0001.
func Equal[T num](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, 0.0001, msgAndArgs...)
}

// EqualTol asserts that two numbers are equal within the given tolerance.
// The tolerance is a plain float64 so that integer instantiations can
// still take a fractional one.
func EqualTol[T num](t assert.TestingT, expected T, actual T, tol float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), tol, msgAndArgs...)
}

// EqualTolSlice asserts that two slices of numbers are element-wise equal
// within the given tolerance.
func EqualTolSlice[T num](t assert.TestingT, expected []T, actual []T, tol float64, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !assert.Equal(t, len(expected), len(actual), msgAndArgs...) {
		return false
	}
	res := true
	for i, ev := range expected {
		if !assert.InDelta(t, float64(ev), float64(actual[i]), tol, msgAndArgs...) {
			res = false
		}
	}
	return res
}
