// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("oops")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, "a", Log1("a", New("oops")))
}

func TestLog2(t *testing.T) {
	a, b := Log2(1, "two", New("oops"))
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("oops")) })
	assert.Equal(t, 5, Must1(5, nil))
	assert.Panics(t, func() { Must1(5, New("oops")) })
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 7, Ignore1(7, New("oops")))
}

func TestWrapping(t *testing.T) {
	base := New("base")
	wrapped := Errorf("outer: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))

	joined := Join(base, New("other"))
	assert.True(t, Is(joined, base))
}
