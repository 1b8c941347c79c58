// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(t, 1.0, 1.00005))
	assert.True(t, Equal(t, float32(2.5), float32(2.5)))

	// integer instantiations share the float64 tolerance
	assert.True(t, Equal(t, 5, 5))
	assert.True(t, EqualTol(t, 10, 12, 2))

	mock := new(testing.T)
	assert.False(t, Equal(mock, 1.0, 1.1))
	assert.True(t, mock.Failed())
}

func TestEqualTolSlice(t *testing.T) {
	assert.True(t, EqualTolSlice(t, []float32{1, 2, 3}, []float32{1, 2.0004, 3}, 0.001))

	mock := new(testing.T)
	assert.False(t, EqualTolSlice(mock, []float64{1, 2}, []float64{1}, 0.001))
	assert.False(t, EqualTolSlice(mock, []float64{1, 2}, []float64{1, 2.5}, 0.001))
}
