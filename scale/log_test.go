// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogTicksDecades(t *testing.T) {
	s := newTestScale(t, Logarithmic, 1, 1000)
	ticks := s.BuildTicks()

	want := []float64{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 15, 20, 30, 40, 50, 60, 70, 80, 90,
		100, 150, 200, 300, 400, 500, 600, 700, 800, 900,
		1000,
	}
	assert.Equal(t, want, tickValues(ticks))

	for _, tk := range ticks {
		wantMajor := tk.Value == 1 || tk.Value == 10 || tk.Value == 100 || tk.Value == 1000
		assert.Equal(t, wantMajor, tk.Major, "value %g", tk.Value)
	}
}

func TestLogTicksSignificands(t *testing.T) {
	s := newTestScale(t, Logarithmic, 1, 100)
	ticks := s.BuildTicks()

	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 15, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	assert.Equal(t, want, tickValues(ticks))

	// the in-decade walk runs 1 through 9, then jumps to 15 and 20
	// before coarsening to the next exponent
	assert.Equal(t, 9, ticks[8].Significand)
	assert.Equal(t, 10, ticks[9].Significand)
	assert.Equal(t, 15, ticks[10].Significand)
	assert.Equal(t, 2, ticks[11].Significand)
}

func TestLogTicksPinnedMax(t *testing.T) {
	s, err := New(Logarithmic, Horizontal)
	require.NoError(t, err)
	s.Data.Set(1, 900)
	s.Range.SetMax(950)
	s.ResolveRange()
	require.Equal(t, 950.0, s.Max)

	ticks := s.BuildTicks()
	last := ticks[len(ticks)-1]
	assert.Equal(t, 950.0, last.Value)
	assert.False(t, last.Major)
	assert.Equal(t, 900.0, ticks[len(ticks)-2].Value)
}

func TestLogTicksDegenerate(t *testing.T) {
	s := newTestScale(t, Logarithmic, 5, 5)
	ticks := s.BuildTicks()
	assert.Equal(t, []float64{5, 5}, tickValues(ticks))
	assert.False(t, ticks[0].Major)
}

func TestLogResolve(t *testing.T) {
	s, err := New(Logarithmic, Horizontal)
	require.NoError(t, err)
	s.Data.Set(5, 95)
	s.ResolveRange()
	assert.Equal(t, 5.0, s.Min)
	assert.Equal(t, 95.0, s.Max)

	// zero and below are floored to 0.1
	s.Data.Set(0, 80)
	s.ResolveRange()
	assert.Equal(t, 0.1, s.Min)
	assert.Equal(t, 80.0, s.Max)

	s.Range.SetMin(-5)
	s.ResolveRange()
	assert.Equal(t, 0.1, s.Min)
}

func TestLogResolveBeginAtZero(t *testing.T) {
	s, err := New(Logarithmic, Horizontal)
	require.NoError(t, err)
	s.BeginAtZero = true
	s.Data.Set(5, 95)
	s.ResolveRange()
	assert.Equal(t, 0.1, s.Min)
	assert.Equal(t, 95.0, s.Max)
}

func TestLogResolveEmptyData(t *testing.T) {
	s, err := New(Logarithmic, Horizontal)
	require.NoError(t, err)
	s.Data.SetInfinity()
	s.ResolveRange()
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 10.0, s.Max)
}

func TestIsPowerOfTen(t *testing.T) {
	assert.True(t, isPowerOfTen(1))
	assert.True(t, isPowerOfTen(10))
	assert.True(t, isPowerOfTen(1000))
	assert.True(t, isPowerOfTen(0.1))
	assert.False(t, isPowerOfTen(5))
	assert.False(t, isPowerOfTen(950))
	assert.False(t, isPowerOfTen(0))
}
