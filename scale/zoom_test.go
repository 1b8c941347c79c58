// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image"
	"testing"

	"cogentcore.org/chart/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomExtent(t *testing.T) {
	mn, mx := ZoomExtent(25, 0, 100, 0.5, false)
	assert.Equal(t, 12.5, mn)
	assert.Equal(t, 62.5, mx)

	// zooming back out around the same pivot restores the domain
	mn, mx = ZoomExtent(25, mn, mx, 2, false)
	tolassert.Equal(t, 0, mn)
	tolassert.Equal(t, 100, mx)
}

func TestZoomExtentOut(t *testing.T) {
	mn, mx := ZoomExtent(50, 0, 100, 2, false)
	assert.Equal(t, -50.0, mn)
	assert.Equal(t, 150.0, mx)
}

func TestZoomExtentLogFloor(t *testing.T) {
	mn, mx := ZoomExtent(1, 0.5, 100, 4, true)
	assert.Equal(t, 0.1, mn)
	tolassert.Equal(t, 397, mx)

	// a pivot below the domain pulls both bounds negative zooming in,
	// and both come back floored
	mn, mx = ZoomExtent(-5, 0.1, 1, 0.5, true)
	assert.Equal(t, 0.1, mn)
	assert.Equal(t, 0.1, mx)
}

func TestZoomExtentZeroRange(t *testing.T) {
	mn, mx := ZoomExtent(2, 2, 2, 0.5, false)
	assert.Equal(t, 2.0, mn)
	assert.Equal(t, 2.0, mx)
}

func TestZoomAtKeepsPivotPixel(t *testing.T) {
	s, err := New(Linear, Horizontal)
	require.NoError(t, err)
	s.Box = image.Rect(0, 0, 600, 40)
	s.Data.Set(0, 100)
	s.ResolveRange()

	const pivot = 30.0
	before := s.PixelForValue(pivot)
	s.ZoomAt(pivot, 0.7)
	tolassert.Equal(t, 9.0, s.Min)
	tolassert.Equal(t, 79.0, s.Max)
	tolassert.Equal(t, before, s.PixelForValue(pivot))

	s.ZoomAt(pivot, 0.7)
	tolassert.Equal(t, before, s.PixelForValue(pivot))
}

func TestZoomAtPinnedRange(t *testing.T) {
	s, err := New(Linear, Horizontal)
	require.NoError(t, err)
	s.Box = image.Rect(0, 0, 600, 40)
	s.Range.SetMin(0)
	s.Range.SetMax(100)
	s.ResolveRange()

	s.ZoomAt(50, 0.5)
	assert.Equal(t, 25.0, s.Min)
	assert.Equal(t, 75.0, s.Max)

	// generation follows the zoomed domain, not the pinned range
	ticks := s.BuildTicks()
	want := []float64{25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75}
	assert.Equal(t, want, tickValues(ticks))
	assert.Equal(t, 25.0, s.Min)
	assert.Equal(t, 75.0, s.Max)
}

func TestZoomAtLogFloor(t *testing.T) {
	s, err := New(Logarithmic, Horizontal)
	require.NoError(t, err)
	s.Data.Set(0.5, 100)
	s.ResolveRange()

	s.ZoomAt(1, 4)
	assert.Equal(t, 0.1, s.Min)
}

func TestPanExtent(t *testing.T) {
	mn, mx := PanExtent(0, 100, 10, false)
	assert.Equal(t, 10.0, mn)
	assert.Equal(t, 110.0, mx)

	mn, mx = PanExtent(0.5, 100, -1, true)
	assert.Equal(t, 0.1, mn)
	assert.Equal(t, 99.0, mx)
}

func TestPanBy(t *testing.T) {
	s, err := New(Linear, Horizontal)
	require.NoError(t, err)
	s.Data.Set(0, 100)
	s.ResolveRange()

	s.PanBy(-20)
	assert.Equal(t, -20.0, s.Min)
	assert.Equal(t, 80.0, s.Max)

	s.Reset()
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
}
