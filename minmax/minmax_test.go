// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	var mr F64
	mr.Set(-2, 6)
	assert.True(t, mr.IsValid())
	assert.True(t, mr.InRange(0))
	assert.True(t, mr.InRange(-2))
	assert.True(t, mr.InRange(6))
	assert.False(t, mr.InRange(-2.01))
	assert.False(t, mr.InRange(6.01))

	assert.Equal(t, 8.0, mr.Range())
	assert.Equal(t, 0.125, mr.Scale())
	assert.Equal(t, 2.0, mr.Midpoint())

	assert.Equal(t, 0.25, mr.NormValue(0))
	assert.Equal(t, 0.0, mr.ProjValue(0.25)) // inverse of the above
	assert.Equal(t, 1.0, mr.NormValue(100))  // clipped
	assert.Equal(t, -2.0, mr.ClipValue(-3))
	assert.Equal(t, 6.0, mr.ClipValue(7))
	assert.True(t, math.IsNaN(mr.ClipValue(math.NaN())))
}

func TestFitValInRange(t *testing.T) {
	var mr F64
	mr.SetInfinity()
	assert.False(t, mr.IsValid())
	for _, v := range []float64{3, -1, 7, 2} {
		mr.FitValInRange(v)
	}
	assert.Equal(t, F64{-1, 7}, mr)
	assert.False(t, mr.FitValInRange(0))
	assert.True(t, mr.FitValInRange(8))
	assert.Equal(t, 8.0, mr.Max)

	oth := F64{-4, 2}
	assert.True(t, mr.FitInRange(oth))
	assert.Equal(t, F64{-4, 8}, mr)
	assert.False(t, mr.FitInRange(oth))
}

func TestZeroRange(t *testing.T) {
	mr := F64{5, 5}
	assert.Equal(t, 0.0, mr.Range())
	assert.Equal(t, 0.0, mr.Scale())
	assert.Equal(t, 0.0, mr.NormValue(5)) // no division by zero
}

func TestRange64Clamp(t *testing.T) {
	tests := []struct {
		name   string
		rng    func(rr *Range64)
		mn, mx float64
		wantMn float64
		wantMx float64
	}{
		{"free", func(rr *Range64) {}, -3, 11, -3, 11},
		{"fixmin", func(rr *Range64) { rr.SetMin(0) }, -3, 11, 0, 11},
		{"fixmax", func(rr *Range64) { rr.SetMax(10) }, -3, 11, -3, 10},
		{"both", func(rr *Range64) { rr.SetMin(0); rr.SetMax(10) }, -3, 11, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rr Range64
			tt.rng(&rr)
			mn, mx := rr.Clamp(tt.mn, tt.mx)
			assert.Equal(t, tt.wantMn, mn)
			assert.Equal(t, tt.wantMx, mx)
		})
	}
}
