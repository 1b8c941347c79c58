// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

const (
	MaxFloat64 float64 = 1.7976931348623158e+308
	MinFloat64 float64 = 2.2250738585072014e-308
)

// Range64 represents a range of float64 values for an axis domain,
// where the min or the max can optionally be fixed (pinned) to a
// user-specified value instead of following the data.
type Range64 struct {
	F64

	// FixMin fixes the minimum end of the range to the Min value.
	FixMin bool

	// FixMax fixes the maximum end of the range to the Max value.
	FixMax bool
}

// SetMin sets a fixed min value.
func (rr *Range64) SetMin(mn float64) {
	rr.FixMin = true
	rr.Min = mn
}

// SetMax sets a fixed max value.
func (rr *Range64) SetMax(mx float64) {
	rr.FixMax = true
	rr.Max = mx
}

// Clamp returns the given min, max values clamped according to the
// fixed min / max settings: a fixed end returns the fixed value,
// and an unfixed end passes the input value through.
func (rr *Range64) Clamp(mnIn, mxIn float64) (mn, mx float64) {
	mn, mx = mnIn, mxIn
	if rr.FixMin {
		mn = rr.Min
	}
	if rr.FixMax {
		mx = rr.Max
	}
	return
}
