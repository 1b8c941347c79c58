// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides min / max range types for data and axis domains.
package minmax

// F64 represents a min / max range of float64 values.
// Supports clipping, renormalizing, etc.
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values.
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to the maximum float value and the Max to the
// lowest, suitable for iteratively calling [F64.FitValInRange].
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max.
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether the value is within the range (>= Min and <= Max).
func (mr *F64) InRange(val float64) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min.
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// Scale returns 1 / Range, or 0 if the Range is 0.
func (mr *F64) Scale() float64 {
	r := mr.Range()
	if r != 0 {
		return 1 / r
	}
	return 0
}

// Midpoint returns the point halfway between Min and Max.
func (mr *F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts Min and Max as needed to fit the given value
// within the range, returning true if any adjustment was made.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// FitInRange adjusts Min and Max as needed to fit the given other range,
// returning true if any adjustment was made.
func (mr *F64) FitInRange(oth F64) bool {
	adj := false
	if oth.Min < mr.Min {
		mr.Min = oth.Min
		adj = true
	}
	if oth.Max > mr.Max {
		mr.Max = oth.Max
		adj = true
	}
	return adj
}

// NormValue normalizes the value to the 0-1 unit range relative to the
// current Min / Max range, clipping it to that range first.
func (mr *F64) NormValue(val float64) float64 {
	return (mr.ClipValue(val) - mr.Min) * mr.Scale()
}

// ProjValue projects a 0-1 normalized unit value into the current
// Min / Max range, as the inverse of [F64.NormValue].
func (mr *F64) ProjValue(val float64) float64 {
	return mr.Min + val*mr.Range()
}

// ClipValue clips the given value within the Min / Max range.
// A NaN remains a NaN.
func (mr *F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}
