// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series provides the data interfaces for charting, along with
// helpers for filtering and scanning series data into the min / max
// domain ranges that drive axis scales.
package series

import (
	"math"

	"cogentcore.org/chart/base/errors"
)

var (
	ErrInfinity = errors.New("series: infinite data point")
	ErrNoData   = errors.New("series: no data points")
)

// XYer is the data interface for a series of (x, y) points.
type XYer interface {
	// Len returns the number of points.
	Len() int

	// XY returns the x and y values of the point at the given index.
	XY(i int) (x, y float64)
}

// XY is an x and y value.
type XY struct {
	X, Y float64
}

// XYs provides a minimal implementation of the [XYer]
// interface using a slice.
type XYs []XY

func (xys XYs) Len() int {
	return len(xys)
}

func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// Finite returns a copy of the given data with all non-finite (NaN or
// infinite) points dropped, which is what drawing code must feed to the
// value to pixel mapping of a scale.
func Finite(data XYer) XYs {
	xys := make(XYs, 0, data.Len())
	for i := 0; i < data.Len(); i++ {
		x, y := data.XY(i)
		if !finite(x) || !finite(y) {
			continue
		}
		xys = append(xys, XY{x, y})
	}
	return xys
}

// CheckFloats returns [ErrInfinity] if any of the arguments are infinite,
// and [ErrNoData] if there are no non-NaN values among them.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// CheckNaNs returns true if any of the floats are NaN.
func CheckNaNs(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
