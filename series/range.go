// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"cogentcore.org/chart/minmax"
)

// XRange updates the given range from the x values of the given data.
// A point with any non-finite coordinate is excluded entirely.
func XRange(data XYer, rng *minmax.F64) {
	for i := 0; i < data.Len(); i++ {
		x, y := data.XY(i)
		if !finite(x) || !finite(y) {
			continue
		}
		rng.FitValInRange(x)
	}
}

// YRange updates the given range from the y values of the given data.
// A point with any non-finite coordinate is excluded entirely.
func YRange(data XYer, rng *minmax.F64) {
	for i := 0; i < data.Len(); i++ {
		x, y := data.XY(i)
		if !finite(x) || !finite(y) {
			continue
		}
		rng.FitValInRange(y)
	}
}

// Ranges returns the x and y ranges over the finite points of all of the
// given series, for setting the data domains of the axis scales.
// If there are no finite points, the returned ranges are not
// [minmax.F64.IsValid].
func Ranges(series ...XYer) (x, y minmax.F64) {
	x.SetInfinity()
	y.SetInfinity()
	for _, data := range series {
		XRange(data, &x)
		YRange(data, &y)
	}
	return
}
