// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"strconv"

	"github.com/chewxy/math32"
)

// almostEquals reports whether x and y are within eps of each other.
// The comparison is strict, so a zero eps is never satisfied.
func almostEquals(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

// almostWhole reports whether x is within eps of an integer.
func almostWhole(x, eps float64) bool {
	rounded := math.Round(x)
	return rounded-eps <= x && x <= rounded+eps
}

// niceNum returns the nearest round value not less than rng, using the
// 1-2-5-10 progression scaled to the magnitude of rng.
func niceNum(rng float64) float64 {
	rounded := math.Round(rng)
	if almostEquals(rng, rounded, rng/1000) {
		rng = rounded
	}
	niceRange := math.Pow(10, math.Floor(math.Log10(rng)))
	fraction := rng / niceRange
	var niceFraction float64
	switch {
	case fraction <= 1:
		niceFraction = 1
	case fraction <= 2:
		niceFraction = 2
	case fraction <= 5:
		niceFraction = 5
	default:
		niceFraction = 10
	}
	return niceFraction * niceRange
}

// decimalPlaces returns the number of decimal places needed to represent
// x exactly, capped at 20. Non-finite values return 0.
func decimalPlaces(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	e := 1.0
	p := 0
	for math.Round(x*e)/e != x && p < 20 {
		e *= 10
		p++
	}
	return p
}

// rotationRatio is the projection of a label rotated by the given
// degrees onto the axis direction, floored away from zero so it can
// divide.
func rotationRatio(horizontal bool, rotation float32) float32 {
	rad := rotation * (math32.Pi / 180)
	var ratio float32
	if horizontal {
		ratio = math32.Sin(rad)
	} else {
		ratio = math32.Cos(rad)
	}
	if ratio == 0 {
		ratio = 0.001
	}
	return ratio
}

// relativeLabelSize estimates, in data units, the axis length consumed
// by the label of value, for deciding whether a boundary tick would
// collide with its neighboring grid tick. minSpacing is the data-unit
// width of one label slot, horizontal and minRotation describe the
// label layout.
func relativeLabelSize(value, minSpacing float64, horizontal bool, minRotation float32) float64 {
	ratio := rotationRatio(horizontal, minRotation)
	length := 0.75 * minSpacing * float64(len(strconv.FormatFloat(value, 'g', -1, 64)))
	return math.Min(minSpacing/float64(ratio), length)
}
