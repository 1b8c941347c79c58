// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// ZoomExtent returns the domain obtained by scaling the range from min
// to max by factor around the pivot value, preserving the pivot's
// relative position within the domain (and therefore its pixel on
// linear scales). A factor below 1 zooms in. On logarithmic scales any
// resulting non-positive bound is floored to 0.1. A zero-width input
// range is returned unchanged.
func ZoomExtent(pivot, min, max, factor float64, logarithmic bool) (newMin, newMax float64) {
	rng := max - min
	if rng == 0 {
		return min, max
	}
	ratioLeft := (pivot - min) / rng
	ratioRight := 1 - ratioLeft
	newRange := rng * factor
	newMin = pivot - newRange*ratioLeft
	newMax = pivot + newRange*ratioRight
	if logarithmic {
		if newMin <= 0 {
			newMin = logFloor
		}
		if newMax <= 0 {
			newMax = logFloor
		}
	}
	return newMin, newMax
}

// PanExtent returns the domain from min to max translated by delta in
// data units. On logarithmic scales any resulting non-positive bound is
// floored to 0.1.
func PanExtent(min, max, delta float64, logarithmic bool) (newMin, newMax float64) {
	newMin = min + delta
	newMax = max + delta
	if logarithmic {
		if newMin <= 0 {
			newMin = logFloor
		}
		if newMax <= 0 {
			newMax = logFloor
		}
	}
	return newMin, newMax
}

// ZoomAt rescales the live domain by factor around the pivot value,
// keeping the pivot's relative position in the domain. A factor below 1
// zooms in. Call [Scale.BuildTicks] before the next mapping use.
func (s *Scale) ZoomAt(pivot, factor float64) {
	mn, mx := ZoomExtent(pivot, s.Min, s.Max, factor, s.Kind == Logarithmic)
	s.SetExtent(mn, mx)
}

// PanBy translates the live domain by delta in data units.
// Call [Scale.BuildTicks] before the next mapping use.
func (s *Scale) PanBy(delta float64) {
	mn, mx := PanExtent(s.Min, s.Max, delta, s.Kind == Logarithmic)
	s.SetExtent(mn, mx)
}
