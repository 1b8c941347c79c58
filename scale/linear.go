// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"cogentcore.org/chart/base/option"
)

// minSpacingCutoff is the spacing below which a domain is treated as
// degenerate for tick generation.
const minSpacingCutoff = 1e-14

// linearResolveRange resolves the domain for a linear scale: data bounds
// widened by the Suggested options and Grace, maximum rounded up to the
// next integer, then pinned ends and BeginAtZero applied.
func linearResolveRange(s *Scale) {
	dmin, dmax := s.dataBounds(0, 1)
	if s.SuggestedMin.Valid {
		dmin = math.Min(dmin, s.SuggestedMin.Value)
	}
	if s.SuggestedMax.Valid {
		dmax = math.Max(dmax, s.SuggestedMax.Value)
	}
	if s.Grace != 0 {
		change := math.Abs(s.Grace)
		if s.GracePercent {
			change = math.Abs(s.Grace) * (dmax - dmin) / 2
		}
		// a zero bound stays at zero under BeginAtZero
		gmin := dmin - change
		if s.BeginAtZero && dmin == 0 {
			gmin = 0
		}
		gmax := dmax + change
		if s.BeginAtZero && dmax == 0 {
			gmax = 0
		}
		dmin, dmax = gmin, gmax
	}
	mn, mx := s.Range.Clamp(dmin, math.Ceil(dmax))
	if s.BeginAtZero {
		if mn > 0 {
			mn = 0
		} else if mx < 0 {
			mx = 0
		}
	}
	s.Min, s.Max = mn, mx
}

func linearTicks(s *Scale) []Tick {
	o := &tickGen{
		maxTicks:      s.tickLimit(),
		bounds:        s.Bounds,
		min:           s.Min,
		max:           s.Max,
		minSet:        s.Range.FixMin,
		maxSet:        s.Range.FixMax,
		step:          s.Ticks.Step,
		count:         s.Ticks.Count,
		precision:     s.Ticks.Precision,
		maxDigits:     s.maxDigits(),
		horizontal:    s.Orientation == Horizontal,
		minRotation:   s.Ticks.MinRotation,
		includeBounds: s.Ticks.IncludeBounds,
	}
	return generateTicks(o, s.Min, s.Max)
}

// tickGen bundles the resolved inputs to linear tick generation.
// min and max are the bound values kept exact when the corresponding
// minSet / maxSet flag is true; the scale fills them from its live
// domain, which zoom or BeginAtZero can move off the pinned Range
// values.
type tickGen struct {
	maxTicks      int
	bounds        BoundsPolicies
	min           float64
	max           float64
	minSet        bool
	maxSet        bool
	step          float64
	count         int
	precision     option.Option[int]
	maxDigits     float64
	horizontal    bool
	minRotation   float32
	includeBounds bool
}

// generateTicks generates an ascending run of evenly spaced round-value
// ticks covering the domain rmin to rmax.
//
// The spacing starts from the nice round number dividing the domain into
// at most maxTicks-1 intervals, snapped to a multiple of the explicit
// step when one is set, and is coarsened again if aligning the run to
// multiples of the spacing overflows the budget. Pinned bounds are kept
// exactly: a pinned whole-multiple step run keeps the step, an explicit
// count divides the pinned domain equally, and under includeBounds the
// pinned values are emitted as the outermost ticks, displacing a
// neighboring tick when the two would crowd each other.
func generateTicks(o *tickGen, rmin, rmax float64) []Tick {
	var ticks []Tick

	unit := 1.0
	if o.step > 0 {
		unit = o.step
	}
	maxSpaces := float64(o.maxTicks - 1)
	minSpacing := (rmax - rmin) / (o.maxDigits + 1)
	spacing := niceNum((rmax-rmin)/maxSpaces/unit) * unit

	// A degenerate unpinned domain gets its two endpoints back.
	if spacing < minSpacingCutoff && !o.minSet && !o.maxSet {
		return []Tick{{Value: rmin}, {Value: rmax}}
	}

	numSpaces := math.Ceil(rmax/spacing) - math.Floor(rmin/spacing)
	if numSpaces > maxSpaces {
		spacing = niceNum(numSpaces*spacing/maxSpaces/unit) * unit
	}

	if o.precision.Valid {
		factor := math.Pow(10, float64(o.precision.Value))
		spacing = math.Ceil(spacing*factor) / factor
	}

	var niceMin, niceMax float64
	if o.bounds == BoundsTicks {
		niceMin = math.Floor(rmin/spacing) * spacing
		niceMax = math.Ceil(rmax/spacing) * spacing
	} else {
		niceMin = rmin
		niceMax = rmax
	}

	switch {
	case o.minSet && o.maxSet && o.step > 0 &&
		almostWhole((o.max-o.min)/o.step, o.step/1000):
		// Both bounds pinned and the step divides them evenly:
		// keep the exact bounds and the step.
		numSpaces = math.Round(math.Min((o.max-o.min)/spacing, float64(o.maxTicks)))
		spacing = (o.max - o.min) / numSpaces
		niceMin = o.min
		niceMax = o.max
	case o.count > 0:
		if o.minSet {
			niceMin = o.min
		}
		if o.maxSet {
			niceMax = o.max
		}
		numSpaces = float64(o.count - 1)
		spacing = (niceMax - niceMin) / numSpaces
	default:
		numSpaces = (niceMax - niceMin) / spacing
		if almostEquals(numSpaces, math.Round(numSpaces), spacing/1000) {
			numSpaces = math.Round(numSpaces)
		} else {
			numSpaces = math.Ceil(numSpaces)
		}
	}

	// Round the run to the precision implied by the spacing, so that
	// accumulated float error does not leak into the tick values.
	dp := max(decimalPlaces(spacing), decimalPlaces(niceMin))
	factor := math.Pow(10, float64(o.precision.Or(dp)))
	niceMin = math.Round(niceMin*factor) / factor
	niceMax = math.Round(niceMax*factor) / factor

	j := 0.0
	if o.minSet {
		if o.includeBounds && niceMin != o.min {
			ticks = append(ticks, Tick{Value: o.min})
			if niceMin < o.min {
				j++
			}
			// Skip the first grid tick if it would crowd the bound.
			if almostEquals(math.Round((niceMin+j*spacing)*factor)/factor, o.min,
				relativeLabelSize(o.min, minSpacing, o.horizontal, o.minRotation)) {
				j++
			}
		} else if niceMin < o.min {
			j++
		}
	}

	for ; j < numSpaces; j++ {
		tickValue := math.Round((niceMin+j*spacing)*factor) / factor
		if o.maxSet && tickValue > o.max {
			break
		}
		ticks = append(ticks, Tick{Value: tickValue})
	}

	if o.maxSet && o.includeBounds && niceMax != o.max {
		if len(ticks) > 0 && almostEquals(ticks[len(ticks)-1].Value, o.max,
			relativeLabelSize(o.max, minSpacing, o.horizontal, o.minRotation)) {
			ticks[len(ticks)-1].Value = o.max
		} else {
			ticks = append(ticks, Tick{Value: o.max})
		}
	} else if !o.maxSet || niceMax == o.max {
		ticks = append(ticks, Tick{Value: niceMax})
	}

	return ticks
}

func linearDecimal(s *Scale, v float64) float64 {
	rng := s.Max - s.Min
	if rng == 0 {
		return 0
	}
	return (v - s.Min) / rng
}

func linearPixel(s *Scale, v float64) float32 {
	if s.Max == s.Min {
		return 0
	}
	return s.PixelForDecimal(linearDecimal(s, v))
}

func linearValue(s *Scale, px float32) float64 {
	rng := s.Max - s.Min
	if rng == 0 {
		return s.Min
	}
	return s.Min + s.DecimalForPixel(px)*rng
}
