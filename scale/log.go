// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// logFloor is the substitute lower bound whenever a logarithmic domain
// would otherwise reach zero or below.
const logFloor = 0.1

// logResolveRange resolves the domain for a logarithmic scale. It works
// like the linear resolution without Grace, and then floors any
// non-positive bound to [logFloor] so the log transform stays defined.
func logResolveRange(s *Scale) {
	dmin, dmax := s.dataBounds(1, 10)
	if s.SuggestedMin.Valid {
		dmin = math.Min(dmin, s.SuggestedMin.Value)
	}
	if s.SuggestedMax.Valid {
		dmax = math.Max(dmax, s.SuggestedMax.Value)
	}
	mn, mx := s.Range.Clamp(dmin, math.Ceil(dmax))
	if s.BeginAtZero {
		mn = logFloor
	}
	if mn <= 0 {
		mn = logFloor
	}
	if mx <= 0 {
		mx = logFloor
	}
	s.Min, s.Max = mn, mx
}

func logTicks(s *Scale) []Tick {
	return logGenerateTicks(s.Min, s.Max, s.Range.FixMax)
}

// logGenerateTicks walks the significands of each decade from min up to
// max. Within a decade the significand advances 1 through 9; once a run
// would get too dense the walk jumps to 15 then 20, and past 20 it moves
// up one exponent and restarts at significand 2. The first tick is the
// domain min and the last is the domain max when pinned, or the first
// walk value at or beyond max otherwise.
func logGenerateTicks(min, max float64, maxSet bool) []Tick {
	if min >= max {
		return []Tick{
			{Value: min, Major: isPowerOfTen(min)},
			{Value: max, Major: isPowerOfTen(max)},
		}
	}

	minExp := math.Floor(math.Log10(min))
	exp := startExp(min, max)
	precision := 1.0
	if exp < 0 {
		precision = math.Pow(10, math.Abs(exp))
	}
	stepSize := math.Pow(10, exp)
	base := 0.0
	if minExp > exp {
		base = math.Pow(10, minExp)
	}
	start := math.Round((min-base)*precision) / precision
	offset := math.Floor((min-base)/stepSize/10) * stepSize * 10
	significand := math.Floor((start - offset) / stepSize)
	value := math.Round((base+offset+significand*math.Pow(10, exp))*precision) / precision

	var ticks []Tick
	for value < max {
		ticks = append(ticks, Tick{
			Value:       value,
			Major:       isPowerOfTen(value),
			Significand: int(significand),
		})
		if significand >= 10 {
			if significand < 15 {
				significand = 15
			} else {
				significand = 20
			}
		} else {
			significand++
		}
		if significand >= 20 {
			exp++
			significand = 2
			if exp >= 0 {
				precision = 1
			}
		}
		value = math.Round((base+offset+significand*math.Pow(10, exp))*precision) / precision
	}
	last := value
	if maxSet {
		last = max
	}
	ticks = append(ticks, Tick{
		Value:       last,
		Major:       isPowerOfTen(last),
		Significand: int(significand),
	})
	return ticks
}

// startExp returns the exponent of the significand step size: the
// largest power of ten stepping the domain in at least 10 increments,
// never larger than the decade of the minimum.
func startExp(min, max float64) float64 {
	rangeExp := math.Floor(math.Log10(max - min))
	for decadeSteps(min, max, rangeExp) > 10 {
		rangeExp++
	}
	for decadeSteps(min, max, rangeExp) < 10 {
		rangeExp--
	}
	return math.Min(rangeExp, math.Floor(math.Log10(min)))
}

// decadeSteps is the number of steps of size 10^exp covering min to max.
func decadeSteps(min, max, exp float64) float64 {
	step := math.Pow(10, exp)
	return math.Ceil(max/step) - math.Floor(min/step)
}

// isPowerOfTen reports whether v is an exact positive power of ten.
// Log10 of an exact power can land a hair under the true exponent,
// so the check goes through the rounded exponent instead of a floor.
func isPowerOfTen(v float64) bool {
	return v > 0 && v == math.Pow(10, math.Round(math.Log10(v)))
}

func logDecimal(s *Scale, v float64) float64 {
	if v == 0 {
		v = s.Min
	}
	if math.IsNaN(v) {
		return math.NaN()
	}
	if v == s.Min {
		return 0
	}
	start := math.Log10(s.Min)
	logRange := math.Log10(s.Max) - start
	if logRange == 0 {
		return 0
	}
	return (math.Log10(v) - start) / logRange
}

func logPixel(s *Scale, v float64) float32 {
	if v == 0 {
		v = s.Min
	}
	if math.IsNaN(v) {
		return float32(math.NaN())
	}
	if v == s.Min {
		return s.PixelForDecimal(0)
	}
	start := math.Log10(s.Min)
	logRange := math.Log10(s.Max) - start
	if logRange == 0 {
		return 0
	}
	return s.PixelForDecimal((math.Log10(v) - start) / logRange)
}

func logValue(s *Scale, px float32) float64 {
	start := math.Log10(s.Min)
	logRange := math.Log10(s.Max) - start
	return math.Pow(10, start+s.DecimalForPixel(px)*logRange)
}
