// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gochart adapts chart scales to the go-chart rendering
// library, supplying its axes with scale domains and generated ticks.
package gochart

import (
	"fmt"
	"math"

	"cogentcore.org/chart/scale"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Range adapts a [scale.Scale] to the go-chart Range interface, so an
// axis can use the scale's domain and transform, including the
// logarithmic one. It implements [chart.Range].
type Range struct {

	// Scale supplies the domain and the value transform.
	Scale *scale.Scale

	domain      int
	description string
}

var _ chart.Range = (*Range)(nil)

// NewRange returns a Range backed by the given scale.
func NewRange(s *scale.Scale) *Range {
	return &Range{Scale: s}
}

// GetMin returns the lower end of the scale domain.
func (r *Range) GetMin() float64 { return r.Scale.Min }

// SetMin sets the lower end of the scale domain.
func (r *Range) SetMin(min float64) { r.Scale.Min = min }

// GetMax returns the upper end of the scale domain.
func (r *Range) GetMax() float64 { return r.Scale.Max }

// SetMax sets the upper end of the scale domain.
func (r *Range) SetMax(max float64) { r.Scale.Max = max }

// GetDelta returns the width of the scale domain.
func (r *Range) GetDelta() float64 { return r.Scale.Max - r.Scale.Min }

// GetDomain returns the pixel length of the axis.
func (r *Range) GetDomain() int { return r.domain }

// SetDomain sets the pixel length of the axis.
func (r *Range) SetDomain(domain int) { r.domain = domain }

// GetDescription returns the axis description.
func (r *Range) GetDescription() string { return r.description }

// SetDescription sets the axis description.
func (r *Range) SetDescription(description string) { r.description = description }

// IsZero reports whether the range has not been set.
func (r *Range) IsZero() bool {
	return r.Scale.Min == r.Scale.Max && r.domain == 0
}

// IsDescending reports whether the range runs high to low. Scales
// always run low to high, with the renderer flipping vertical axes.
func (r *Range) IsDescending() bool { return false }

// Translate maps a value to its pixel offset within the domain, using
// the scale kind's transform.
func (r *Range) Translate(value float64) int {
	d := r.Scale.DecimalForValue(value)
	return int(math.Ceil(d * float64(r.domain)))
}

// String returns a terse description of the range for debugging.
func (r *Range) String() string {
	return fmt.Sprintf("ScaleRange [%.2f,%.2f] => %d", r.Scale.Min, r.Scale.Max, r.domain)
}

// Ticks returns the scale's generated ticks as go-chart ticks, with
// labels from the scale's formatting options. Minor logarithmic ticks
// get empty labels.
func Ticks(s *scale.Scale) []chart.Tick {
	ticks := s.BuildTicks()
	out := make([]chart.Tick, len(ticks))
	for i, tk := range ticks {
		label := s.LabelForValue(tk.Value)
		if s.Kind == scale.Logarithmic && !tk.Major {
			label = ""
		}
		out[i] = chart.Tick{Value: tk.Value, Label: label}
	}
	return out
}
