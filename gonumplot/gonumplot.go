// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonumplot adapts chart scales to gonum plot axes, so that a
// [plot.Plot] can use the scales' tick generation and domains.
package gonumplot

import (
	"cogentcore.org/chart/scale"
	"gonum.org/v1/plot"
)

// Ticker generates plot ticks from a scale.
// It implements [plot.Ticker].
type Ticker struct {

	// Scale supplies the tick generation and label formatting.
	Scale *scale.Scale
}

var _ plot.Ticker = Ticker{}

// Ticks returns the scale's ticks for the given domain. Minor
// logarithmic ticks get empty labels, which gonum plot draws as
// unlabeled minor marks. The scale's own extent is left unchanged.
func (tk Ticker) Ticks(min, max float64) []plot.Tick {
	s := tk.Scale
	omin, omax := s.Extent()
	s.SetExtent(min, max)
	ticks := s.BuildTicks()
	s.SetExtent(omin, omax)

	out := make([]plot.Tick, len(ticks))
	for i, t := range ticks {
		label := s.LabelForValue(t.Value)
		if s.Kind == scale.Logarithmic && !t.Major {
			label = ""
		}
		out[i] = plot.Tick{Value: t.Value, Label: label}
	}
	return out
}

// SetAxis installs the scale's domain and ticker on the given axis,
// with a log normalizer for logarithmic scales. Call after
// [scale.Scale.BuildTicks] so the axis and the ticks agree.
func SetAxis(ax *plot.Axis, s *scale.Scale) {
	ax.Min, ax.Max = s.Extent()
	ax.Tick.Marker = Ticker{Scale: s}
	if s.Kind == scale.Logarithmic {
		ax.Scale = plot.LogScale{}
	} else {
		ax.Scale = plot.LinearScale{}
	}
}
