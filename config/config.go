// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config declares the chart configuration schema, loads it from
// TOML, YAML, or JSON files, and resolves it into live scales.
package config

//go:generate core generate

import (
	"strconv"
	"strings"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/scale"
)

// Positions is the chart edge an axis is drawn on.
type Positions int32 //enums:enum

const (
	// Bottom is a horizontal axis under the plot area.
	Bottom Positions = iota

	// Left is a vertical axis at the left edge.
	Left

	// Top is a horizontal axis above the plot area.
	Top

	// Right is a vertical axis at the right edge.
	Right
)

// Chart is the top level chart configuration.
type Chart struct {

	// Locale is a BCP 47 tag applied to every scale for tick label
	// formatting. Empty means plain formatting.
	Locale string

	// Scales configures each axis by name. Names starting with x
	// default to bottom axes and names starting with y to left axes.
	Scales map[string]*Scale
}

// Scale configures one axis.
type Scale struct {

	// Type is the scale kind name, linear or logarithmic.
	// Empty means linear.
	Type string

	// Position is the chart edge name: bottom, left, top, or right.
	// Empty derives the edge from the axis name.
	Position string

	// Min pins the lower end of the domain.
	Min *float64

	// Max pins the upper end of the domain.
	Max *float64

	// SuggestedMin widens the data-derived minimum without pinning it.
	SuggestedMin *float64

	// SuggestedMax widens the data-derived maximum without pinning it.
	SuggestedMax *float64

	// BeginAtZero extends the domain to include zero.
	BeginAtZero bool

	// Grace is the padding beyond the data bounds: a number for data
	// units, or a percentage string such as "5%".
	Grace string

	// Bounds is the domain snapping policy name, ticks or data.
	// Empty means ticks.
	Bounds string

	// Ticks holds the tick generation options.
	Ticks Ticks
}

// Ticks configures tick generation for one axis.
type Ticks struct {

	// Step is an explicit tick spacing in data units.
	Step float64

	// Count is an explicit number of ticks.
	Count int

	// Precision is the number of decimal places for tick values
	// and labels.
	Precision *int

	// MaxTicksLimit caps the number of generated ticks.
	MaxTicksLimit int

	// IncludeBounds inserts pinned bounds as ticks. Unset means true.
	IncludeBounds *bool

	// MinRotation is the minimum tick label rotation in degrees.
	MinRotation float32

	// SIPrefix formats tick labels with metric prefixes.
	SIPrefix bool
}

// Resolve validates the configuration and returns the live scale for
// each configured axis. It reports all per-axis errors joined together,
// with the valid axes still resolved.
func (ch *Chart) Resolve() (map[string]*scale.Scale, error) {
	scales := make(map[string]*scale.Scale, len(ch.Scales))
	var errs []error
	for name, sc := range ch.Scales {
		s, err := sc.Resolve(name, ch.Locale)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scales[name] = s
	}
	return scales, errors.Join(errs...)
}

// Resolve validates this axis configuration and returns its live scale.
// The axis name supplies the default position, and locale is the chart
// level tick label locale.
func (sc *Scale) Resolve(name string, locale string) (*scale.Scale, error) {
	kindName := sc.Type
	if kindName == "" {
		kindName = "linear"
	}
	var kind scale.Kinds
	if err := kind.SetString(kindName); err != nil {
		return nil, err
	}

	posName := sc.Position
	if posName == "" {
		switch {
		case strings.HasPrefix(name, "x"):
			posName = "bottom"
		case strings.HasPrefix(name, "y"):
			posName = "left"
		default:
			return nil, errors.Errorf("config: scale %q needs an explicit position", name)
		}
	}
	var pos Positions
	if err := pos.SetString(posName); err != nil {
		return nil, err
	}
	orient := scale.Horizontal
	if pos == Left || pos == Right {
		orient = scale.Vertical
	}

	s, err := scale.New(kind, orient)
	if err != nil {
		return nil, err
	}
	if sc.Min != nil {
		s.Range.SetMin(*sc.Min)
	}
	if sc.Max != nil {
		s.Range.SetMax(*sc.Max)
	}
	if sc.SuggestedMin != nil {
		s.SuggestedMin.Set(*sc.SuggestedMin)
	}
	if sc.SuggestedMax != nil {
		s.SuggestedMax.Set(*sc.SuggestedMax)
	}
	s.BeginAtZero = sc.BeginAtZero
	grace, percent, err := parseGrace(sc.Grace)
	if err != nil {
		return nil, err
	}
	s.Grace = grace
	s.GracePercent = percent
	if sc.Bounds != "" {
		if err := s.Bounds.SetString(sc.Bounds); err != nil {
			return nil, err
		}
	}
	s.Locale = locale

	t := &s.Ticks
	t.Step = sc.Ticks.Step
	t.Count = sc.Ticks.Count
	if sc.Ticks.Precision != nil {
		t.Precision.Set(*sc.Ticks.Precision)
	}
	t.MaxTicksLimit = sc.Ticks.MaxTicksLimit
	if sc.Ticks.IncludeBounds != nil {
		t.IncludeBounds = *sc.Ticks.IncludeBounds
	}
	t.MinRotation = sc.Ticks.MinRotation
	t.SIPrefix = sc.Ticks.SIPrefix
	return s, nil
}

// parseGrace parses a grace amount: empty for none, a plain number for
// data units, or a percentage string for a fraction of the half range.
func parseGrace(g string) (val float64, percent bool, err error) {
	g = strings.TrimSpace(g)
	if g == "" {
		return 0, false, nil
	}
	if p, ok := strings.CutSuffix(g, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, false, errors.Errorf("config: invalid grace percentage %q: %w", g, err)
		}
		return f / 100, true, nil
	}
	f, err := strconv.ParseFloat(g, 64)
	if err != nil {
		return 0, false, errors.Errorf("config: invalid grace %q: %w", g, err)
	}
	return f, false, nil
}
