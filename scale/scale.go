// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale implements the numeric axis scales for charting:
// resolution of the plotted domain from data and user bounds, linear
// nice-number and logarithmic decade tick generation, value to pixel
// mapping within an axis box, and zoom / pan extent recomputation.
package scale

//go:generate core generate

import (
	"image"
	"log/slog"
	"math"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/base/option"
	"cogentcore.org/chart/minmax"
	"github.com/chewxy/math32"
	"golang.org/x/text/message"
)

// Kinds is the set of scale variants. The kind of a [Scale] is fixed at
// construction and selects its tick generation and mapping behavior.
type Kinds int32 //enums:enum

const (
	// Linear maps values to pixels proportionally, with ticks at
	// nice round-number intervals.
	Linear Kinds = iota

	// Logarithmic maps values to pixels by their base 10 logarithm,
	// with ticks following the decade structure of the domain.
	Logarithmic
)

// Orientations is the direction of the axis a scale maps onto.
type Orientations int32 //enums:enum

const (
	// Horizontal runs left to right across the box.
	Horizontal Orientations = iota

	// Vertical runs bottom to top: decimal position 0 is the
	// bottom edge of the box.
	Vertical
)

// BoundsPolicies controls how the final plotted domain relates to the
// generated ticks.
type BoundsPolicies int32 //enums:enum -trim-prefix Bounds

const (
	// BoundsTicks snaps the domain to the outermost generated ticks.
	BoundsTicks BoundsPolicies = iota

	// BoundsData keeps the domain exactly on the resolved data bounds.
	BoundsData
)

const (
	// defaultMaxTicks is the tick count limit when neither an explicit
	// step nor an explicit limit constrains generation.
	defaultMaxTicks = 11

	// maxTickCount is the hard cap on generated ticks when an explicit
	// step would produce a runaway count.
	maxTickCount = 1000

	// defaultFontHeight is the assumed tick label line height in pixels,
	// used to derive tick and digit budgets from the box size.
	defaultFontHeight = 16
)

// Scale maps a data domain onto a pixel axis and generates the ticks
// used to draw it. Construct with [New], set the Data, Range, Box, and
// option fields, then call [Scale.ResolveRange] followed by
// [Scale.BuildTicks] before using the mapping methods. After any
// [Scale.SetExtent] or [Scale.Reset], call BuildTicks again before
// interpreting the mapping against the new domain.
// A Scale is not safe for concurrent use.
type Scale struct {

	// Kind is the scale variant, fixed at construction.
	Kind Kinds

	// Orientation is the axis direction, fixed at construction.
	Orientation Orientations

	// Min is the live lower end of the plotted domain.
	Min float64

	// Max is the live upper end of the plotted domain.
	Max float64

	// Data is the domain implied by the plotted series, as computed by
	// [cogentcore.org/chart/series.Ranges] over their finite points.
	Data minmax.F64

	// Range optionally pins either end of the domain to a fixed value,
	// overriding the data bounds on that end.
	Range minmax.Range64

	// BeginAtZero extends the resolved domain to include zero
	// (0.1 for logarithmic scales).
	BeginAtZero bool

	// SuggestedMin widens the data-derived minimum on an unpinned end;
	// it never narrows the domain.
	SuggestedMin option.Option[float64]

	// SuggestedMax widens the data-derived maximum on an unpinned end;
	// it never narrows the domain.
	SuggestedMax option.Option[float64]

	// Grace adds padding beyond each unpinned data bound on linear
	// scales, either as an absolute amount or, with GracePercent,
	// as a fraction of the half range.
	Grace float64

	// GracePercent interprets Grace as a fraction instead of an
	// absolute amount.
	GracePercent bool

	// Bounds selects whether the final domain snaps to the generated
	// ticks or stays exactly on the resolved data bounds.
	Bounds BoundsPolicies

	// Ticks holds the tick generation options.
	Ticks TickOptions

	// Box is the axis drawing box in pixels.
	Box image.Rectangle

	// Locale is a BCP 47 tag selecting locale-aware label formatting.
	// Empty means plain formatting.
	Locale string

	// Formatter, if non-nil, overrides all label formatting.
	Formatter func(v float64) string

	fn      *scaleFuncs
	printer *message.Printer
}

// scaleFuncs is the capability set of a scale kind, selected once at
// construction time.
type scaleFuncs struct {
	resolveRange func(s *Scale)
	buildTicks   func(s *Scale) []Tick
	label        func(s *Scale, v float64) string
	decimal      func(s *Scale, v float64) float64
	pixel        func(s *Scale, v float64) float32
	value        func(s *Scale, px float32) float64
}

var kindFuncs = [KindsN]scaleFuncs{
	Linear: {
		resolveRange: linearResolveRange,
		buildTicks:   linearTicks,
		label:        linearLabel,
		decimal:      linearDecimal,
		pixel:        linearPixel,
		value:        linearValue,
	},
	Logarithmic: {
		resolveRange: logResolveRange,
		buildTicks:   logTicks,
		label:        logLabel,
		decimal:      logDecimal,
		pixel:        logPixel,
		value:        logValue,
	},
}

// New returns a new [Scale] of the given kind and orientation.
// It returns an error for any kind or orientation outside the
// supported sets.
func New(kind Kinds, orient Orientations) (*Scale, error) {
	if kind < 0 || kind >= KindsN {
		return nil, errors.Errorf("scale: unsupported kind %d", kind)
	}
	if orient < 0 || orient >= OrientationsN {
		return nil, errors.Errorf("scale: unsupported orientation %d", orient)
	}
	s := &Scale{Kind: kind, Orientation: orient}
	s.Defaults()
	s.fn = &kindFuncs[kind]
	return s, nil
}

// Defaults sets standard option values.
func (s *Scale) Defaults() {
	s.Ticks.Defaults()
}

func (s *Scale) funcs() *scaleFuncs {
	if s.fn == nil {
		s.fn = &kindFuncs[s.Kind]
	}
	return s.fn
}

// ResolveRange resolves the live Min / Max domain from the Data bounds,
// the pinned Range ends, and the BeginAtZero, Suggested, and Grace
// options, per the scale kind. It always leaves Min <= Max.
func (s *Scale) ResolveRange() {
	s.funcs().resolveRange(s)
	mn, mx := s.Min, s.Max
	s.Min = math.Min(mn, mx)
	s.Max = math.Max(mn, mx)
}

// BuildTicks generates the ordered tick sequence for the current domain.
// Under the [BoundsTicks] policy it also snaps the domain to the
// outermost generated ticks, so that the tick grid spans the full axis.
func (s *Scale) BuildTicks() []Tick {
	ticks := s.funcs().buildTicks(s)
	if s.Bounds == BoundsTicks && len(ticks) > 0 {
		s.Min = ticks[0].Value
		s.Max = ticks[len(ticks)-1].Value
	}
	return ticks
}

// LabelForValue returns the formatted label for the given tick value.
// See [Scale.Formatter], [Scale.Locale], and [TickOptions] for the
// formatting controls.
func (s *Scale) LabelForValue(v float64) string {
	return s.funcs().label(s, v)
}

// Extent returns the current live domain.
func (s *Scale) Extent() (min, max float64) {
	return s.Min, s.Max
}

// SetExtent sets the live domain directly, as in a zoom or pan update.
// Call [Scale.BuildTicks] before the next mapping use.
func (s *Scale) SetExtent(min, max float64) {
	s.Min, s.Max = min, max
}

// Reset restores the domain from the Data and Range inputs, undoing any
// [Scale.SetExtent], [Scale.ZoomAt], or [Scale.PanBy].
func (s *Scale) Reset() {
	s.ResolveRange()
}

// PixelForDecimal returns the pixel position of a normalized 0-1 domain
// position within the drawing box. Horizontal scales run left to right
// and vertical scales bottom to top.
func (s *Scale) PixelForDecimal(d float64) float32 {
	if s.Orientation == Horizontal {
		return float32(float64(s.Box.Min.X) + d*float64(s.Box.Dx()))
	}
	return float32(float64(s.Box.Max.Y) - d*float64(s.Box.Dy()))
}

// DecimalForPixel is the inverse of [Scale.PixelForDecimal].
// A zero-size box returns 0.
func (s *Scale) DecimalForPixel(px float32) float64 {
	if s.Orientation == Horizontal {
		w := float64(s.Box.Dx())
		if w == 0 {
			return 0
		}
		return (float64(px) - float64(s.Box.Min.X)) / w
	}
	h := float64(s.Box.Dy())
	if h == 0 {
		return 0
	}
	return (float64(s.Box.Max.Y) - float64(px)) / h
}

// DecimalForValue returns the normalized 0-1 domain position of the
// given value under the kind's transform. NaN input returns NaN.
func (s *Scale) DecimalForValue(v float64) float64 {
	return s.funcs().decimal(s, v)
}

// PixelForValue returns the pixel position of the given value.
// A zero-width domain returns pixel 0, and NaN input returns NaN,
// so that drawing code can skip the point.
func (s *Scale) PixelForValue(v float64) float32 {
	return s.funcs().pixel(s, v)
}

// ValueForPixel returns the domain value at the given pixel position,
// as the inverse of [Scale.PixelForValue]. A zero-width domain
// returns Min.
func (s *Scale) ValueForPixel(px float32) float64 {
	return s.funcs().value(s, px)
}

// dataBounds returns the data-implied domain bounds, falling back on the
// given defaults when the data range is empty or not finite.
func (s *Scale) dataBounds(defMin, defMax float64) (float64, float64) {
	d := s.Data
	if !d.IsValid() || math.IsNaN(d.Min) || math.IsNaN(d.Max) ||
		math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) {
		return defMin, defMax
	}
	return d.Min, d.Max
}

// tickLimit returns the maximum number of ticks to generate for the
// current domain. An explicit step implies its own count, hard-capped at
// maxTickCount; otherwise the limit comes from the box size, bounded by
// MaxTicksLimit (default 11).
func (s *Scale) tickLimit() int {
	t := &s.Ticks
	limit := t.MaxTicksLimit
	var mt int
	if t.Step > 0 {
		n := math.Ceil(s.Max/t.Step) - math.Floor(s.Min/t.Step) + 1
		if n > maxTickCount {
			slog.Warn("scale: tick step yields too many ticks, capping",
				"step", t.Step, "ticks", n, "cap", maxTickCount)
			n = maxTickCount
		}
		mt = int(n)
	} else {
		mt = s.boxTickLimit()
		if limit <= 0 {
			limit = defaultMaxTicks
		}
	}
	if limit > 0 {
		mt = min(limit, mt)
	}
	return max(2, mt)
}

// boxTickLimit is the number of ticks that fit in the box, at one tick
// per 40 pixels or one label line height, whichever is tighter given the
// minimum label rotation. An empty box does not constrain the count.
func (s *Scale) boxTickLimit() int {
	length := s.boxLength()
	if length <= 0 {
		return math.MaxInt32
	}
	ratio := rotationRatio(s.Orientation == Horizontal, s.Ticks.MinRotation)
	per := math32.Min(40, defaultFontHeight/ratio)
	return int(math32.Ceil(float32(length) / per))
}

// maxDigits is the tick label character budget implied by the box size,
// used for the boundary label collision tolerance.
func (s *Scale) maxDigits() float64 {
	length := s.boxLength()
	if length <= 0 {
		return 0
	}
	return float64(length) / defaultFontHeight
}

func (s *Scale) boxLength() int {
	if s.Orientation == Horizontal {
		return s.Box.Dx()
	}
	return s.Box.Dy()
}
