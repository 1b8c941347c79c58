// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "cogentcore.org/chart/base/option"

// TickOptions are the options controlling tick generation and labeling
// on a [Scale].
type TickOptions struct {

	// Step is an explicit spacing between ticks, in data units.
	// It is a hint: generation coarsens it when the implied count
	// exceeds the limits. 0 means automatic spacing.
	Step float64

	// Count is an explicit number of ticks, dividing the nice domain
	// equally. 0 means automatic.
	Count int

	// Precision is the number of decimal places used to round tick
	// values and format labels. Unset derives it from the tick spacing.
	Precision option.Option[int]

	// MaxTicksLimit caps the number of generated ticks.
	// 0 applies the default limit of 11 when no explicit Step is set.
	MaxTicksLimit int

	// IncludeBounds inserts pinned domain bounds as ticks, displacing a
	// nearly coincident neighboring tick instead of duplicating it.
	IncludeBounds bool `default:"true"`

	// MinRotation is the minimum tick label rotation in degrees. It
	// enters the label collision tolerance for bound ticks and the
	// per-box tick count limit.
	MinRotation float32

	// SIPrefix formats tick labels with metric prefixes (k, M, µ).
	SIPrefix bool
}

// Defaults sets standard options.
func (to *TickOptions) Defaults() {
	to.IncludeBounds = true
}
