// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Tick is one generated axis tick.
type Tick struct {

	// Value is the tick position in data units.
	Value float64

	// Major marks ticks at exact powers of ten on logarithmic scales.
	// Linear scales generate minor ticks only.
	Major bool

	// Significand is the leading digit factor of the tick value on
	// logarithmic scales (1 through 9 within a decade, then 15 and 20
	// at the coarsening steps). It is 0 on linear scales.
	Significand int
}
