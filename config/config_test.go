// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image"
	"path/filepath"
	"testing"

	"cogentcore.org/chart/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickVals(ticks []scale.Tick) []float64 {
	vals := make([]float64, len(ticks))
	for i, tk := range ticks {
		vals[i] = tk.Value
	}
	return vals
}

func TestOpenTOML(t *testing.T) {
	ch, err := Open("testdata/chart.toml")
	require.NoError(t, err)
	assert.Equal(t, "en", ch.Locale)
	require.Contains(t, ch.Scales, "x")
	require.Contains(t, ch.Scales, "y")

	scales, err := ch.Resolve()
	require.NoError(t, err)

	x := scales["x"]
	require.NotNil(t, x)
	assert.Equal(t, scale.Linear, x.Kind)
	assert.Equal(t, scale.Horizontal, x.Orientation)
	assert.True(t, x.Range.FixMin)
	assert.True(t, x.Range.FixMax)
	assert.Equal(t, 5.0, x.Ticks.Step)
	assert.Equal(t, "en", x.Locale)

	x.Box = image.Rect(0, 0, 600, 40)
	x.ResolveRange()
	assert.Equal(t, []float64{0, 5, 10, 15, 20, 23}, tickVals(x.BuildTicks()))

	y := scales["y"]
	require.NotNil(t, y)
	assert.Equal(t, scale.Logarithmic, y.Kind)
	assert.Equal(t, scale.Vertical, y.Orientation)
	assert.True(t, y.BeginAtZero)
	assert.Equal(t, scale.BoundsData, y.Bounds)
}

func TestOpenYAML(t *testing.T) {
	ch, err := Open("testdata/chart.yaml")
	require.NoError(t, err)
	assert.Equal(t, "de", ch.Locale)

	scales, err := ch.Resolve()
	require.NoError(t, err)

	x := scales["x1"]
	require.NotNil(t, x)
	assert.Equal(t, scale.Linear, x.Kind)
	assert.Equal(t, 0.1, x.Grace)
	assert.True(t, x.GracePercent)
	assert.Equal(t, 6, x.Ticks.MaxTicksLimit)

	y := scales["y1"]
	require.NotNil(t, y)
	assert.Equal(t, scale.Logarithmic, y.Kind)
	assert.Equal(t, scale.Vertical, y.Orientation)
	assert.True(t, y.Range.FixMax)
	assert.Equal(t, 1000.0, y.Range.Max)
}

func TestOpenBadExtension(t *testing.T) {
	_, err := Open("testdata/chart.csv")
	assert.ErrorContains(t, err, "extension")
}

func TestSaveRoundTrip(t *testing.T) {
	mx := 100.0
	prec := 2
	ch := &Chart{
		Locale: "en",
		Scales: map[string]*Scale{
			"x": {Max: &mx, Ticks: Ticks{Precision: &prec}},
			"y": {Type: "logarithmic", Bounds: "data"},
		},
	}
	for _, fname := range []string{"chart.toml", "chart.yaml", "chart.json"} {
		path := filepath.Join(t.TempDir(), fname)
		require.NoError(t, Save(ch, path))
		got, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, ch, got, fname)
	}
}

func TestResolveErrors(t *testing.T) {
	ch := &Chart{Scales: map[string]*Scale{
		"x": {Type: "cubic"},
		"y": {Bounds: "diagonal"},
		"r": {},
	}}
	scales, err := ch.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cubic")
	assert.Contains(t, err.Error(), "diagonal")
	assert.Contains(t, err.Error(), "position")
	assert.Empty(t, scales)

	// valid axes still resolve alongside failing ones
	ch = &Chart{Scales: map[string]*Scale{
		"x": {},
		"zed": {},
	}}
	scales, err = ch.Resolve()
	assert.Error(t, err)
	assert.Contains(t, scales, "x")
}

func TestResolvePositions(t *testing.T) {
	s, err := (&Scale{Position: "top"}).Resolve("y", "")
	require.NoError(t, err)
	assert.Equal(t, scale.Horizontal, s.Orientation)

	s, err = (&Scale{Position: "right"}).Resolve("value", "")
	require.NoError(t, err)
	assert.Equal(t, scale.Vertical, s.Orientation)

	_, err = (&Scale{Position: "middle"}).Resolve("x", "")
	assert.Error(t, err)
}

func TestParseGrace(t *testing.T) {
	v, p, err := parseGrace("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.False(t, p)

	v, p, err = parseGrace("5%")
	require.NoError(t, err)
	assert.Equal(t, 0.05, v)
	assert.True(t, p)

	v, p, err = parseGrace("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	assert.False(t, p)

	_, _, err = parseGrace("abc")
	assert.Error(t, err)
	_, _, err = parseGrace("x%")
	assert.Error(t, err)
}
