// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/base/iox/jsonx"
	"cogentcore.org/chart/base/iox/tomlx"
	"cogentcore.org/chart/base/iox/yamlx"
)

// Open loads a chart configuration from the given file, with the format
// chosen by the extension: .toml, .yaml, .yml, or .json.
func Open(filename string) (*Chart, error) {
	ch := &Chart{}
	var err error
	switch filepath.Ext(filename) {
	case ".toml":
		err = tomlx.Open(ch, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(ch, filename)
	case ".json":
		err = jsonx.Open(ch, filename)
	default:
		err = errors.Errorf("config: unrecognized config file extension %q", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// Save writes a chart configuration to the given file, with the format
// chosen by the extension, as in [Open].
func Save(ch *Chart, filename string) error {
	switch filepath.Ext(filename) {
	case ".toml":
		return tomlx.Save(ch, filename)
	case ".yaml", ".yml":
		return yamlx.Save(ch, filename)
	case ".json":
		return jsonx.Save(ch, filename)
	}
	return errors.Errorf("config: unrecognized config file extension %q", filepath.Ext(filename))
}
