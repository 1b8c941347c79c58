// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads and writes any object to and from YAML.
package yamlx

import (
	"io"
	"os"

	"cogentcore.org/chart/base/iox"
	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given filename in YAML format.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(yaml.NewDecoder))
}

// Read reads the given object from the given reader in YAML format.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(yaml.NewDecoder))
}

// ReadBytes reads the given object from the given bytes in YAML format.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(yaml.NewDecoder))
}

// Save writes the given object to the given filename in YAML format.
// The yaml package encoder needs a final close to flush, so this does not
// go through an [iox.EncoderFunc].
func Save(v any, filename string) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// WriteBytes writes the given object to bytes in YAML format.
func WriteBytes(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
