// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx reads and writes any object to and from JSON.
package jsonx

import (
	"encoding/json"
	"io"
	"os"

	"cogentcore.org/chart/base/iox"
)

// Open reads the given object from the given filename in JSON format.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// Read reads the given object from the given reader in JSON format.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(json.NewDecoder))
}

// ReadBytes reads the given object from the given bytes in JSON format.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(json.NewDecoder))
}

// Save writes the given object to the given filename in indented JSON format.
func Save(v any, filename string) error {
	b, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Write writes the given object to the given writer in JSON format.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(json.NewEncoder))
}

// WriteBytes writes the given object to bytes in indented JSON format.
func WriteBytes(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "\t")
}
