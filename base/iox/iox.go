// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides boilerplate wrapper functions for loading and saving
// any object through standard Decoder and Encoder interfaces, with
// format-specific helpers in the tomlx, yamlx, and jsonx subpackages.
package iox

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Decoder is an interface for standard decoder types.
type Decoder interface {
	// Decode reads the next value from the input stream and stores it
	// in the value pointed to by v.
	Decode(v any) error
}

// DecoderFunc is a function that creates a new [Decoder] for a given reader.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a [DecoderFunc] for a specific decoder type.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// Open reads the given object from the given filename using the given [DecoderFunc].
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// Read reads the given object from the given reader using the given [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}

// ReadBytes reads the given object from the given bytes using the given [DecoderFunc].
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}

// Encoder is an interface for standard encoder types.
type Encoder interface {
	// Encode writes the encoding of v to the stream.
	Encode(v any) error
}

// EncoderFunc is a function that creates a new [Encoder] for a given writer.
type EncoderFunc func(w io.Writer) Encoder

// NewEncoderFunc returns an [EncoderFunc] for a specific encoder type.
func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

// Save writes the given object to the given filename using the given [EncoderFunc].
func Save(v any, filename string, f EncoderFunc) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given object to the given writer using the given [EncoderFunc].
func Write(v any, writer io.Writer, f EncoderFunc) error {
	e := f(writer)
	return e.Encode(v)
}

// WriteBytes writes the given object to bytes using the given [EncoderFunc].
func WriteBytes(v any, f EncoderFunc) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b, f)
	return b.Bytes(), err
}
