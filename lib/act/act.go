// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package act implements the ACT (Adobe Color Table) palette file format.
//
// An ACT file is 256 R, G, B byte triples, with no header. Later versions of
// Photoshop may append a 4 byte trailer: a big-endian uint16 color count and a
// big-endian uint16 transparent color index (0xFFFF for none).
package act

import (
	"errors"
	"image/color"
	"io"
)

const (
	// NumColors is the number of palette entries stored in every ACT file.
	NumColors = 256

	// Size is the length of an ACT file without the trailer.
	Size = 3 * NumColors

	// ExtendedSize is the length of an ACT file with the trailer.
	ExtendedSize = Size + 4

	noTransparentIndex = 0xFFFF
)

var (
	ErrBadArgument  = errors.New("act: bad argument")
	ErrNotAnACTFile = errors.New("act: not an ACT file")
)

// Decode reads an ACT palette from r.
//
// Without a trailer, the palette has 256 opaque colors. With one, it has the
// trailer's count of colors and the transparent entry, if any, has zero
// alpha.
func Decode(r io.Reader) (color.Palette, error) {
	buf, err := io.ReadAll(io.LimitReader(r, ExtendedSize+1))
	if err != nil {
		return nil, err
	}

	n, transparent := NumColors, noTransparentIndex
	switch len(buf) {
	case Size:
		// No-op.
	case ExtendedSize:
		n = (int(buf[Size+0]) << 8) | int(buf[Size+1])
		transparent = (int(buf[Size+2]) << 8) | int(buf[Size+3])
		if (n == 0) || (n > NumColors) ||
			((transparent != noTransparentIndex) && (transparent >= n)) {
			return nil, ErrNotAnACTFile
		}
	default:
		return nil, ErrNotAnACTFile
	}

	ret := make(color.Palette, n)
	for i := range ret {
		alpha := uint8(0xFF)
		if i == transparent {
			alpha = 0x00
		}
		ret[i] = color.NRGBA{buf[3*i+0], buf[3*i+1], buf[3*i+2], alpha}
	}
	return ret, nil
}

// EncodeOptions are optional arguments to Encode. The zero value is valid and
// means to use the default configuration.
type EncodeOptions struct {
	// Extended is whether to append the color count and transparent index
	// trailer.
	Extended bool

	// TransparentIndex is only used when Extended and HasTransparent are both
	// set.
	HasTransparent   bool
	TransparentIndex uint8
}

// Encode writes p to w in the ACT format. Palettes with fewer than 256 colors
// are padded with black.
//
// options may be nil, which means to use the default configuration.
func Encode(w io.Writer, p color.Palette, options *EncodeOptions) error {
	if len(p) > NumColors {
		return ErrBadArgument
	}

	buf := [ExtendedSize]byte{}
	for i, c := range p {
		nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
		buf[3*i+0] = nrgba.R
		buf[3*i+1] = nrgba.G
		buf[3*i+2] = nrgba.B
	}

	if (options == nil) || !options.Extended {
		_, err := w.Write(buf[:Size])
		return err
	}

	if len(p) == 0 {
		return ErrBadArgument
	}
	transparent := noTransparentIndex
	if options.HasTransparent {
		if int(options.TransparentIndex) >= len(p) {
			return ErrBadArgument
		}
		transparent = int(options.TransparentIndex)
	}
	buf[Size+0] = uint8(len(p) >> 8)
	buf[Size+1] = uint8(len(p) >> 0)
	buf[Size+2] = uint8(transparent >> 8)
	buf[Size+3] = uint8(transparent >> 0)
	_, err := w.Write(buf[:])
	return err
}
