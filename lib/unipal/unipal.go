// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package unipal generates a fixed 256 color uniform palette, suitable for
// showing truecolor or hicolor images on an 8 bit indexed color display.
//
// The palette is an 8×8×4 RGB cube (3 bits red, 3 bits green and 2 bits blue
// per index, the same bit layout as RGB332). Blue is rescaled so that a few
// cube entries are true greys. Every non-grey entry is then softened by
// blending each channel towards a luma normalized product of the other two,
// and finally passed through per-channel gamma tables (see package gamma).
//
// All float to byte conversions truncate towards zero. Entries are stored as
// 32-bit floats with 64-bit intermediates, so that the output is bit-for-bit
// identical to existing palette files.
package unipal

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/cespare/xxhash"
	"github.com/uniformpal/unipal/lib/gamma"
)

// NumEntries is the number of palette entries.
const NumEntries = 256

// DefaultInterpolation is the weight given to a channel's own value when
// blending. The other channels' product gets 1 minus that.
const DefaultInterpolation = 0.86

// blueDivisor is 3.5 and not 3, for grey compensation. Blue has 2 bits of
// range (versus 3 for red and green), so 7.0/2 lines blue index b up with
// red and green index 2*b.
const blueDivisor = 3.5

var (
	ErrBadArgument = errors.New("unipal: bad argument")
)

// ChromaOverflowError is returned when blending pushes a channel above 255.
//
// It means that the blend weight does not suit the cube geometry. It is never
// clamped.
type ChromaOverflowError struct {
	Index int

	// R, G and B are the cube values before blending.
	R, G, B float32

	BlendedR, BlendedG, BlendedB float32

	Luma float32
}

func (e *ChromaOverflowError) Error() string {
	return fmt.Sprintf("unipal: color overflow at index %d: r,g,b = %f %f %f (%f %f %f, %f)",
		e.Index, e.R, e.G, e.B, e.BlendedR, e.BlendedG, e.BlendedB, e.Luma)
}

// Entry is one palette entry's color. Each channel is nominally in [0, 255].
type Entry struct {
	R, G, B float32
}

// IsGrey returns whether all three channels are equal.
func (e Entry) IsGrey() bool {
	return (e.R == e.G) && (e.G == e.B)
}

// RGB returns the channels truncated to bytes.
func (e Entry) RGB() (r uint8, g uint8, b uint8) {
	return uint8(e.R), uint8(e.G), uint8(e.B)
}

// CubeCoordinates splits a palette index into its 3 bit red, 3 bit green and
// 2 bit blue cube coordinates.
func CubeCoordinates(index uint8) (r int, g int, b int) {
	return int(index>>5) & 0x07, int(index>>2) & 0x07, int(index>>0) & 0x03
}

// Quantize returns the un-blended cube color for a palette index.
func Quantize(index uint8) Entry {
	r, g, b := CubeCoordinates(index)
	return Entry{
		R: float32(float64(r) * 255.0 / 7.0),
		G: float32(float64(g) * 255.0 / 7.0),
		B: float32(float64(b) * 255.0 / blueDivisor),
	}
}

// Luma returns the BT.601 weighted brightness of e, or 1 if that is zero.
func Luma(e Entry) float32 {
	// The explicit float64 conversions prevent fused multiply-adds.
	luma := float32(float64(float64(e.R)*gamma.RedWeight) +
		float64(float64(e.G)*gamma.GreenWeight) +
		float64(float64(e.B)*gamma.BlueWeight))
	if luma == 0 {
		luma = 1.0
	}
	return luma
}

func blendChannel(own float32, other0 float32, other1 float32, luma float32, interpolation float64) float32 {
	cross := other0 * other1 / luma
	return float32(float64(float64(own)*interpolation) +
		float64(float64(cross)*(1.0-interpolation)))
}

// Blend returns e with each channel moved towards the luma normalized product
// of the other two channels. It does not check for overflow.
func Blend(e Entry, interpolation float64) Entry {
	luma := Luma(e)
	return Entry{
		R: blendChannel(e.R, e.G, e.B, luma, interpolation),
		G: blendChannel(e.G, e.R, e.B, luma, interpolation),
		B: blendChannel(e.B, e.R, e.G, luma, interpolation),
	}
}

// Remap turns a cube color into its final (pre white point) color.
//
// Greys are not blended: all three gamma tables are looked up at the grey's
// own value. Other colors are blended and each blended channel is looked up in
// its own table. A blended channel above 255 gives a *ChromaOverflowError.
func Remap(index uint8, e Entry, t *gamma.Table, interpolation float64) (Entry, error) {
	if e.IsGrey() {
		r, g, b := t.Lookup(int(e.R))
		return Entry{float32(r), float32(g), float32(b)}, nil
	}

	m := Blend(e, interpolation)
	if (m.R > 255.0) || (m.G > 255.0) || (m.B > 255.0) {
		return Entry{}, &ChromaOverflowError{
			Index:    int(index),
			R:        e.R,
			G:        e.G,
			B:        e.B,
			BlendedR: m.R,
			BlendedG: m.G,
			BlendedB: m.B,
			Luma:     Luma(e),
		}
	}
	return Entry{
		R: float32(t.R[int(m.R)]),
		G: float32(t.G[int(m.G)]),
		B: float32(t.B[int(m.B)]),
	}, nil
}

// Options are optional arguments to New and Generate. The zero value is valid
// and means to use the default configuration.
type Options struct {
	// If zero, the default is DefaultInterpolation. Otherwise it must be in
	// (0, 1].
	Interpolation float64

	// If nil, the default is gamma.New().
	Gamma *gamma.Table
}

func (o *Options) interpolation() float64 {
	if (o != nil) && (o.Interpolation != 0) {
		return o.Interpolation
	}
	return DefaultInterpolation
}

func (o *Options) gammaTable() *gamma.Table {
	if (o != nil) && (o.Gamma != nil) {
		return o.Gamma
	}
	return gamma.New()
}

// Palette is the 256 entry table, indexed by cube index.
type Palette struct {
	Entries [NumEntries]Entry

	finalized bool
}

// Generate quantizes and remaps every entry, without the final white point
// adjustment.
//
// options may be nil, which means to use the default configuration.
func Generate(options *Options) (*Palette, error) {
	interpolation := options.interpolation()
	if !(interpolation > 0) || (interpolation > 1) {
		return nil, ErrBadArgument
	}
	t := options.gammaTable()

	p := &Palette{}
	for i := 0; i < NumEntries; i++ {
		index := uint8(i)
		e, err := Remap(index, Quantize(index), t, interpolation)
		if err != nil {
			return nil, err
		}
		p.Entries[i] = e
	}
	return p, nil
}

// New returns the finalized palette.
//
// options may be nil, which means to use the default configuration.
func New(options *Options) (*Palette, error) {
	p, err := Generate(options)
	if err != nil {
		return nil, err
	}
	p.Finalize()
	return p, nil
}

// Finalize moves the last entry half way to pure white. It leaves it slightly
// off-white rather than forcing 255, 255, 255.
//
// Calling Finalize more than once has no further effect.
func (p *Palette) Finalize() {
	if p.finalized {
		return
	}
	p.finalized = true
	e := &p.Entries[NumEntries-1]
	e.R = float32((float64(e.R) + 255.0) / 2.0)
	e.G = float32((float64(e.G) + 255.0) / 2.0)
	e.B = float32((float64(e.B) + 255.0) / 2.0)
}

// Finalized returns whether Finalize has been called.
func (p *Palette) Finalized() bool {
	return p.finalized
}

// Bytes returns the palette as 768 bytes: R, G, B for each entry in order.
func (p *Palette) Bytes() []byte {
	b := make([]byte, 0, 3*NumEntries)
	for _, e := range p.Entries {
		r, g, bb := e.RGB()
		b = append(b, r, g, bb)
	}
	return b
}

// ColorPalette returns the palette as opaque color.RGBA values.
func (p *Palette) ColorPalette() color.Palette {
	ret := make(color.Palette, NumEntries)
	for i, e := range p.Entries {
		r, g, b := e.RGB()
		ret[i] = color.RGBA{r, g, b, 0xFF}
	}
	return ret
}

// Fingerprint returns the xxHash64 of Bytes.
func (p *Palette) Fingerprint() uint64 {
	return xxhash.Sum64(p.Bytes())
}
