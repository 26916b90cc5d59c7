// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package swatch

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"
)

func testPalette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.RGBA{uint8(i), uint8(255 - i), uint8(i * 7), 0xFF}
	}
	return p
}

func TestNew(tt *testing.T) {
	p := testPalette()
	m, err := New(p, 4)
	if err != nil {
		tt.Fatalf("New: %v", err)
	}
	if got, want := m.Bounds(), image.Rect(0, 0, 64, 64); got != want {
		tt.Fatalf("bounds: got %v, want %v", got, want)
	}
	for k := range p {
		x, y := (k%Columns)*4+3, (k/Columns)*4+3
		if got := m.ColorIndexAt(x, y); got != uint8(k) {
			tt.Errorf("k=%d: got index %d", k, got)
		}
	}
}

func TestPartialRow(tt *testing.T) {
	m, err := New(testPalette()[:17], 2)
	if err != nil {
		tt.Fatalf("New: %v", err)
	}
	if got, want := m.Bounds(), image.Rect(0, 0, 32, 4); got != want {
		tt.Fatalf("bounds: got %v, want %v", got, want)
	}
	if got := m.ColorIndexAt(0, 3); got != 16 {
		tt.Fatalf("got index %d, want 16", got)
	}
}

func TestEncodeBMP(tt *testing.T) {
	p := testPalette()
	buf := &bytes.Buffer{}
	if err := EncodeBMP(buf, p, 3); err != nil {
		tt.Fatalf("EncodeBMP: %v", err)
	}

	m, err := bmp.Decode(buf)
	if err != nil {
		tt.Fatalf("bmp.Decode: %v", err)
	}
	for k := range p {
		x, y := (k%Columns)*3+1, (k/Columns)*3+1
		r0, g0, b0, _ := p[k].RGBA()
		r1, g1, b1, _ := m.At(x, y).RGBA()
		if (r0 != r1) || (g0 != g1) || (b0 != b1) {
			tt.Errorf("k=%d: got %v, want %v", k, m.At(x, y), p[k])
		}
	}
}

func TestBadArguments(tt *testing.T) {
	if _, err := New(nil, 4); err != ErrBadArgument {
		tt.Errorf("empty palette: got %v", err)
	}
	if _, err := New(testPalette(), 0); err != ErrBadArgument {
		tt.Errorf("zero cell size: got %v", err)
	}
}
