// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package swatch draws a palette as a grid of solid color cells, for a quick
// visual check of a generated palette.
//
// It is an internal package, only providing what's needed by the
// github.com/uniformpal/unipal module.
package swatch

import (
	"errors"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// Columns is the number of cells per row.
const Columns = 16

var (
	ErrBadArgument = errors.New("swatch: bad argument")
)

// New returns a Columns wide grid, with cell k (in row-major order) filled
// with color index k. Each cell is cellSize×cellSize pixels.
func New(p color.Palette, cellSize int) (*image.Paletted, error) {
	if (len(p) == 0) || (len(p) > 256) || (cellSize <= 0) || (cellSize > 256) {
		return nil, ErrBadArgument
	}
	rows := (len(p) + Columns - 1) / Columns
	m := image.NewPaletted(image.Rect(0, 0, Columns*cellSize, rows*cellSize), p)

	for k := range p {
		x0 := (k % Columns) * cellSize
		y0 := (k / Columns) * cellSize
		for y := y0; y < y0+cellSize; y++ {
			for x := x0; x < x0+cellSize; x++ {
				m.SetColorIndex(x, y, uint8(k))
			}
		}
	}
	return m, nil
}

// EncodeBMP writes the swatch for p to w as an 8 bit paletted BMP.
func EncodeBMP(w io.Writer, p color.Palette, cellSize int) error {
	m, err := New(p, cellSize)
	if err != nil {
		return err
	}
	return bmp.Encode(w, m)
}
