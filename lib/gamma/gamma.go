// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package gamma builds the per-channel gamma correction tables used by the
// uniform palette.
//
// Each channel gets its own exponent, derived from the difference between
// that channel's luma weight and the blue luma weight. Red and green are
// brightened (exponent below 1) and blue is left almost linear.
package gamma

import (
	"math"
)

// Steps is the number of entries in each channel's table.
const Steps = 256

// Luma weights. Blue's exponent uses blueGammaWeight, a hair above
// BlueWeight, so that its exponent is just below 1 instead of exactly 1.
const (
	RedWeight   = 0.299
	GreenWeight = 0.587
	BlueWeight  = 0.114

	blueGammaWeight = 0.1141
	exponentDivisor = 2.0
)

// Table holds one lookup table per channel, mapping a linear intensity
// (0-255) to a gamma corrected byte.
type Table struct {
	R [Steps]uint8
	G [Steps]uint8
	B [Steps]uint8
}

// Lookup returns the three channels' entries at the same index.
func (t *Table) Lookup(i int) (r uint8, g uint8, b uint8) {
	return t.R[i], t.G[i], t.B[i]
}

// exponent rounds to float64 after every operation. Written as an untyped
// constant expression it would be exact, and table entries could differ.
func exponent(w float64) float64 {
	return 1.0 - (w-BlueWeight)/exponentDivisor
}

// Exponents returns the red, green and blue gamma exponents.
func Exponents() (r float64, g float64, b float64) {
	return exponent(RedWeight), exponent(GreenWeight), exponent(blueGammaWeight)
}

// New builds the three tables.
//
// The index is scaled by 256/255 before being normalized by 255, so the
// normalized intensity of the last entry is slightly above 1. Existing
// palettes depend on that scaling and it is kept as is.
func New() *Table {
	eR, eG, eB := Exponents()
	t := &Table{}
	for i := 0; i < Steps; i++ {
		x := (float64(i) * 256.0 / (Steps - 1)) / 255.0
		t.R[i] = uint8(255.0 * math.Pow(x, eR))
		t.G[i] = uint8(255.0 * math.Pow(x, eG))
		t.B[i] = uint8(255.0 * math.Pow(x, eB))
	}
	return t
}
