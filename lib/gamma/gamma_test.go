// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package gamma

import (
	"math"
	"testing"
)

func TestExponents(tt *testing.T) {
	r, g, b := Exponents()
	if !(g < r) || !(r < b) || !(b < 1) {
		tt.Fatalf("exponents: got %v %v %v, want green < red < blue < 1", r, g, b)
	}
	if math.Abs(r-0.9075) > 1e-12 {
		tt.Errorf("red exponent: got %v, want 0.9075", r)
	}
}

func TestMonotonic(tt *testing.T) {
	t := New()
	for i := 1; i < Steps; i++ {
		if t.R[i] < t.R[i-1] {
			tt.Errorf("R[%d]=%d < R[%d]=%d", i, t.R[i], i-1, t.R[i-1])
		}
		if t.G[i] < t.G[i-1] {
			tt.Errorf("G[%d]=%d < G[%d]=%d", i, t.G[i], i-1, t.G[i-1])
		}
		if t.B[i] < t.B[i-1] {
			tt.Errorf("B[%d]=%d < B[%d]=%d", i, t.B[i], i-1, t.B[i-1])
		}
	}
}

func TestKnownEntries(tt *testing.T) {
	testCases := []struct {
		i       int
		r, g, b uint8
	}{
		{0, 0, 0, 0},
		{1, 1, 3, 1},
		{72, 81, 97, 72},
		{145, 153, 166, 145},
		{218, 221, 226, 218},
		{254, 254, 254, 254},
		{255, 255, 255, 255},
	}

	t := New()
	for _, tc := range testCases {
		r, g, b := t.Lookup(tc.i)
		if (r != tc.r) || (g != tc.g) || (b != tc.b) {
			tt.Errorf("i=%d: got %d %d %d, want %d %d %d", tc.i, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestDeterministic(tt *testing.T) {
	if a, b := New(), New(); *a != *b {
		tt.Fatal("two builds differ")
	}
}
