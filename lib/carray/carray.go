// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package carray writes and reads a palette as a C source constant array of
// hexadecimal byte literals, such as:
//
//	const unsigned char uniform_palette[] =
//	{
//	 0x00,0x00,0x00,  0x00,0x00,0x3e,  0x00,0x00,0x7d,  0x00,0x00,0xbb,
//	 ...
//	};
//
// There are four R, G, B triples per line.
package carray

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// DefaultName is the array identifier used when none is given.
const DefaultName = "uniform_palette"

const (
	prefix        = "const unsigned char "
	triplesPerRow = 4
)

var (
	ErrBadArgument = errors.New("carray: bad argument")
	ErrNotACArray  = errors.New("carray: not a C array")
)

// EncodeOptions are optional arguments to Encode. The zero value is valid and
// means to use the default configuration.
type EncodeOptions struct {
	// If empty, the default is DefaultName.
	Name string

	// If non-nil, each entry's text is also written to Echo as it is
	// produced.
	Echo io.Writer
}

// AppendEntry appends the text for entry i (0-based) of an n entry palette.
func AppendEntry(b []byte, r uint8, g uint8, bb uint8, i int, n int) []byte {
	sep, eol := byte(','), byte(' ')
	if (i + 1) == n {
		sep = ' '
	}
	if ((i + 1) % triplesPerRow) == 0 {
		eol = '\n'
	}
	return fmt.Appendf(b, " 0x%02x,0x%02x,0x%02x%c%c", r, g, bb, sep, eol)
}

// Encode writes p to w as a C array.
//
// options may be nil, which means to use the default configuration.
func Encode(w io.Writer, p color.Palette, options *EncodeOptions) error {
	name := DefaultName
	var echo io.Writer
	if options != nil {
		if options.Name != "" {
			name = options.Name
		}
		echo = options.Echo
	}
	if !isIdentifier(name) {
		return ErrBadArgument
	}

	buf := make([]byte, 0, 64+(18*len(p)))
	buf = append(buf, prefix...)
	buf = append(buf, name...)
	buf = append(buf, "[] =\n{\n"...)
	for i, c := range p {
		nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
		n := len(buf)
		buf = AppendEntry(buf, nrgba.R, nrgba.G, nrgba.B, i, len(p))
		if echo != nil {
			if _, err := echo.Write(buf[n:]); err != nil {
				return err
			}
		}
	}
	buf = append(buf, "};\n\n"...)

	_, err := w.Write(buf)
	return err
}

// Decode reads a C array written by Encode, returning the array's name and
// its colors. The byte count must be a multiple of 3.
func Decode(r io.Reader) (name string, p color.Palette, retErr error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", nil, err
	}
	s := strings.TrimSpace(string(src))

	if !strings.HasPrefix(s, prefix) {
		return "", nil, ErrNotACArray
	}
	s = s[len(prefix):]
	i := strings.Index(s, "[]")
	if i < 0 {
		return "", nil, ErrNotACArray
	}
	name = s[:i]
	if !isIdentifier(name) {
		return "", nil, ErrNotACArray
	}

	lbrace := strings.IndexByte(s, '{')
	rbrace := strings.LastIndexByte(s, '}')
	if (lbrace < 0) || (rbrace < lbrace) ||
		(strings.TrimSpace(s[i+2:lbrace]) != "=") ||
		(strings.TrimSpace(s[rbrace+1:]) != ";") {
		return "", nil, ErrNotACArray
	}

	tokens := strings.Split(s[lbrace+1:rbrace], ",")
	if last := len(tokens) - 1; strings.TrimSpace(tokens[last]) == "" {
		tokens = tokens[:last]
	}
	if (len(tokens) == 0) || ((len(tokens) % 3) != 0) {
		return "", nil, ErrNotACArray
	}

	values := make([]uint8, len(tokens))
	for j, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if (len(tok) != 4) || ((tok[:2] != "0x") && (tok[:2] != "0X")) {
			return "", nil, ErrNotACArray
		}
		v, err := strconv.ParseUint(tok[2:], 16, 8)
		if err != nil {
			return "", nil, ErrNotACArray
		}
		values[j] = uint8(v)
	}

	p = make(color.Palette, len(values)/3)
	for j := range p {
		p[j] = color.RGBA{values[3*j+0], values[3*j+1], values[3*j+2], 0xFF}
	}
	return name, p, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '_') ||
			(('a' <= c) && (c <= 'z')) ||
			(('A' <= c) && (c <= 'Z')) ||
			((i > 0) && ('0' <= c) && (c <= '9')) {
			continue
		}
		return false
	}
	return true
}
