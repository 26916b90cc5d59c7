// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// unipal generates a 256 color uniform palette and saves it as an Adobe
// Color Table (.act) file and a C header (.h) file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/uniformpal/unipal/internal/swatch"
	"github.com/uniformpal/unipal/lib/act"
	"github.com/uniformpal/unipal/lib/carray"
	"github.com/uniformpal/unipal/lib/gamma"
	"github.com/uniformpal/unipal/lib/unipal"
)

const version = "unipal: uniform palette generator, v0.1"

var (
	nameFlag    = flag.String("name", carray.DefaultName, "C array name in the .h file")
	swatchFlag  = flag.Bool("swatch", false, "whether to also write a .bmp preview")
	verboseFlag = flag.Bool("verbose", true, "whether to print the gamma tables and palette")
)

const usageStr = `unipal generates a 256 color uniform palette.

Usage:

    unipal [flags] outfile

It writes outfile.act (768 bytes of R, G, B triples, as read by Photoshop and
other tools) and outfile.h (the same bytes as a C array).

Flags (before outfile):

    -name=uniform_palette  the C array name
    -swatch                also write outfile.bmp, a 16×16 grid of the colors
    -verbose=false         only print the banner and the completion message
`

var ErrUsage = errors.New("main: exactly one outfile is required (try -help)")

// swatchCellSize is the edge length, in pixels, of each color's cell.
const swatchCellSize = 16

type config struct {
	base    string
	name    string
	swatch  bool
	verbose bool

	// interpolation is passed to unipal.Options. Zero means the default.
	interpolation float64
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	os.Stdout.WriteString(version + "\n\n")

	if flag.NArg() != 1 {
		return ErrUsage
	}

	return run(os.Stdout, config{
		base:    flag.Arg(0),
		name:    *nameFlag,
		swatch:  *swatchFlag,
		verbose: *verboseFlag,
	})
}

func run(stdout io.Writer, c config) error {
	t := gamma.New()
	if c.verbose {
		for i := 0; i < gamma.Steps; i++ {
			r, g, b := t.Lookup(i)
			fmt.Fprintf(stdout, "gamma #%-3d %3d %3d %3d\n", i, r, g, b)
		}
	}

	// Any overflow is caught here, before any file is created.
	p, err := unipal.New(&unipal.Options{
		Interpolation: c.interpolation,
		Gamma:         t,
	})
	if err != nil {
		return err
	}
	pal := p.ColorPalette()

	if err := writeFile(c.base+".act", func(w io.Writer) error {
		return act.Encode(w, pal, nil)
	}); err != nil {
		return err
	}

	options := &carray.EncodeOptions{Name: c.name}
	if c.verbose {
		options.Echo = stdout
	}
	if err := writeFile(c.base+".h", func(w io.Writer) error {
		return carray.Encode(w, pal, options)
	}); err != nil {
		return err
	}

	if c.swatch {
		if err := writeFile(c.base+".bmp", func(w io.Writer) error {
			return swatch.EncodeBMP(w, pal, swatchCellSize)
		}); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Done! (xxhash64 %016x)\n", p.Fingerprint())
	return nil
}

// writeFile creates (or truncates) filename and passes it to encode. The file
// is closed on every path.
func writeFile(filename string, encode func(w io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("main: can't open %q for writing: %w", filename, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
