// Copyright 2025 The Unipal Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build ignore

package main

// gen-golden.go regenerates the golden/uniform.{act,h} files that the tests
// compare against. Run it from this directory:
//
//	go run gen-golden.go
//
// Any change in its output is a change in the palette, so check the diff
// against a known-good build before committing it.

import (
	"bytes"
	"fmt"
	"os"

	"github.com/uniformpal/unipal/lib/act"
	"github.com/uniformpal/unipal/lib/carray"
	"github.com/uniformpal/unipal/lib/unipal"
)

const dstDirName = "golden"

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	p, err := unipal.New(nil)
	if err != nil {
		return fmt.Errorf("unipal.New: %v", err)
	}
	pal := p.ColorPalette()

	actBuf := &bytes.Buffer{}
	if err := act.Encode(actBuf, pal, nil); err != nil {
		return fmt.Errorf("act.Encode: %v", err)
	}
	hBuf := &bytes.Buffer{}
	if err := carray.Encode(hBuf, pal, nil); err != nil {
		return fmt.Errorf("carray.Encode: %v", err)
	}

	if err := os.WriteFile(dstDirName+"/uniform.act", actBuf.Bytes(), 0644); err != nil {
		return fmt.Errorf("os.WriteFile: %v", err)
	}
	if err := os.WriteFile(dstDirName+"/uniform.h", hBuf.Bytes(), 0644); err != nil {
		return fmt.Errorf("os.WriteFile: %v", err)
	}
	fmt.Printf("xxhash64 %016x\n", p.Fingerprint())
	return nil
}
