// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"testing"
)

func TestDecodeBitGen(t *testing.T) {
	var vectors = []struct {
		input  string
		output []byte
		length int
		valid  bool
	}{{
		input:  "",
		output: nil,
		length: 0,
		valid:  true,
	}, {
		input:  "10101 0101",
		output: []byte{0xaa, 0x80},
		length: 9,
		valid:  true,
	}, {
		input: `
			D8:137  # the binary form of 137
			H4:f
		`,
		output: []byte{0x89, 0xf0},
		length: 12,
		valid:  true,
	}, {
		input:  "X:deadcafe 1",
		output: []byte{0xde, 0xad, 0xca, 0xfe, 0x80},
		length: 33,
		valid:  true,
	}, {
		input:  "101*3",
		output: []byte{0xb6, 0x80},
		length: 9,
		valid:  true,
	}, {
		input: "D4:137", // Overflows 4 bits
		valid: false,
	}, {
		input: "1 X:ff", // Unaligned raw bytes
		valid: false,
	}, {
		input: "2", // Not a token
		valid: false,
	}}

	for i, v := range vectors {
		b, err := DecodeBitGen(v.input)
		if got := err == nil; got != v.valid {
			t.Errorf("test %d, validity mismatch: got %v, want %v (%v)", i, got, v.valid, err)
			continue
		}
		if err != nil {
			continue
		}
		if !bytes.Equal(b.Bytes(), v.output) {
			t.Errorf("test %d, output mismatch:\ngot  %x\nwant %x", i, b.Bytes(), v.output)
		}
		if b.Len() != v.length {
			t.Errorf("test %d, length mismatch: got %d, want %d", i, b.Len(), v.length)
		}
	}
}
