// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package universal

import (
	"bytes"
	"fmt"

	compressor "github.com/marcinwilkdev/universal-compressor"
)

func Fuzz(data []byte) int {
	for _, enc := range compressor.Encodings() {
		bits := compressor.Encode(data, enc)
		output, err := compressor.Decode(bits, enc)
		if err != nil {
			panic(fmt.Sprintf("%v: decode error: %v", enc, err))
		}
		if !bytes.Equal(output, data) {
			panic(fmt.Sprintf("%v: round-trip mismatch", enc))
		}
	}
	return 1
}
