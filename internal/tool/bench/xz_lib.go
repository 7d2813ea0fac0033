// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_xz_lib
// +build !no_xz_lib

package bench

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	Register("xz", Codec{
		Encode: func(input []byte) []byte {
			var buf bytes.Buffer
			zw, err := xz.NewWriter(&buf)
			if err != nil {
				panic(err)
			}
			if _, err := zw.Write(input); err != nil {
				panic(err)
			}
			if err := zw.Close(); err != nil {
				panic(err)
			}
			return buf.Bytes()
		},
		Decode: func(input []byte) []byte {
			zr, err := xz.NewReader(bytes.NewReader(input))
			if err != nil {
				panic(err)
			}
			output, err := io.ReadAll(zr)
			if err != nil {
				panic(err)
			}
			return output
		},
	})
}
