// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package bench

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

func init() {
	Register("flate", Codec{
		Encode: func(input []byte) []byte {
			var buf bytes.Buffer
			zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
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
			zr := flate.NewReader(bytes.NewReader(input))
			output, err := io.ReadAll(zr)
			if err != nil {
				panic(err)
			}
			if err := zr.Close(); err != nil {
				panic(err)
			}
			return output
		},
	})

	zw, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}
	zr, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	Register("zstd", Codec{
		Encode: func(input []byte) []byte {
			return zw.EncodeAll(input, nil)
		},
		Decode: func(input []byte) []byte {
			output, err := zr.DecodeAll(input, nil)
			if err != nil {
				panic(err)
			}
			return output
		},
	})
}
