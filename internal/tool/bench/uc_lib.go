// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"encoding/binary"

	compressor "github.com/marcinwilkdev/universal-compressor"
	"github.com/marcinwilkdev/universal-compressor/bitbuf"
)

// The universal compressor codecs measure the full on-disk form,
// including the 8-byte bit-count header, so that ratios are comparable
// with the containerized reference formats.
func init() {
	for _, enc := range compressor.Encodings() {
		enc := enc
		Register("uc:"+enc.String(), Codec{
			Encode: func(input []byte) []byte {
				bits := compressor.Encode(input, enc)
				out := make([]byte, 8, 8+len(bits.Bytes()))
				binary.BigEndian.PutUint64(out, uint64(bits.Len()))
				return append(out, bits.Bytes()...)
			},
			Decode: func(input []byte) []byte {
				n := binary.BigEndian.Uint64(input[:8])
				out, err := compressor.Decode(bitbuf.From(int(n), input[8:]), enc)
				if err != nil {
					panic(err)
				}
				return out
			},
		})
	}
}
