// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package numcode implements four self-delimiting universal codes for
// positive integers: Elias gamma, Elias delta, Elias omega, and Fibonacci.
//
// Every code is concatenable: decoding the concatenation of two encoded
// sequences yields the concatenation of the sequences. Decoders are
// streaming state machines over individual bits; a stream that ends in the
// middle of a codeword drops the partial number.
package numcode

import "github.com/marcinwilkdev/universal-compressor/bitbuf"

// Codec is the uniform contract implemented by the four integer coders.
// Encode is total over sequences of positive integers. Decode is total
// over bit streams produced by the matching Encode.
type Codec interface {
	Encode(nums []uint) *bitbuf.Buffer
	Decode(bits *bitbuf.Buffer) []uint
}
