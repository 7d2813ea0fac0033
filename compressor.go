// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package compressor implements a lossless two-stage byte-stream
// compressor: LZW dictionary coding followed by one of four
// self-delimiting universal integer codes.
//
// The pipeline is batch and deterministic. On encode, the byte stream is
// turned into LZW codes, every code is shifted up by one (the integer
// coders only represent positive integers, while LZW legitimately emits
// code 0 for byte value 0), and the shifted codes are serialized by the
// chosen integer code. Decode reverses the stages with the opposite
// shift; the same Encoding must be used on both sides, since the variant
// is not recorded in the bit stream.
package compressor

import (
	"github.com/marcinwilkdev/universal-compressor/bitbuf"
	"github.com/marcinwilkdev/universal-compressor/lzw"
	"github.com/marcinwilkdev/universal-compressor/numcode"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "compressor: " + string(e) }

var ErrUnknownEncoding error = Error("unknown encoding")

// Encoding selects the integer code used for the second stage.
type Encoding int

const (
	Omega Encoding = iota
	Delta
	Gamma
	Fibonacci
)

// Encodings returns all supported encodings.
func Encodings() []Encoding {
	return []Encoding{Omega, Delta, Gamma, Fibonacci}
}

func (e Encoding) String() string {
	switch e {
	case Omega:
		return "omega"
	case Delta:
		return "delta"
	case Gamma:
		return "gamma"
	case Fibonacci:
		return "fib"
	default:
		return "unknown"
	}
}

// ParseEncoding resolves the name used by the command line -e flag.
func ParseEncoding(name string) (Encoding, error) {
	for _, e := range Encodings() {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, ErrUnknownEncoding
}

func (e Encoding) codec() numcode.Codec {
	switch e {
	case Omega:
		return numcode.Omega{}
	case Delta:
		return numcode.Delta{}
	case Gamma:
		return numcode.Gamma{}
	case Fibonacci:
		return numcode.Fibonacci{}
	default:
		panic(ErrUnknownEncoding)
	}
}

// Encode compresses data with the given encoding. The result carries its
// exact bit length; an empty input yields an empty buffer.
func Encode(data []byte, enc Encoding) *bitbuf.Buffer {
	codes := lzw.NewEncoder().Encode(data)
	for i := range codes {
		codes[i]++
	}
	return enc.codec().Encode(codes)
}

// Decode reverses Encode. The encoding must match the one used to
// produce bits.
func Decode(bits *bitbuf.Buffer, enc Encoding) ([]byte, error) {
	codes := enc.codec().Decode(bits)
	for i := range codes {
		codes[i]--
	}
	return lzw.NewDecoder().Decode(codes)
}
