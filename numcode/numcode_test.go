// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numcode

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/marcinwilkdev/universal-compressor/bitbuf"
)

var testCodecs = []struct {
	name  string
	codec Codec
}{
	{"gamma", Gamma{}},
	{"delta", Delta{}},
	{"omega", Omega{}},
	{"fib", Fibonacci{}},
}

func TestRoundTrip(t *testing.T) {
	var vectors = [][]uint{
		{1},
		{1, 1, 1, 1},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{1, 2, 257, 259, 258, 2},
		{255, 256, 257},
		{1 << 10, 1<<10 - 1, 1<<10 + 1},
		{1 << 20, 1<<20 - 1, 1<<20 + 1},
		{987654321},
	}

	r := rand.New(rand.NewSource(0))
	random := make([]uint, 256)
	for i := range random {
		random[i] = uint(r.Int63n(1<<uint(1+r.Intn(30)))) + 1
	}
	vectors = append(vectors, random)

	for _, tc := range testCodecs {
		for i, nums := range vectors {
			enc := tc.codec.Encode(nums)
			dec := tc.codec.Decode(enc)
			if !reflect.DeepEqual(dec, nums) {
				t.Errorf("%s, test %d, round-trip mismatch:\ngot  %v\nwant %v", tc.name, i, dec, nums)
			}
		}
	}
}

// Each code is self-delimiting: the concatenation of two encoded streams
// decodes to the concatenation of the sequences.
func TestConcat(t *testing.T) {
	a := []uint{1, 137, 2}
	b := []uint{40, 1, 1000000}

	for _, tc := range testCodecs {
		enc := tc.codec.Encode(a)
		enc.Append(tc.codec.Encode(b))
		dec := tc.codec.Decode(enc)
		if want := append(append([]uint{}, a...), b...); !reflect.DeepEqual(dec, want) {
			t.Errorf("%s, concat mismatch:\ngot  %v\nwant %v", tc.name, dec, want)
		}
	}
}

// A stream that ends in the middle of a codeword drops the partial number
// and delivers everything before it.
func TestTruncated(t *testing.T) {
	for _, tc := range testCodecs {
		enc := tc.codec.Encode([]uint{42, 137})
		cut := bitbuf.New()
		for i := 0; i < enc.Len()-1; i++ {
			cut.Push(enc.Get(i))
		}
		dec := tc.codec.Decode(cut)
		if want := []uint{42}; !reflect.DeepEqual(dec, want) {
			t.Errorf("%s, truncated stream mismatch:\ngot  %v\nwant %v", tc.name, dec, want)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, tc := range testCodecs {
		if dec := tc.codec.Decode(bitbuf.New()); len(dec) != 0 {
			t.Errorf("%s, decode of empty stream: got %v, want none", tc.name, dec)
		}
	}
}
