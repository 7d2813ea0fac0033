// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of the universal compressor
// pipeline against several reference implementations. Individual
// implementations are referred to as codecs.
package bench

import (
	"math/rand"
	"runtime"
	"sort"
	"testing"
)

// A Codec is a batch compressor: the whole input in, the whole encoded
// form out. Implementations panic on internal errors; this is a
// measurement tool, not a defended surface.
type Codec struct {
	Encode func([]byte) []byte
	Decode func([]byte) []byte
}

// Codecs indexes all registered codec implementations by name.
var Codecs map[string]Codec

func Register(name string, c Codec) {
	if Codecs == nil {
		Codecs = make(map[string]Codec)
	}
	Codecs[name] = c
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	var names []string
	for name := range Codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TestInput synthesizes n bytes of the named input class. Each class
// stresses a different part of a compressor: zeros is the best case for
// any dictionary coder, random the worst, repeats favors LZ-style
// dictionaries, and lowent is random over a tiny alphabet.
func TestInput(name string, n int) []byte {
	b := make([]byte, n)
	r := rand.New(rand.NewSource(0))
	switch name {
	case "zeros":
		// Already zero.
	case "random":
		r.Read(b)
	case "lowent":
		for i := range b {
			b[i] = byte(r.Intn(4))
		}
	case "repeats":
		fillRepeats(b, r)
	default:
		panic("unknown test input: " + name)
	}
	return b
}

// fillRepeats fills b with short random seeds followed by long copies
// from a random earlier distance, so that a large bulk of the data is
// a repeat of something seen before.
func fillRepeats(b []byte, r *rand.Rand) {
	pos := 16
	if pos > len(b) {
		pos = len(b)
	}
	r.Read(b[:pos])
	for pos < len(b) {
		if r.Intn(4) == 0 {
			b[pos] = byte(r.Int())
			pos++
			continue
		}
		dist := 1 + r.Intn(pos)
		length := 4 + r.Intn(60)
		for i := 0; i < length && pos < len(b); i++ {
			b[pos] = b[pos-dist]
			pos++
		}
	}
}

// BenchmarkEncode measures the encode rate of a single codec over input.
func BenchmarkEncode(c Codec, input []byte) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			c.Encode(input)
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecode measures the decode rate of a single codec over the
// encoded form of input.
func BenchmarkDecode(c Codec, input []byte) testing.BenchmarkResult {
	output := c.Encode(input)
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			c.Decode(output)
			b.SetBytes(int64(len(input)))
		}
	})
}

// Ratio reports the compression ratio rawSize/compSize of a codec over
// input.
func Ratio(c Codec, input []byte) float64 {
	output := c.Encode(input)
	if len(output) == 0 {
		return 0
	}
	return float64(len(input)) / float64(len(output))
}

// Rate converts a benchmark result into bytes per second.
func Rate(r testing.BenchmarkResult) float64 {
	if r.N == 0 || r.T == 0 {
		return 0
	}
	return float64(r.Bytes) * float64(r.N) / r.T.Seconds()
}
