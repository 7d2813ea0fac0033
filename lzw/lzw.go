// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzw implements the dictionary stage of the compressor: a batch
// LZW coder between byte streams and streams of integer codes.
//
// Both sides seed their dictionary with the 256 single-byte words at codes
// 0 through 255 and grow it strictly monotonically; entries are never
// evicted or rewritten during a run. Code streams carry no in-band
// framing; delimiting codes is the job of the integer coder downstream.
package lzw

import "github.com/dsnet/golib/errs"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

var ErrCorrupt error = Error("code stream is corrupted")

// numSeedWords is the size of the seeded dictionary, one word per byte value.
const numSeedWords = 256

// An Encoder translates a byte stream into LZW codes. The zero value is
// not usable; call NewEncoder. An Encoder carries dictionary state across
// calls, so a fresh Encoder (or a Reset) is needed per stream.
type Encoder struct {
	dict  map[string]uint
	next  uint // Next code to assign
	carry byte // Last symbol of the previous word, pending re-use
	ok    bool // Whether carry is set
}

// NewEncoder returns an Encoder seeded with the single-byte words.
func NewEncoder() *Encoder {
	e := new(Encoder)
	e.Reset()
	return e
}

// Reset restores the Encoder to its freshly seeded state.
func (e *Encoder) Reset() {
	e.dict = make(map[string]uint, 2*numSeedWords)
	for i := 0; i < numSeedWords; i++ {
		e.dict[string([]byte{byte(i)})] = uint(i)
	}
	e.next = numSeedWords
	e.ok = false
}

// Encode translates data into a sequence of dictionary codes.
func (e *Encoder) Encode(data []byte) []uint {
	var codes []uint
	var pos int
	for {
		var word []byte
		switch {
		case e.ok:
			word = append(word, e.carry)
			e.ok = false
		case pos < len(data):
			word = append(word, data[pos])
			pos++
		default:
			return codes
		}

		// Grow the word until it falls out of the dictionary.
		for {
			code, found := e.dict[string(word)]
			if !found {
				break
			}
			if pos == len(data) {
				// Input exhausted with a known word: emit it whole and
				// terminate with no carry.
				return append(codes, code)
			}
			word = append(word, data[pos])
			pos++
		}

		codes = append(codes, e.dict[string(word[:len(word)-1])])
		e.dict[string(word)] = e.next
		e.next++
		e.carry = word[len(word)-1]
		e.ok = true
	}
}

// A Decoder reconstructs the byte stream from LZW codes, mirroring the
// Encoder's dictionary growth. The zero value is not usable; call
// NewDecoder.
type Decoder struct {
	words [][]byte
	last  []byte
}

// NewDecoder returns a Decoder seeded with the single-byte words.
func NewDecoder() *Decoder {
	d := new(Decoder)
	d.Reset()
	return d
}

// Reset restores the Decoder to its freshly seeded state.
func (d *Decoder) Reset() {
	d.words = d.words[:0]
	for i := 0; i < numSeedWords; i++ {
		d.words = append(d.words, []byte{byte(i)})
	}
	d.last = nil
}

// Decode translates a sequence of dictionary codes back into bytes.
// It reports ErrCorrupt when a code lies beyond the dictionary, or when
// the first code of a stream already requires the KwKwK rule.
func (d *Decoder) Decode(codes []uint) (data []byte, err error) {
	defer errs.Recover(&err)

	for _, c := range codes {
		var w []byte
		switch {
		case c < uint(len(d.words)):
			w = d.words[c]
			if d.last != nil {
				grown := append(append([]byte(nil), d.last...), w[0])
				d.words = append(d.words, grown)
			}
		case c == uint(len(d.words)):
			// KwKwK: the code refers to the word being defined by this
			// very step, so it must extend the previous word by its own
			// first symbol.
			errs.Assert(d.last != nil, ErrCorrupt)
			w = append(append([]byte(nil), d.last...), d.last[0])
			d.words = append(d.words, w)
		default:
			errs.Panic(ErrCorrupt)
		}
		data = append(data, w...)
		d.last = w
	}
	return data, nil
}
