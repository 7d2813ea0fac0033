// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/marcinwilkdev/universal-compressor/bitbuf"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string into a bit buffer.
//
// The BitGen format allows bit streams to be scripted from a series of
// tokens, so that tests can spell out expected codeword sequences while
// keeping authorial intent visible in comments. The stream is always
// packed most-significant bit first, matching the container format of the
// bitbuf package.
//
// The format consists of tokens separated by whitespace of any kind.
// The '#' character starts a comment running to the end of the line.
//
// A token of the pattern "[01]{1,64}" forms a bit-string whose bits are
// appended left to right (e.g. 11010).
//
// A token of the pattern "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}"
// appends the unsigned binary form of a decimal or hexadecimal value,
// most-significant bit first. The first number is the bit length, between
// 0 and 64, and must be wide enough for the value.
//
// A token of the pattern "X:[0-9a-fA-F]+" appends literal bytes. It may
// only be used while the stream is byte-aligned.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token,
// repeating the token that many times.
//
// Unlike a packed byte slice, the result carries the exact bit count, so
// expectations need not end on a byte boundary.
func DecodeBitGen(str string) (*bitbuf.Buffer, error) {
	// Tokenize the input string by removing comments and superfluous spaces.
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	bb := bitbuf.New()
	for _, t := range toks {
		// Check for quantifier decorators.
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			for i := 0; i < rep; i++ {
				for _, b := range t {
					bb.Push(b == '1')
				}
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}

			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}

			for i := 0; i < rep; i++ {
				for j := n - 1; j >= 0; j-- {
					bb.Push(v>>uint(j)&1 == 1)
				}
			}
		case reRaw.MatchString(t):
			if bb.Len()%8 != 0 {
				return nil, errors.New("testutil: unaligned raw bytes token: " + t)
			}
			b := MustDecodeHex(t[2:])
			for i := 0; i < rep; i++ {
				bb.Append(bitbuf.From(8*len(b), append([]byte(nil), b...)))
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bb, nil
}

// MustDecodeBitGen must decode a BitGen formatted string or else panics.
func MustDecodeBitGen(s string) *bitbuf.Buffer {
	b, err := DecodeBitGen(s)
	if err != nil {
		panic(err)
	}
	return b
}
