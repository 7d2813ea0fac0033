// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numcode

import (
	"io"

	"github.com/marcinwilkdev/universal-compressor/bitbuf"
)

// Gamma implements the Elias gamma code.
//
// A positive integer n with bit length L is written as L-1 zeros followed
// by the L-bit minimal binary form of n. The codeword for 1 is a single
// 1 bit.
type Gamma struct{}

func (Gamma) Encode(nums []uint) *bitbuf.Buffer {
	out := bitbuf.New()
	for _, n := range nums {
		appendGamma(out, n)
	}
	return out
}

func appendGamma(out *bitbuf.Buffer, n uint) {
	if n == 1 {
		out.Push(true)
		return
	}
	for i := 0; i < bitbuf.BitLen(n)-1; i++ {
		out.Push(false)
	}
	bitbuf.AppendUint(out, n)
}

// Phases of the gamma decoding state machine.
type gammaPhase int

const (
	gammaEmpty gammaPhase = iota
	gammaZeros
	gammaNumber
)

func (Gamma) Decode(bits *bitbuf.Buffer) []uint {
	var nums []uint

	phase := gammaEmpty
	var zeros int  // Zeros seen so far in gammaZeros
	var acc uint   // Number bits accumulated so far in gammaNumber
	var remain int // Bits left to read in gammaNumber

	rd := bitbuf.NewReader(bits)
	for {
		bit, err := rd.ReadBit()
		if err == io.EOF {
			return nums
		}
		switch phase {
		case gammaEmpty:
			if bit {
				nums = append(nums, 1)
			} else {
				phase, zeros = gammaZeros, 1
			}
		case gammaZeros:
			if bit {
				phase, acc, remain = gammaNumber, 1, zeros
			} else {
				zeros++
			}
		case gammaNumber:
			acc <<= 1
			if bit {
				acc |= 1
			}
			if remain--; remain == 0 {
				nums = append(nums, acc)
				phase = gammaEmpty
			}
		}
	}
}
