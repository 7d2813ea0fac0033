// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numcode

import (
	"io"

	"github.com/marcinwilkdev/universal-compressor/bitbuf"
)

// Delta implements the Elias delta code.
//
// A positive integer n with bit length L is written as the gamma codeword
// for L followed by the minimal binary form of n with its leading 1
// removed, which is exactly L-1 bits. The codeword for 1 is a single
// 1 bit, since gamma(1) is 1 and the tail is empty.
type Delta struct{}

func (Delta) Encode(nums []uint) *bitbuf.Buffer {
	out := bitbuf.New()
	for _, n := range nums {
		if n == 1 {
			out.Push(true)
			continue
		}
		appendGamma(out, uint(bitbuf.BitLen(n)))
		tail := bitbuf.FromUint(n)
		tail.ShiftLeft()
		out.Append(tail)
	}
	return out
}

// Phases of the delta decoding state machine.
type deltaPhase int

const (
	deltaEmpty deltaPhase = iota
	deltaZeros
	deltaLen
	deltaNumber
)

func (Delta) Decode(bits *bitbuf.Buffer) []uint {
	var nums []uint

	phase := deltaEmpty
	var zeros int  // Zeros seen so far in deltaZeros
	var acc uint   // Bits accumulated so far in deltaLen or deltaNumber
	var remain int // Bits left to read in deltaLen or deltaNumber

	rd := bitbuf.NewReader(bits)
	for {
		bit, err := rd.ReadBit()
		if err == io.EOF {
			return nums
		}
		switch phase {
		case deltaEmpty:
			if bit {
				nums = append(nums, 1)
			} else {
				phase, zeros = deltaZeros, 1
			}
		case deltaZeros:
			if bit {
				phase, acc, remain = deltaLen, 1, zeros
			} else {
				zeros++
			}
		case deltaLen:
			acc <<= 1
			if bit {
				acc |= 1
			}
			if remain--; remain == 0 {
				// acc is the bit length of the number; its leading 1
				// is implicit in the stream that follows.
				phase, acc, remain = deltaNumber, 1, int(acc)-1
			}
		case deltaNumber:
			acc <<= 1
			if bit {
				acc |= 1
			}
			if remain--; remain == 0 {
				nums = append(nums, acc)
				phase = deltaEmpty
			}
		}
	}
}
