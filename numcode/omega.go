// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numcode

import (
	"io"

	"github.com/marcinwilkdev/universal-compressor/bitbuf"
)

// Omega implements the Elias omega code.
//
// A positive integer n > 1 is written as a chain of binary groups: the
// innermost group is n itself, each preceding group is the bit length of
// the following group minus one, down to a 2-bit outermost group, and a
// single 0 bit terminates the chain. The codeword for 1 is that lone
// terminator.
type Omega struct{}

func (Omega) Encode(nums []uint) *bitbuf.Buffer {
	out := bitbuf.New()
	for _, n := range nums {
		appendOmega(out, n)
	}
	return out
}

func appendOmega(out *bitbuf.Buffer, n uint) {
	if n == 1 {
		out.Push(false)
		return
	}
	var groups []*bitbuf.Buffer
	for bitbuf.BitLen(n) > 1 {
		groups = append(groups, bitbuf.FromUint(n))
		n = uint(bitbuf.BitLen(n) - 1)
	}
	for i := len(groups) - 1; i >= 0; i-- {
		out.Append(groups[i])
	}
	out.Push(false)
}

// Phases of the omega decoding state machine.
type omegaPhase int

const (
	omegaEmpty omegaPhase = iota
	omegaWord
)

func (Omega) Decode(bits *bitbuf.Buffer) []uint {
	var nums []uint

	phase := omegaEmpty
	var acc uint   // Bits of the current group, including its leading 1
	var remain int // Bits left in the current group

	rd := bitbuf.NewReader(bits)
	for {
		bit, err := rd.ReadBit()
		if err == io.EOF {
			return nums
		}
		switch phase {
		case omegaEmpty:
			if bit {
				// Leading 1 of the first group; one more bit completes
				// the 2-bit outermost length.
				phase, acc, remain = omegaWord, 1, 1
			} else {
				nums = append(nums, 1)
			}
		case omegaWord:
			switch {
			case remain > 0:
				acc <<= 1
				if bit {
					acc |= 1
				}
				remain--
			case bit:
				// The finished group holds the next group's length
				// minus one; its leading 1 was just consumed.
				acc, remain = 1, int(acc)
			default:
				nums = append(nums, acc)
				phase = omegaEmpty
			}
		}
	}
}
