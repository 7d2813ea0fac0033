// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numcode

import (
	"io"

	"github.com/marcinwilkdev/universal-compressor/bitbuf"
)

// Fibonacci implements the Fibonacci (Zeckendorf) code.
//
// A positive integer n is written as its Zeckendorf representation over
// F(1)=1, F(2)=2, F(3)=3, F(4)=5, ...: bit i of the codeword is set when
// F(i+1) participates in the sum, followed by a terminating 1. Every
// codeword ends in 11 and contains no other adjacent pair of 1s.
type Fibonacci struct{}

func (Fibonacci) Encode(nums []uint) *bitbuf.Buffer {
	out := bitbuf.New()
	fibs := newFibTable()
	for _, n := range nums {
		word := bitbuf.New()
		dataBits := fibs.greaterIndex(n) - 1
		for i := 0; i < dataBits; i++ {
			word.Push(false)
		}
		word.Push(true)
		// Greedy Zeckendorf, largest term first.
		for i := dataBits; i > 0; i-- {
			if f := fibs.get(i); f <= n {
				n -= f
				word.Set(i-1, true)
			}
		}
		out.Append(word)
	}
	return out
}

// Phases of the Fibonacci decoding state machine.
type fibPhase int

const (
	fibEmpty fibPhase = iota
	fibNumber
)

func (Fibonacci) Decode(bits *bitbuf.Buffer) []uint {
	var nums []uint
	fibs := newFibTable()

	phase := fibEmpty
	var acc uint  // Sum of the Fibonacci terms seen so far
	var index int // 1-based index of the next codeword position
	var prevOne bool

	rd := bitbuf.NewReader(bits)
	for {
		bit, err := rd.ReadBit()
		if err == io.EOF {
			return nums
		}
		switch phase {
		case fibEmpty:
			acc, index, prevOne = 0, 2, bit
			if bit {
				acc = 1 // F(1)
			}
			phase = fibNumber
		case fibNumber:
			switch {
			case bit && prevOne:
				nums = append(nums, acc)
				phase = fibEmpty
			case bit:
				acc += fibs.get(index)
				index++
				prevOne = true
			default:
				index++
				prevOne = false
			}
		}
	}
}
