// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numcode

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/marcinwilkdev/universal-compressor/internal/testutil"
)

func TestFibTable(t *testing.T) {
	fibs := newFibTable()
	if got := fibs.get(1); got != 1 {
		t.Errorf("get(1) mismatch: got %d, want 1", got)
	}
	if got := fibs.get(2); got != 2 {
		t.Errorf("get(2) mismatch: got %d, want 2", got)
	}
	for i := 3; i <= 40; i++ {
		if got, want := fibs.get(i), fibs.get(i-2)+fibs.get(i-1); got != want {
			t.Errorf("get(%d) mismatch: got %d, want %d", i, got, want)
		}
	}

	var vectors = []struct {
		input  uint
		output int
	}{
		{1, 2}, {2, 3}, {3, 4}, {4, 4}, {5, 5}, {7, 5}, {8, 6},
		{12, 6}, {13, 7}, {137, 11}, {143, 11}, {144, 12},
	}
	for _, v := range vectors {
		if got := newFibTable().greaterIndex(v.input); got != v.output {
			t.Errorf("greaterIndex(%d) mismatch: got %d, want %d", v.input, got, v.output)
		}
	}
}

func TestFibonacci(t *testing.T) {
	var vectors = []struct {
		numbers []uint
		stream  string // BitGen format
	}{{
		numbers: nil,
		stream:  "",
	}, {
		numbers: []uint{1},
		stream:  "11",
	}, {
		numbers: []uint{2},
		stream:  "011",
	}, {
		numbers: []uint{3},
		stream:  "0011",
	}, {
		numbers: []uint{4},
		stream:  "1011", // 4 = 1 + 3
	}, {
		numbers: []uint{5},
		stream:  "00011",
	}, {
		numbers: []uint{12},
		stream:  "101011", // 12 = 1 + 3 + 8
	}, {
		numbers: []uint{137},
		stream:  "1000010101 1", // 137 = 1 + 13 + 34 + 89
	}, {
		numbers: []uint{1, 2, 257, 259, 258, 2},
		stream: `
			11
			011
			001000100001 1 # 257 = 3 + 21 + 233
			000100100001 1 # 259 = 5 + 21 + 233
			101000100001 1 # 258 = 1 + 3 + 21 + 233
			011
		`,
	}}

	for i, v := range vectors {
		want := testutil.MustDecodeBitGen(v.stream)
		got := Fibonacci{}.Encode(v.numbers)
		if !bytes.Equal(got.Bytes(), want.Bytes()) || got.Len() != want.Len() {
			t.Errorf("test %d, stream mismatch:\ngot  %x (%d bits)\nwant %x (%d bits)",
				i, got.Bytes(), got.Len(), want.Bytes(), want.Len())
		}

		nums := Fibonacci{}.Decode(want)
		if !reflect.DeepEqual(nums, v.numbers) {
			t.Errorf("test %d, numbers mismatch:\ngot  %v\nwant %v", i, nums, v.numbers)
		}
	}
}

func TestFibonacciBytes(t *testing.T) {
	b := Fibonacci{}.Encode([]uint{137})
	if want := []byte{0x85, 0x60}; !bytes.Equal(b.Bytes(), want) {
		t.Errorf("storage mismatch:\ngot  %x\nwant %x", b.Bytes(), want)
	}
	if b.Len() != 11 {
		t.Errorf("length mismatch: got %d, want 11", b.Len())
	}
}

// Every Fibonacci codeword ends in 11 and contains no other adjacent 1s.
func TestFibonacciNoAdjacentOnes(t *testing.T) {
	for n := uint(1); n <= 1000; n++ {
		b := Fibonacci{}.Encode([]uint{n})
		if !b.Get(b.Len()-1) || !b.Get(b.Len()-2) {
			t.Fatalf("Fibonacci(%d) does not end in 11", n)
		}
		for i := 0; i < b.Len()-2; i++ {
			if b.Get(i) && b.Get(i+1) {
				t.Fatalf("Fibonacci(%d) has an adjacent 11 pair at bit %d", n, i)
			}
		}
	}
}
