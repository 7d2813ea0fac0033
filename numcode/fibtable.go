// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numcode

// fibTable is a lazily extended cache of the Fibonacci numbers
// F(1)=1, F(2)=2, F(i)=F(i-2)+F(i-1). The 1-based indexing with F(1)=1
// and F(2)=2 is the Zeckendorf convention; encoder and decoder must agree
// on it or the stream silently corrupts.
type fibTable struct {
	cache []uint
}

func newFibTable() *fibTable {
	return &fibTable{cache: []uint{1, 2}}
}

// get returns F(i), extending the cache as needed.
func (t *fibTable) get(i int) uint {
	for len(t.cache) < i {
		n := len(t.cache)
		t.cache = append(t.cache, t.cache[n-2]+t.cache[n-1])
	}
	return t.cache[i-1]
}

// greaterIndex returns the smallest i with F(i) > n.
func (t *fibTable) greaterIndex(n uint) int {
	for i := 1; ; i++ {
		if t.get(i) > n {
			return i
		}
	}
}
