// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package matchfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tarsa/matchfinder/internal/numeric"
)

func TestBruteForceMatchFinder_AbabExample(t *testing.T) {
	// "abab" with min=2, max=3.
	//
	// A match's length is always bounded by the bytes actually remaining in
	// the input on both the source and target side (N-p). At p=3 (the last
	// byte of a 4-byte input) no length above 1 can exist, so the current
	// max match there falls below min_match and nothing is emitted.
	input := []byte("abab")
	f := NewBruteForceMatchFinder(input, 2, 3)
	out := make([]uint32, 4)

	assert.Equal(t, uint32(0), f.CollectNext(out)) // p=0
	assert.Equal(t, uint32(0), f.CollectNext(out)) // p=1

	cur := f.CollectNext(out) // p=2
	assert.Equal(t, uint32(2), cur)
	assert.Equal(t, uint32(2), out[2])

	cur = f.CollectNext(out) // p=3
	assert.Equal(t, uint32(1), cur)
}

func TestBruteForceMatchFinder_AaaaExample(t *testing.T) {
	// "aaaa" with min=1, max=3.
	//
	// At p=1 the only candidate offset is 1, and the run of 'a' extends the
	// match all the way to the cap N-p=3, so current_max_match jumps
	// straight to 3 rather than growing by one each step; it then shrinks
	// as fewer bytes remain (N-p=2 at p=2, N-p=1 at p=3).
	input := []byte("aaaa")
	f := NewBruteForceMatchFinder(input, 1, 3)
	out := make([]uint32, 4)

	assert.Equal(t, uint32(0), f.CollectNext(out)) // p=0

	cur := f.CollectNext(out) // p=1
	assert.Equal(t, uint32(3), cur)
	assert.Equal(t, uint32(1), out[1])
	assert.Equal(t, uint32(1), out[2])
	assert.Equal(t, uint32(1), out[3])

	cur = f.CollectNext(out) // p=2
	assert.Equal(t, uint32(2), cur)
	assert.Equal(t, uint32(1), out[1])
	assert.Equal(t, uint32(1), out[2])

	cur = f.CollectNext(out) // p=3
	assert.Equal(t, uint32(1), cur)
	assert.Equal(t, uint32(1), out[1])
}

func TestBruteForceMatchFinder_MonotoneOffsets(t *testing.T) {
	input := []byte("abcabcabcabcxyzabcabc")
	f := NewBruteForceMatchFinder(input, 1, 6)
	out := make([]uint32, 7)

	for p := 0; p < len(input); p++ {
		cur := f.CollectNext(out)
		assert.Truef(t, numeric.NonDecreasing(out, 1, int(cur)+1), "position %d: offsets not non-decreasing: %v", p, out[:cur+1])
	}
}

func TestBruteForceMatchFinder_SingleByteInputYieldsNoMatches(t *testing.T) {
	f := NewBruteForceMatchFinder([]byte{0x42}, 1, 1)
	out := make([]uint32, 2)
	assert.Equal(t, uint32(0), f.CollectNext(out))
}
