// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package matchfinder

// BruteForceMatchFinder is the reference MatchFinder: for each position it
// enumerates candidate offsets 1, 2, ... in increasing order and keeps
// extending current_max_match as a longer common prefix is found. Because
// offsets are tried smallest-first, the first offset reaching any length is
// necessarily the smallest one, which gives optimality and monotonicity by
// construction.
type BruteForceMatchFinder struct {
	baseFinder
}

// NewBruteForceMatchFinder builds a BruteForceMatchFinder over input with the
// given inclusive match-length bounds.
func NewBruteForceMatchFinder(input []byte, minMatch, maxMatch uint32) *BruteForceMatchFinder {
	return &BruteForceMatchFinder{baseFinder: newBaseFinder(input, minMatch, maxMatch)}
}

// CollectNext implements MatchFinder.
func (f *BruteForceMatchFinder) CollectNext(out []uint32) uint32 {
	f.position++
	p := f.position

	var currentMaxMatch uint32
	for l := uint32(0); l < f.minMatch; l++ {
		out[l] = 0
	}

	for offset := 1; offset <= p && currentMaxMatch < f.maxMatch; offset++ {
		length := uint32(lcp(f.input, p-offset, p, int(f.maxMatch)))
		for currentMaxMatch < length {
			currentMaxMatch++
			if currentMaxMatch >= f.minMatch {
				out[currentMaxMatch] = uint32(offset)
			} else {
				out[currentMaxMatch] = 0
			}
		}
	}

	return currentMaxMatch
}
