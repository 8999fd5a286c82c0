// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package matchfinder

// MatchFinder is a stateful cursor over an input that, on each call,
// advances to the next position and reports its optimal-offset vector O_p
// restricted to lengths [MinMatch, result].
//
// CollectNext writes into out[0:MaxMatch+1]; slots [0:MinMatch) are zeroed,
// slots beyond the returned current_max_match are unspecified. Two
// MatchFinders over the same input and parameters must agree at every
// position.
type MatchFinder interface {
	// CollectNext advances the cursor by one position and fills out with the
	// optimal-offset vector for that position, returning current_max_match.
	CollectNext(out []uint32) uint32
}

// baseFinder holds the fields shared by every MatchFinder implementation,
// mirroring the Python ExhaustiveMatchFinder base class.
type baseFinder struct {
	input    []byte
	minMatch uint32
	maxMatch uint32
	position int // -1 before the first CollectNext call
}

func newBaseFinder(input []byte, minMatch, maxMatch uint32) baseFinder {
	return baseFinder{input: input, minMatch: minMatch, maxMatch: maxMatch, position: -1}
}
