// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

// Package numeric holds small generic helpers: the offset merge step used by
// the interpolator, and a monotonicity check over a slice of optimal offsets
// used by the finder tests.
package numeric

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b, matching the merge rule in the
// Interpolator that an essential match's offset always wins over an
// inherited one with a larger offset.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// NonDecreasing reports whether offsets[lo:hi] is sorted ascending, ignoring
// zero entries (which mark lengths below min_match that carry no offset).
// Longer matches never need a larger offset than a shorter one at the same
// position, since any source reachable at length L is also reachable at any
// shorter length.
func NonDecreasing[T constraints.Ordered](offsets []T, lo, hi int) bool {
	var zero T
	prev := zero
	havePrev := false
	for i := lo; i < hi; i++ {
		v := offsets[i]
		if v == zero {
			continue
		}
		if havePrev && v < prev {
			return false
		}
		prev = v
		havePrev = true
	}
	return true
}
