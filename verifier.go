// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package matchfinder

import (
	"fmt"
	"io"
)

// FinderFactory builds a MatchFinder over input with the given bounds; used
// by Verify to construct the finder that recomputes the optimal matches. Any
// flavour may be used, whichever one built the table (the two finders are
// interchangeable here; re-verifying with the other flavour catches a bug
// specific to one implementation).
type FinderFactory func(input []byte, minMatch, maxMatch uint32) MatchFinder

// BruteForceFinderFactory builds a BruteForceMatchFinder.
func BruteForceFinderFactory(input []byte, minMatch, maxMatch uint32) MatchFinder {
	return NewBruteForceMatchFinder(input, minMatch, maxMatch)
}

// HashedFinderFactory builds a HashedMatchFinder.
func HashedFinderFactory(input []byte, minMatch, maxMatch uint32) MatchFinder {
	return NewHashedMatchFinder(input, minMatch, maxMatch)
}

// Verify reads input and the Interpolated-kind Header and matches from r,
// re-runs newFinder over input, and checks every recomputed optimal match
// against the interpolated file. On success it returns nil; on any
// mismatch or short read it returns a *VerificationError carrying the count
// of matches successfully read before the failure.
func Verify(input []byte, newFinder FinderFactory, r io.Reader, progressPeriod int, progressFn func(processed int)) error {
	header, err := ReadHeader(r)
	if err != nil {
		return verificationFailure(0, err)
	}
	if err := header.Validate(); err != nil {
		return verificationFailure(0, err)
	}
	if header.Kind != KindInterpolated {
		return verificationFailure(0, fmt.Errorf("%w: verify requires an interpolated-matches file", ErrCorruptFile))
	}
	if int(header.InputSize) != len(input) {
		return verificationFailure(0, fmt.Errorf("%w: header input size %d does not match input length %d", ErrCorruptFile, header.InputSize, len(input)))
	}

	minMatch := uint32(header.MinMatch)
	maxMatch := uint32(header.MaxMatch)
	finder := newFinder(input, minMatch, maxMatch)
	currentOffsets := make([]uint32, maxMatch+1)

	matchesRead := 0
	for position := uint32(0); int(position) < len(input); position++ {
		currentMaxMatch := finder.CollectNext(currentOffsets)

		for length := minMatch; length <= currentMaxMatch; length++ {
			m, err := ReadMatch(r)
			if err != nil {
				return verificationFailure(matchesRead, fmt.Errorf("read interpolated match: %w", err))
			}
			if err := m.Validate(minMatch, maxMatch); err != nil {
				return verificationFailure(matchesRead, err)
			}
			if m.Position != position || m.Length != length || m.Offset != currentOffsets[length] {
				return verificationFailure(matchesRead, fmt.Errorf(
					"%w: position %d length %d: got (pos=%d,len=%d,off=%d), want off=%d",
					ErrCorruptFile, position, length, m.Position, m.Length, m.Offset, currentOffsets[length]))
			}
			matchesRead++
		}

		if progressFn != nil && progressPeriod > 0 && (int(position)+1)%progressPeriod == 0 {
			progressFn(int(position) + 1)
		}
	}

	var probe [1]byte
	if n, _ := r.Read(probe[:]); n != 0 {
		return verificationFailure(matchesRead, fmt.Errorf("%w: unexpected trailing data after interpolated matches", ErrCorruptFile))
	}

	return nil
}

func verificationFailure(count int, cause error) error {
	return &VerificationError{Count: count, Err: cause}
}
