// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package matchfinder

import (
	"errors"
	"fmt"
	"io"

	"github.com/tarsa/matchfinder/internal/numeric"
)

// Interpolate reads an Essential-kind Header and its matches from r (already
// sorted by (position, length)), and writes an Interpolated-kind
// Header followed by the full reconstructed optimal-match set to w.
func Interpolate(r io.Reader, w io.Writer, progressPeriod int, progressFn func(processed int)) error {
	header, err := ReadHeader(r)
	if err != nil {
		return err
	}
	if err := header.Validate(); err != nil {
		return err
	}
	if header.Kind != KindEssential {
		return fmt.Errorf("%w: interpolate requires an essential-matches file", ErrCorruptFile)
	}

	minMatch := uint32(header.MinMatch)
	maxMatch := uint32(header.MaxMatch)

	nextEssential, loadNext, err := essentialMatchReader(r, minMatch, maxMatch)
	if err != nil {
		return err
	}

	outHeader := NewInterpolatedHeader(header.InputSize, header.MinMatch, header.MaxMatch)
	if err := outHeader.WriteTo(w); err != nil {
		return fmt.Errorf("write interpolated header: %w", err)
	}

	inheritedOffsets := make([]uint32, maxMatch+1)
	currentOffsets := make([]uint32, maxMatch+1)
	inheritedMaxMatch := -1

	var pending []Match

	for position := uint32(0); position < header.InputSize; position++ {
		currentMaxMatch := uint32(0)

		pending = pending[:0]
		for m := nextEssential(); m != nil && m.Position == position; m = nextEssential() {
			pending = append(pending, *m)
			if err := loadNext(); err != nil {
				return err
			}
		}
		for i := 1; i < len(pending); i++ {
			shorter, longer := pending[i-1], pending[i]
			if !(shorter.Length < longer.Length && shorter.Offset < longer.Offset) {
				return fmt.Errorf("%w: essential matches at position %d not strictly increasing (length,offset)", ErrCorruptFile, position)
			}
		}

		nextLength := minMatch
		for _, em := range pending {
			offset := position - em.Source()
			if !(int(em.Length) > inheritedMaxMatch || offset < inheritedOffsets[em.Length]) {
				return fmt.Errorf("%w: essential match at position %d length %d does not improve on inherited offset", ErrCorruptFile, position, em.Length)
			}
			for nextLength <= em.Length {
				currentOffsets[nextLength] = offset
				currentMaxMatch = nextLength
				nextLength++
			}
		}

		for lengthI := int(minMatch); lengthI <= inheritedMaxMatch; lengthI++ {
			length := uint32(lengthI)
			if length <= currentMaxMatch {
				currentOffsets[length] = numeric.Min(currentOffsets[length], inheritedOffsets[length])
			} else {
				currentOffsets[length] = inheritedOffsets[length]
				currentMaxMatch = length
			}
		}

		for length := minMatch; length <= currentMaxMatch; length++ {
			m := Match{Position: position, Length: length, Offset: currentOffsets[length]}
			if err := m.Validate(minMatch, maxMatch); err != nil {
				return err
			}
			if err := m.WriteTo(w); err != nil {
				return fmt.Errorf("write interpolated match: %w", err)
			}
		}

		for length := uint32(1); length < currentMaxMatch; length++ {
			inheritedOffsets[length] = currentOffsets[length+1]
		}
		inheritedMaxMatch = int(currentMaxMatch) - 1

		if progressFn != nil && progressPeriod > 0 && (position+1)%uint32(progressPeriod) == 0 {
			progressFn(int(position) + 1)
		}
	}

	return nil
}

// essentialMatchReader returns a lookahead cursor over the essential matches
// in r: nextEssential returns the currently buffered match (or nil at EOF);
// loadNext advances the buffer by reading and validating the next record.
func essentialMatchReader(r io.Reader, minMatch, maxMatch uint32) (nextEssential func() *Match, loadNext func() error, err error) {
	var current *Match

	loadNext = func() error {
		m, readErr := ReadMatch(r)
		if readErr == nil {
			if valErr := m.Validate(minMatch, maxMatch); valErr != nil {
				return valErr
			}
			current = &m
			return nil
		}
		if errors.Is(readErr, io.EOF) {
			current = nil
			return nil
		}
		return readErr
	}

	nextEssential = func() *Match { return current }

	if err = loadNext(); err != nil {
		return nil, nil, err
	}
	return nextEssential, loadNext, nil
}
