// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package matchfinder

import (
	"fmt"
	"io"
)

// ExtractEssentialMatches reads input, writes an Essential-kind Header to w
// followed by the minimal subset of matches from which the full optimal set
// can be reconstructed by Interpolate. progressFn, if non-nil, is
// called after every position whose (1-based) count is a multiple of
// progressPeriod; progressPeriod <= 0 disables progress reporting.
func ExtractEssentialMatches(input []byte, minMatch, maxMatch uint32, finder MatchFinder, w io.Writer, progressPeriod int, progressFn func(processed int)) error {
	if len(input) >= 1<<31 {
		return fmt.Errorf("%w: input too large (%d bytes)", ErrValidationFailed, len(input))
	}

	header := NewEssentialHeader(uint32(len(input)), uint16(minMatch), uint16(maxMatch))
	if err := header.Validate(); err != nil {
		return err
	}
	if err := header.WriteTo(w); err != nil {
		return fmt.Errorf("write essential header: %w", err)
	}

	inheritedOffsets := make([]uint32, maxMatch+1)
	currentOffsets := make([]uint32, maxMatch+1)
	inheritedMaxMatch := -1 // -1 means "nothing inherited"; a signed counterpart to current_max_match-1

	for position := 0; position < len(input); position++ {
		currentMaxMatch := finder.CollectNext(currentOffsets)

		for length := minMatch; length <= currentMaxMatch; length++ {
			isInherited := int(length) <= inheritedMaxMatch && inheritedOffsets[length] == currentOffsets[length]
			longerHasSameOffset := length < currentMaxMatch && currentOffsets[length] == currentOffsets[length+1]
			if !isInherited && !longerHasSameOffset {
				m := Match{Position: uint32(position), Length: length, Offset: currentOffsets[length]}
				if err := m.Validate(minMatch, maxMatch); err != nil {
					return err
				}
				if err := m.WriteTo(w); err != nil {
					return fmt.Errorf("write essential match: %w", err)
				}
			}
		}

		for length := uint32(1); length < currentMaxMatch; length++ {
			inheritedOffsets[length] = currentOffsets[length+1]
		}
		inheritedMaxMatch = int(currentMaxMatch) - 1

		if progressFn != nil && progressPeriod > 0 && (position+1)%progressPeriod == 0 {
			progressFn(position + 1)
		}
	}

	return nil
}
