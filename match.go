// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package matchfinder

import (
	"fmt"
	"io"
)

// matchSizeOnDisk is the binary size in bytes of one Match record: four
// big-endian 32-bit fields (position, length, offset, zero pad).
const matchSizeOnDisk = 4 * 4

// MaxMatchLength is the upper bound on any match length.
const MaxMatchLength = 120

// Match is a back-reference: bytes [position-offset, position-offset+length)
// equal bytes [position, position+length).
type Match struct {
	Position uint32
	Length   uint32
	Offset   uint32
}

// Source returns the absolute byte index the match refers back to.
func (m Match) Source() uint32 {
	return m.Position - m.Offset
}

// NewMatchFromSource builds a Match from a target position, length, and
// source position (rather than an explicit offset).
func NewMatchFromSource(position, length, source uint32) Match {
	return Match{Position: position, Length: length, Offset: position - source}
}

// Validate checks: 1 <= offset <= position < 2^31;
// 1 <= minMatch <= length <= maxMatch <= 120.
func (m Match) Validate(minMatch, maxMatch uint32) error {
	if m.Offset < 1 || m.Offset > m.Position || m.Position >= 1<<31 {
		return fmt.Errorf("%w: match %+v has invalid offset/position", ErrValidationFailed, m)
	}
	if minMatch < 1 || minMatch > m.Length || m.Length > maxMatch || maxMatch > MaxMatchLength {
		return fmt.Errorf("%w: match %+v has invalid length bounds [%d,%d]", ErrValidationFailed, m, minMatch, maxMatch)
	}
	return nil
}

// Less reports whether m sorts before other under the total order on
// (position, length, offset).
func (m Match) Less(other Match) bool {
	if m.Position != other.Position {
		return m.Position < other.Position
	}
	if m.Length != other.Length {
		return m.Length < other.Length
	}
	return m.Offset < other.Offset
}

// ReadMatch reads one 16-byte Match record from r. The trailing zero pad
// must be exactly zero; a non-zero pad is ErrCorruptFile. If r is cleanly
// exhausted before any byte of the record (i.e. there is no next record),
// the returned error is io.EOF unwrapped so callers reading a sequence of
// records can tell "no more records" from "truncated record".
func ReadMatch(r io.Reader) (Match, error) {
	position, clean, rawErr := readBigEndianRaw(r, 4)
	if rawErr != nil {
		if clean {
			return Match{}, io.EOF
		}
		return Match{}, fmt.Errorf("read match position: %w: %v", ErrShortRead, rawErr)
	}
	length, err := readBigEndian(r, 4)
	if err != nil {
		return Match{}, fmt.Errorf("read match length: %w", err)
	}
	offset, err := readBigEndian(r, 4)
	if err != nil {
		return Match{}, fmt.Errorf("read match offset: %w", err)
	}
	pad, err := readBigEndian(r, 4)
	if err != nil {
		return Match{}, fmt.Errorf("read match pad: %w", err)
	}
	if pad != 0 {
		return Match{}, fmt.Errorf("%w: match pad is %d, want 0", ErrCorruptFile, pad)
	}

	return Match{
		Position: uint32(position),
		Length:   uint32(length),
		Offset:   uint32(offset),
	}, nil
}

// WriteTo writes the Match as a 16-byte big-endian record to w.
func (m Match) WriteTo(w io.Writer) error {
	if err := writeBigEndian(w, uint64(m.Position), 4); err != nil {
		return fmt.Errorf("write match position: %w", err)
	}
	if err := writeBigEndian(w, uint64(m.Length), 4); err != nil {
		return fmt.Errorf("write match length: %w", err)
	}
	if err := writeBigEndian(w, uint64(m.Offset), 4); err != nil {
		return fmt.Errorf("write match offset: %w", err)
	}
	if err := writeBigEndian(w, 0, 4); err != nil {
		return fmt.Errorf("write match pad: %w", err)
	}
	return nil
}

// lcp returns the longest common prefix length, capped at maxLen, of the
// input starting at sourcePos and the input starting at targetPos.
func lcp(input []byte, sourcePos, targetPos int, maxLen int) int {
	n := len(input)
	length := 0
	for sourcePos+length < n && targetPos+length < n &&
		length < maxLen &&
		input[sourcePos+length] == input[targetPos+length] {
		length++
	}
	return length
}
