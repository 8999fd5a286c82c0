// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package matchfinder

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractEssential(t *testing.T, input []byte, minMatch, maxMatch uint32, newFinder FinderFactory) []byte {
	t.Helper()
	var buf bytes.Buffer
	finder := newFinder(input, minMatch, maxMatch)
	require.NoError(t, ExtractEssentialMatches(input, minMatch, maxMatch, finder, &buf, 0, nil))
	return buf.Bytes()
}

func readAllMatches(t *testing.T, r *bytes.Reader) (Header, []Match) {
	t.Helper()
	header, err := ReadHeader(r)
	require.NoError(t, err)
	var matches []Match
	for {
		m, err := ReadMatch(r)
		if err != nil {
			require.True(t, errors.Is(err, io.EOF), "unexpected error reading matches: %v", err)
			break
		}
		matches = append(matches, m)
	}
	return header, matches
}

func TestExtractEssentialMatches_AbabExample(t *testing.T) {
	input := []byte("abab")
	raw := extractEssential(t, input, 2, 3, BruteForceFinderFactory)

	header, matches := readAllMatches(t, bytes.NewReader(raw))
	assert.Equal(t, KindEssential, header.Kind)
	assert.Equal(t, uint32(4), header.InputSize)

	// Only position 2 ever reaches min_match=2 (position 3's cap is 1 byte
	// remaining, below min_match); longer-has-same-offset suppresses nothing
	// here since there's only one length reported at position 2.
	require.Len(t, matches, 1)
	assert.Equal(t, Match{Position: 2, Length: 2, Offset: 2}, matches[0])
}

func TestExtractEssentialMatches_AaaaExample(t *testing.T) {
	input := []byte("aaaa")
	raw := extractEssential(t, input, 1, 3, BruteForceFinderFactory)

	header, matches := readAllMatches(t, bytes.NewReader(raw))
	assert.Equal(t, KindEssential, header.Kind)

	// At p=1 all of lengths 1,2,3 share offset 1: longer-has-same-offset
	// suppresses 1 and 2, leaving only the length-3 record essential.
	// p=2 inherits length 1 (offset 1) from p=1's length 2, and its own
	// length 2 (offset 1) equals the inherited value too, so nothing new is
	// essential at p=2. p=3's single reachable length (1, offset 1) is
	// inherited from p=2's length 2. So the whole run collapses to one
	// essential match.
	require.Len(t, matches, 1)
	assert.Equal(t, Match{Position: 1, Length: 3, Offset: 1}, matches[0])
}

func TestExtractEssentialMatches_BothFindersAgree(t *testing.T) {
	inputs := [][]byte{
		[]byte("abcabcabcabcxyzabcabc"),
		[]byte("aaaaaaaaaaaaaaaaaaaa"),
		[]byte("the quick brown fox jumps over the lazy dog the quick brown fox"),
	}
	for _, input := range inputs {
		bf := extractEssential(t, input, 3, 8, BruteForceFinderFactory)
		hf := extractEssential(t, input, 3, 8, HashedFinderFactory)
		assert.Equal(t, bf, hf, "essential bytes for %q should match regardless of finder", input)
	}
}

func TestExtractEssentialMatches_EmptyInput(t *testing.T) {
	raw := extractEssential(t, nil, 1, 4, BruteForceFinderFactory)
	header, matches := readAllMatches(t, bytes.NewReader(raw))
	assert.Equal(t, uint32(0), header.InputSize)
	assert.Empty(t, matches)
}

func TestExtractEssentialMatches_SingleByteInput(t *testing.T) {
	raw := extractEssential(t, []byte{0x42}, 1, 4, BruteForceFinderFactory)
	_, matches := readAllMatches(t, bytes.NewReader(raw))
	assert.Empty(t, matches)
}
