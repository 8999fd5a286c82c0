// SPDX-License-Identifier: GPL-2.0-only

/*
Package matchfinder computes, represents, and verifies the complete set of
optimal back-references of a byte stream — the information a dictionary
compressor (LZ77-family) needs to encode the input.

For every byte position and every match length in a configured range, it
determines the smallest offset at which a string of that length repeats
earlier in the input, stores only the essential subset from which the full
set can be reconstructed by interpolation, and provides a verifier that
independently recomputes the optimal matches and checks them against a
reconstructed file.

# Finding essential matches

	f := matchfinder.NewHashedMatchFinder(input, minMatch, maxMatch)
	err := matchfinder.ExtractEssentialMatches(input, minMatch, maxMatch, f, essentialFile, 0, nil)

# Interpolating the full set

	err := matchfinder.Interpolate(essentialFile, interpolatedFile, 0, nil)

# Verifying an interpolated file

	err := matchfinder.Verify(input, matchfinder.BruteForceFinderFactory, interpolatedFile, 0, nil)

The command-line front-end, argument parsing, file-open plumbing, and
progress reporting are not part of this package; see the cliface
subpackage for the pure-function contracts a front-end calls into.
*/
package matchfinder
