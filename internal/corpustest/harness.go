// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

// Package corpustest is a developer-only harness that cross-validates
// HashedMatchFinder against BruteForceMatchFinder over randomly generated
// corpora. It is not part of the public API and never runs in the hot path
// of extraction, interpolation, or verification.
package corpustest

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/tarsa/matchfinder"
)

// Config holds the parameters of one equivalence run.
type Config struct {
	CorpusCount int
	CorpusSize  int
	Seed        int64
	MinMatch    uint32
	MaxMatch    uint32
	AlphabetLen int
}

// DefaultConfig returns a small, fast equivalence configuration.
func DefaultConfig() Config {
	return Config{
		CorpusCount: 20,
		CorpusSize:  500,
		Seed:        1,
		MinMatch:    1,
		MaxMatch:    8,
		AlphabetLen: 4,
	}
}

// FlagSet returns a pflag.FlagSet bound to cfg, for a command-line-driven
// invocation of the harness (e.g. from a throwaway `go run` tool), without
// pulling flag parsing into the core algorithm packages.
func FlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("corpustest", pflag.ContinueOnError)
	fs.IntVar(&cfg.CorpusCount, "corpus-count", cfg.CorpusCount, "number of random corpora to generate")
	fs.IntVar(&cfg.CorpusSize, "corpus-size", cfg.CorpusSize, "byte length of each random corpus")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "PRNG seed for corpus generation")
	fs.Uint32Var(&cfg.MinMatch, "min-match", cfg.MinMatch, "minimum match length")
	fs.Uint32Var(&cfg.MaxMatch, "max-match", cfg.MaxMatch, "maximum match length")
	fs.IntVar(&cfg.AlphabetLen, "alphabet-len", cfg.AlphabetLen, "size of the random byte alphabet (smaller means more repeats)")
	return fs
}

// Mismatch describes one position where the two finders disagree.
type Mismatch struct {
	CorpusIndex int
	Position    int
	Length      uint32
	BruteOffset uint32
	HashOffset  uint32
}

// Run generates cfg.CorpusCount random corpora and compares
// BruteForceMatchFinder against HashedMatchFinder position by position,
// logging a summary per corpus via log and returning every mismatch found.
// An empty return slice means the two finders agreed on every corpus.
func Run(cfg Config, log *logrus.Logger) []Mismatch {
	if log == nil {
		log = logrus.New()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	alphabet := make([]byte, cfg.AlphabetLen)
	for i := range alphabet {
		alphabet[i] = byte('a' + i)
	}

	var mismatches []Mismatch
	for c := 0; c < cfg.CorpusCount; c++ {
		corpus := make([]byte, cfg.CorpusSize)
		for i := range corpus {
			corpus[i] = alphabet[rng.Intn(len(alphabet))]
		}

		found := compareCorpus(c, corpus, cfg.MinMatch, cfg.MaxMatch)
		entry := log.WithFields(logrus.Fields{
			"corpus":       c,
			"size":         cfg.CorpusSize,
			"mismatches":   len(found),
			"min_match":    cfg.MinMatch,
			"max_match":    cfg.MaxMatch,
			"alphabet_len": cfg.AlphabetLen,
		})
		if len(found) == 0 {
			entry.Info("corpus equivalence check passed")
		} else {
			entry.Warn("corpus equivalence check found mismatches")
		}
		mismatches = append(mismatches, found...)
	}
	return mismatches
}

func compareCorpus(corpusIndex int, corpus []byte, minMatch, maxMatch uint32) []Mismatch {
	bf := matchfinder.NewBruteForceMatchFinder(corpus, minMatch, maxMatch)
	hf := matchfinder.NewHashedMatchFinder(corpus, minMatch, maxMatch)
	bfOut := make([]uint32, maxMatch+1)
	hfOut := make([]uint32, maxMatch+1)

	var mismatches []Mismatch
	for p := 0; p < len(corpus); p++ {
		bfCur := bf.CollectNext(bfOut)
		hfCur := hf.CollectNext(hfOut)
		top := bfCur
		if hfCur > top {
			top = hfCur
		}
		for l := minMatch; l <= top; l++ {
			bfOffset, hfOffset := uint32(0), uint32(0)
			if l <= bfCur {
				bfOffset = bfOut[l]
			}
			if l <= hfCur {
				hfOffset = hfOut[l]
			}
			if bfOffset != hfOffset {
				mismatches = append(mismatches, Mismatch{
					CorpusIndex: corpusIndex,
					Position:    p,
					Length:      l,
					BruteOffset: bfOffset,
					HashOffset:  hfOffset,
				})
			}
		}
	}
	return mismatches
}
