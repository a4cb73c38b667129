// Package sample partitions per-language corpora into training and testing sets.
package sample

import (
	"log/slog"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-lidprep/corpus"
)

// Config holds partitioning parameters.
type Config struct {
	Languages       []string // concatenation order for both windows
	TrainingSamples int      // per language
	TestingSamples  int      // per language
}

// DefaultConfig returns the NCHLT sampling configuration.
func DefaultConfig() Config {
	return Config{
		Languages:       corpus.Languages,
		TrainingSamples: 3500,
		TestingSamples:  600,
	}
}

// Split holds the merged training and testing sets.
type Split struct {
	Train []corpus.Sentence
	Test  []corpus.Sentence
	Sizes map[string]int // per-language corpus size before slicing
}

// Shuffle permutes s in place. Every ordering is equally likely given rng.
func Shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Window returns up to n elements of s starting at offset. It never fails;
// offsets past the end yield an empty window.
func Window[T any](s []T, offset, n int) []T {
	if offset < 0 || n <= 0 {
		return nil
	}
	return lo.Subset(s, offset, uint(n))
}

// Partition shuffles each corpus in place, takes a training window from the
// front of every corpus and a testing window right after it, concatenates
// both in cfg.Languages order, and shuffles the two results independently.
// Languages missing from corpora, or with fewer sentences than requested,
// contribute what they have.
func Partition(rng *rand.Rand, corpora map[string][]corpus.Sentence, cfg Config, logger *slog.Logger) Split {
	if logger == nil {
		logger = slog.Default()
	}

	split := Split{Sizes: make(map[string]int, len(cfg.Languages))}
	for _, lang := range cfg.Languages {
		Shuffle(rng, corpora[lang])
		split.Sizes[lang] = len(corpora[lang])
		logger.Info("corpus size", "language", lang, "sentences", len(corpora[lang]))
	}

	for _, lang := range cfg.Languages {
		split.Train = append(split.Train, Window(corpora[lang], 0, cfg.TrainingSamples)...)
	}
	for _, lang := range cfg.Languages {
		split.Test = append(split.Test, Window(corpora[lang], cfg.TrainingSamples, cfg.TestingSamples)...)
	}

	logger.Info("partitioned", "train", len(split.Train), "test", len(split.Test))

	Shuffle(rng, split.Train)
	Shuffle(rng, split.Test)

	return split
}
