package lidprep

import (
	"log/slog"
	"math/rand/v2"

	"github.com/jamesainslie/go-lidprep/corpus"
)

// Option configures a Preparer.
type Option func(*config)

type config struct {
	trainingSamples int
	testingSamples  int
	minLength       int
	shortenTest     bool
	rng             *rand.Rand
	loader          *corpus.Loader
	logger          *slog.Logger
}

func defaultConfig() config {
	return config{
		trainingSamples: DefaultTrainingSamples,
		testingSamples:  DefaultTestingSamples,
		minLength:       corpus.DefaultMinLength,
		logger:          slog.Default(),
	}
}

// WithTrainingSamples sets the training sentences taken per language (default: 3500).
func WithTrainingSamples(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.trainingSamples = n
		}
	}
}

// WithTestingSamples sets the testing sentences taken per language (default: 600).
func WithTestingSamples(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.testingSamples = n
		}
	}
}

// WithMinLength sets the test shortening length in characters (default: 15).
func WithMinLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.minLength = n
		}
	}
}

// WithShortenTest makes Save write the shortened test set instead of the
// full one (default: false).
func WithShortenTest(enabled bool) Option {
	return func(c *config) {
		c.shortenTest = enabled
	}
}

// WithSeed seeds the random source for reproducible output.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithLoader sets the corpus loader (default: corpus.DefaultLoader()).
func WithLoader(l *corpus.Loader) Option {
	return func(c *config) {
		if l != nil {
			c.loader = l
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
