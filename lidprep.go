package lidprep

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"github.com/jamesainslie/go-lidprep/corpus"
	"github.com/jamesainslie/go-lidprep/internal/sample"
)

const (
	// DefaultTrainingSamples is the number of training sentences per language.
	DefaultTrainingSamples = 3500

	// DefaultTestingSamples is the number of testing sentences per language.
	DefaultTestingSamples = 600

	// DefaultDataDir holds one <code>/improved_<code>.txt file per language.
	DefaultDataDir = "../feersum-lid-shared-task/data"

	// DefaultTrainPath and DefaultTestPath are the output files.
	DefaultTrainPath = "../nchlt_train.txt"
	DefaultTestPath  = "../nchlt_test.txt"
)

// DefaultPaths maps every language code to dataDir/<code>/improved_<code>.txt.
func DefaultPaths(dataDir string) map[string]string {
	paths := make(map[string]string, len(corpus.LoadOrder))
	for _, code := range corpus.LoadOrder {
		paths[code] = filepath.Join(dataDir, code, "improved_"+code+".txt")
	}
	return paths
}

// Dataset is the result of Prepare.
type Dataset struct {
	Train         []corpus.Sentence
	Test          []corpus.Sentence
	TestShortened []corpus.Sentence

	// Sizes is the number of sentences loaded per language.
	Sizes map[string]int
}

// TestOutput returns the test set to write: TestShortened when shorten is
// set, Test otherwise.
func (d *Dataset) TestOutput(shorten bool) []corpus.Sentence {
	if shorten {
		return d.TestShortened
	}
	return d.Test
}

// Preparer runs the corpus preparation pipeline. It is not safe for
// concurrent use; it owns a single random source.
type Preparer struct {
	loader      *corpus.Loader
	sampling    sample.Config
	minLength   int
	shortenTest bool
	rng         *rand.Rand
	logger      *slog.Logger
}

// New creates a Preparer.
func New(opts ...Option) (*Preparer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	loader := corpus.DefaultLoader()
	if cfg.loader != nil {
		l := *cfg.loader
		loader = &l
	}
	if loader.Logger == nil {
		loader.Logger = cfg.logger
	}
	if loader.MaxExclusive-loader.MinExclusive < 2 {
		return nil, fmt.Errorf("%w: %d < len < %d", ErrInvalidWindow, loader.MinExclusive, loader.MaxExclusive)
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Preparer{
		loader: loader,
		sampling: sample.Config{
			Languages:       corpus.Languages,
			TrainingSamples: cfg.trainingSamples,
			TestingSamples:  cfg.testingSamples,
		},
		minLength:   cfg.minLength,
		shortenTest: cfg.shortenTest,
		rng:         rng,
		logger:      cfg.logger,
	}, nil
}

// Prepare loads every language from paths, partitions the corpora and
// shortens the test set. It writes nothing.
func (p *Preparer) Prepare(paths map[string]string) (*Dataset, error) {
	corpora := make(map[string][]corpus.Sentence, len(corpus.LoadOrder))
	for _, code := range corpus.LoadOrder {
		path, ok := paths[code]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingLanguage, code)
		}

		sentences, err := p.loader.Load(path, code)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", code, err)
		}
		corpora[code] = sentences
	}

	split := sample.Partition(p.rng, corpora, p.sampling, p.logger)

	return &Dataset{
		Train:         split.Train,
		Test:          split.Test,
		TestShortened: corpus.Shorten(split.Test, p.minLength),
		Sizes:         split.Sizes,
	}, nil
}

// Save writes the training set to trainPath and the test set to testPath.
func (p *Preparer) Save(ds *Dataset, trainPath, testPath string) error {
	if err := corpus.Save(trainPath, ds.Train, p.logger); err != nil {
		return fmt.Errorf("saving train: %w", err)
	}
	if err := corpus.Save(testPath, ds.TestOutput(p.shortenTest), p.logger); err != nil {
		return fmt.Errorf("saving test: %w", err)
	}
	return nil
}

// Run prepares the corpora at paths and saves the result.
func (p *Preparer) Run(paths map[string]string, trainPath, testPath string) (*Dataset, error) {
	ds, err := p.Prepare(paths)
	if err != nil {
		return nil, err
	}
	if err := p.Save(ds, trainPath, testPath); err != nil {
		return nil, err
	}
	return ds, nil
}
