// Package lidprep prepares the NCHLT language-identification corpus.
//
// Raw sentence files for eleven South African languages are cleaned,
// filtered to 201–299 characters, shuffled, and cut into per-language
// training and testing windows that are merged into two tab-separated files.
//
// # Quick Start
//
//	p, err := lidprep.New(lidprep.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ds, err := p.Prepare(lidprep.DefaultPaths(lidprep.DefaultDataDir))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.Save(ds, lidprep.DefaultTrainPath, lidprep.DefaultTestPath); err != nil {
//	    log.Fatal(err)
//	}
//
// # Output Format
//
// One record per line, "text\tlabel\n", where label is a three-letter
// language code such as "zul" or "afr".
//
// # Randomness
//
// A Preparer owns a single random source. Without WithSeed or WithRand it is
// seeded from the runtime, so runs are not reproducible.
package lidprep
