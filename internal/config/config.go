// Package config loads lidprep settings from defaults, flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	lidprep "github.com/jamesainslie/go-lidprep"
	"github.com/jamesainslie/go-lidprep/corpus"
)

type Config struct {
	Paths    PathsConfig    `mapstructure:"paths"`
	Sampling SamplingConfig `mapstructure:"sampling"`
	Shorten  ShortenConfig  `mapstructure:"shorten"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Input    InputConfig    `mapstructure:"input"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type PathsConfig struct {
	DataDir  string `mapstructure:"data_dir"`
	TrainOut string `mapstructure:"train_out"`
	TestOut  string `mapstructure:"test_out"`
}

type SamplingConfig struct {
	TrainingSamples int    `mapstructure:"training_samples"`
	TestingSamples  int    `mapstructure:"testing_samples"`
	Seed            uint64 `mapstructure:"seed"` // 0 picks a random seed
}

type ShortenConfig struct {
	MinLength int  `mapstructure:"min_length"`
	Enabled   bool `mapstructure:"enabled"`
}

type FilterConfig struct {
	MinExclusive int `mapstructure:"min_exclusive"`
	MaxExclusive int `mapstructure:"max_exclusive"`
}

type InputConfig struct {
	StrictEncoding bool `mapstructure:"strict_encoding"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

var (
	errInvalidSamples   = errors.New("sample counts must not be negative")
	errInvalidMinLength = errors.New("shorten.min_length must be positive")
	errInvalidFormat    = errors.New("log_format must be text or json")
)

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			DataDir:  lidprep.DefaultDataDir,
			TrainOut: lidprep.DefaultTrainPath,
			TestOut:  lidprep.DefaultTestPath,
		},
		Sampling: SamplingConfig{
			TrainingSamples: lidprep.DefaultTrainingSamples,
			TestingSamples:  lidprep.DefaultTestingSamples,
		},
		Shorten: ShortenConfig{
			MinLength: corpus.DefaultMinLength,
		},
		Filter: FilterConfig{
			MinExclusive: corpus.DefaultMinExclusive,
			MaxExclusive: corpus.DefaultMaxExclusive,
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("data-dir", defaults.Paths.DataDir, "Directory holding <code>/improved_<code>.txt corpora")
	fs.String("train-out", defaults.Paths.TrainOut, "Training set output file")
	fs.String("test-out", defaults.Paths.TestOut, "Test set output file")
	fs.Int("training-samples", defaults.Sampling.TrainingSamples, "Training sentences per language")
	fs.Int("testing-samples", defaults.Sampling.TestingSamples, "Testing sentences per language")
	fs.Uint64("seed", defaults.Sampling.Seed, "Random seed (0 for a random seed)")
	fs.Int("min-length", defaults.Shorten.MinLength, "Test sentence shortening length")
	fs.Bool("shorten-test", defaults.Shorten.Enabled, "Write shortened test sentences")
	fs.Int("filter-min", defaults.Filter.MinExclusive, "Keep sentences longer than this")
	fs.Int("filter-max", defaults.Filter.MaxExclusive, "Keep sentences shorter than this")
	fs.Bool("strict-encoding", defaults.Input.StrictEncoding, "Fail on malformed UTF-8 input")
	fs.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	fs.String("log-format", defaults.LogFormat, "Log format: text or json")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("LIDPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("lidprep")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate reports settings the pipeline cannot run with. The length window
// is checked by lidprep.New.
func (c Config) Validate() error {
	if c.Sampling.TrainingSamples < 0 || c.Sampling.TestingSamples < 0 {
		return errInvalidSamples
	}
	if c.Shorten.MinLength <= 0 {
		return errInvalidMinLength
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errInvalidFormat
	}
	return nil
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"data-dir":         "paths.data_dir",
	"train-out":        "paths.train_out",
	"test-out":         "paths.test_out",
	"training-samples": "sampling.training_samples",
	"testing-samples":  "sampling.testing_samples",
	"seed":             "sampling.seed",
	"min-length":       "shorten.min_length",
	"shorten-test":     "shorten.enabled",
	"filter-min":       "filter.min_exclusive",
	"filter-max":       "filter.max_exclusive",
	"strict-encoding":  "input.strict_encoding",
	"log-level":        "log_level",
	"log-format":       "log_format",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.data_dir", c.Paths.DataDir)
	v.SetDefault("paths.train_out", c.Paths.TrainOut)
	v.SetDefault("paths.test_out", c.Paths.TestOut)
	v.SetDefault("sampling.training_samples", c.Sampling.TrainingSamples)
	v.SetDefault("sampling.testing_samples", c.Sampling.TestingSamples)
	v.SetDefault("sampling.seed", c.Sampling.Seed)
	v.SetDefault("shorten.min_length", c.Shorten.MinLength)
	v.SetDefault("shorten.enabled", c.Shorten.Enabled)
	v.SetDefault("filter.min_exclusive", c.Filter.MinExclusive)
	v.SetDefault("filter.max_exclusive", c.Filter.MaxExclusive)
	v.SetDefault("input.strict_encoding", c.Input.StrictEncoding)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("log_format", c.LogFormat)
}
