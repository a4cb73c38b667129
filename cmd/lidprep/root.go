package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	lidprep "github.com/jamesainslie/go-lidprep"
	"github.com/jamesainslie/go-lidprep/corpus"
	"github.com/jamesainslie/go-lidprep/internal/config"
)

type app struct {
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()
	a := &app{}

	cmd := &cobra.Command{
		Use:           "lidprep",
		Short:         "Prepare the NCHLT language identification corpus",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: a.cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			a.cfg = loaded
			a.logger = newLogger(cmd.ErrOrStderr(), loaded.LogLevel, loaded.LogFormat)
			slog.SetDefault(a.logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare()
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newStatsCmd(a))

	return cmd
}

func (a *app) prepare() error {
	loader := corpus.DefaultLoader()
	loader.MinExclusive = a.cfg.Filter.MinExclusive
	loader.MaxExclusive = a.cfg.Filter.MaxExclusive
	loader.Strict = a.cfg.Input.StrictEncoding

	opts := []lidprep.Option{
		lidprep.WithTrainingSamples(a.cfg.Sampling.TrainingSamples),
		lidprep.WithTestingSamples(a.cfg.Sampling.TestingSamples),
		lidprep.WithMinLength(a.cfg.Shorten.MinLength),
		lidprep.WithShortenTest(a.cfg.Shorten.Enabled),
		lidprep.WithLoader(loader),
		lidprep.WithLogger(a.logger),
	}
	if a.cfg.Sampling.Seed != 0 {
		opts = append(opts, lidprep.WithSeed(a.cfg.Sampling.Seed))
	}

	p, err := lidprep.New(opts...)
	if err != nil {
		return err
	}

	ds, err := p.Run(lidprep.DefaultPaths(a.cfg.Paths.DataDir), a.cfg.Paths.TrainOut, a.cfg.Paths.TestOut)
	if err != nil {
		return err
	}

	a.logger.Info("done",
		"train", len(ds.Train),
		"test", len(ds.TestOutput(a.cfg.Shorten.Enabled)),
		"shortened", a.cfg.Shorten.Enabled,
	)
	return nil
}

// newLogger builds a text or JSON slog logger writing to w. Unknown levels
// fall back to info.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
