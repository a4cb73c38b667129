package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-lidprep/corpus"
	"github.com/jamesainslie/go-lidprep/internal/report"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [FILE...]",
		Short: "Summarize written train/test files (default: the configured outputs)",
		Example: `  lidprep stats
  lidprep stats ../nchlt_train.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{a.cfg.Paths.TrainOut, a.cfg.Paths.TestOut}
			}

			files := make([]report.File, 0, len(args))
			for _, path := range args {
				sentences, err := corpus.ReadFile(path)
				if err != nil {
					return fmt.Errorf("stats: %w", err)
				}
				files = append(files, report.Summarize(path, sentences))
			}

			b, err := report.Marshal(files)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}
