package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	RegisterFlags(cmd.Flags(), DefaultConfig())
	return cmd
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Cmd: newTestCmd(t), Defaults: DefaultConfig()})
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 3500, cfg.Sampling.TrainingSamples)
	assert.Equal(t, 600, cfg.Sampling.TestingSamples)
	assert.Equal(t, 15, cfg.Shorten.MinLength)
	assert.Equal(t, 200, cfg.Filter.MinExclusive)
	assert.Equal(t, 300, cfg.Filter.MaxExclusive)
	assert.Equal(t, "../nchlt_train.txt", cfg.Paths.TrainOut)
	assert.False(t, cfg.Shorten.Enabled)
}

func TestLoad_FlagsOverride(t *testing.T) {
	cmd := newTestCmd(t)
	require.NoError(t, cmd.Flags().Parse([]string{
		"--training-samples=100",
		"--seed=42",
		"--shorten-test",
		"--data-dir=/tmp/data",
		"--log-format=json",
	}))

	cfg, err := Load(LoadOptions{Cmd: cmd, Defaults: DefaultConfig()})
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Sampling.TrainingSamples)
	assert.Equal(t, uint64(42), cfg.Sampling.Seed)
	assert.True(t, cfg.Shorten.Enabled)
	assert.Equal(t, "/tmp/data", cfg.Paths.DataDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 600, cfg.Sampling.TestingSamples)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LIDPREP_SAMPLING_TESTING_SAMPLES", "50")
	t.Setenv("LIDPREP_SHORTEN_MIN_LENGTH", "20")

	cfg, err := Load(LoadOptions{Cmd: newTestCmd(t), Defaults: DefaultConfig()})
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Sampling.TestingSamples)
	assert.Equal(t, 20, cfg.Shorten.MinLength)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lidprep.yaml")
	data := `
paths:
  data_dir: corpora
sampling:
  training_samples: 10
  seed: 7
filter:
  min_exclusive: 100
  max_exclusive: 150
input:
  strict_encoding: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(LoadOptions{Cmd: newTestCmd(t), ConfigFile: path, Defaults: DefaultConfig()})
	require.NoError(t, err)

	assert.Equal(t, "corpora", cfg.Paths.DataDir)
	assert.Equal(t, 10, cfg.Sampling.TrainingSamples)
	assert.Equal(t, uint64(7), cfg.Sampling.Seed)
	assert.Equal(t, 100, cfg.Filter.MinExclusive)
	assert.Equal(t, 150, cfg.Filter.MaxExclusive)
	assert.True(t, cfg.Input.StrictEncoding)
	assert.Equal(t, 600, cfg.Sampling.TestingSamples)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"), Defaults: DefaultConfig()})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"negative training", func(c *Config) { c.Sampling.TrainingSamples = -1 }, errInvalidSamples},
		{"negative testing", func(c *Config) { c.Sampling.TestingSamples = -1 }, errInvalidSamples},
		{"zero min length", func(c *Config) { c.Shorten.MinLength = 0 }, errInvalidMinLength},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }, errInvalidFormat},
		{"uppercase format", func(c *Config) { c.LogFormat = "JSON" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
