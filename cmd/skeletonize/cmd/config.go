package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// RunConfig holds every scalar parameter the "run" subcommand needs to
// drive skeletonize.Run, bound from flags and an optional config file via
// viper; environment variables are not read. Dims is parsed separately from its
// comma-separated flag value, since viper has no native "int slice from a
// single CSV flag" decoding.
type RunConfig struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
	Dims   []int  `mapstructure:"-"`

	ConnN int `mapstructure:"conn_n"`
	ConnK int `mapstructure:"conn_k"`

	Foreground int `mapstructure:"foreground"`
	Background int `mapstructure:"background"`

	ProgressBatch int `mapstructure:"progress_batch"`
}

// loadRunConfig builds a RunConfig from the bound viper instance, applying
// defaults for anything neither flag nor config file supplied,
// and parses dimsFlag (a comma-separated list of per-axis sizes) into Dims.
func loadRunConfig(v *viper.Viper, dimsFlag string) (*RunConfig, error) {
	setRunDefaults(v)

	var cfg RunConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cmd: decoding run configuration: %w", err)
	}
	if cfg.Input == "" {
		return nil, fmt.Errorf("cmd: --input is required")
	}

	dims, err := parseDims(dimsFlag)
	if err != nil {
		return nil, err
	}
	cfg.Dims = dims
	return &cfg, nil
}

// parseDims parses a comma-separated list of positive per-axis sizes, e.g.
// "7,7,7" for a 7x7x7 volume.
func parseDims(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("cmd: --dims is required (comma-separated per-axis sizes)")
	}
	parts := strings.Split(s, ",")
	dims := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("cmd: invalid --dims entry %q: must be a positive integer", p)
		}
		dims[i] = v
	}
	return dims, nil
}

func setRunDefaults(v *viper.Viper) {
	v.SetDefault("conn_n", 2)
	v.SetDefault("conn_k", 0)
	v.SetDefault("foreground", 1)
	v.SetDefault("background", 0)
	v.SetDefault("progress_batch", 256)
	v.SetDefault("output", "")
}
