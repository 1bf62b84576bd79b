// SPDX-License-Identifier: MIT

// Package config resolves nwalign settings from, in increasing precedence:
// built-in defaults, a YAML file, NWALIGN_* environment variables, and
// command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/scoring"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "NWALIGN_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every user-tunable setting. Nil score pointers keep the
// scoring package defaults.
//
// Penalties are stored as given and negated on use: a mismatch penalty of 2
// and of -2 both score -2, as do gap penalties.
type Config struct {
	MatchScore      *float64 `yaml:"match_score" env:"MATCH_SCORE"`
	MismatchPenalty *float64 `yaml:"mismatch_penalty" env:"MISMATCH_PENALTY"`
	GapPenalty      *float64 `yaml:"gap_penalty" env:"GAP_PENALTY"`
	GapOpenPenalty  *float64 `yaml:"gap_open_penalty" env:"GAP_OPEN_PENALTY"`
	MatrixFile      string   `yaml:"matrix_file" env:"MATRIX_FILE"`

	MaxAlignments int    `yaml:"max_alignments" env:"MAX_ALIGNMENTS"`
	IgnoreCase    bool   `yaml:"ignore_case" env:"IGNORE_CASE"`
	Format        string `yaml:"format" env:"FORMAT"`
	MetricsFile   string `yaml:"metrics_file" env:"METRICS_FILE"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	LogJSON  bool   `yaml:"log_json" env:"LOG_JSON"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Load reads path (skipped when empty) over the defaults, then applies the
// process environment.
func Load(path string) (Config, error) {
	return LoadWith(path, nil)
}

// LoadWith is Load with an explicit environment; nil means the process
// environment.
func LoadWith(path string, environ map[string]string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	return cfg, nil
}

// Validate reports the first setting outside its domain.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatText, FormatJSON)
	}
	if c.MaxAlignments < 0 {
		return fmt.Errorf("%w: max_alignments %d is negative", ErrInvalid, c.MaxAlignments)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

// SchemeOptions translates the score overrides into scoring options.
func (c Config) SchemeOptions() []scoring.Option {
	var opts []scoring.Option
	if c.MatchScore != nil {
		opts = append(opts, scoring.WithMatch(*c.MatchScore))
	}
	if c.MismatchPenalty != nil {
		opts = append(opts, scoring.WithMismatch(penalty(*c.MismatchPenalty)))
	}
	if c.GapPenalty != nil {
		opts = append(opts, scoring.WithGapExtend(penalty(*c.GapPenalty)))
	}
	if c.GapOpenPenalty != nil {
		opts = append(opts, scoring.WithGapOpen(penalty(*c.GapOpenPenalty)))
	}
	return opts
}

// penalty turns a magnitude into a non-positive score; zero stays +0.
func penalty(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -math.Abs(v)
}

// Scheme builds the scoring scheme, loading MatrixFile when set.
func (c Config) Scheme() (*scoring.Scheme, error) {
	sc, err := scoring.New(c.SchemeOptions()...)
	if err != nil {
		return nil, err
	}
	if c.MatrixFile != "" {
		if err := sc.LoadMatrixFile(c.MatrixFile); err != nil {
			return nil, err
		}
	}
	return sc, nil
}
