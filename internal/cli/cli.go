// SPDX-License-Identifier: MIT

// Package cli implements the nwalign command tree:
//
//	nwalign [flags] SEQ1 SEQ2            align two sequences
//	nwalign score [flags] ALIGNED1 ALIGNED2  score a finished alignment
//	nwalign scheme [flags]               print the scoring scheme
//
// Run is the whole program minus os.Exit, so it can be driven from tests.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/internal/config"
	"github.com/katalvlaran/seqalign/internal/logging"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks errors caused by the command line itself.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

// app carries the state shared by every subcommand of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	cfg        config.Config
	log        *slog.Logger

	// flag targets; applied over cfg only when the flag was set
	match, mismatch, gap, gapOpen float64
	matrixFile                    string
	ignoreCase                    bool
	logLevel                      string
	logJSON                       bool

	alignFlags *alignFlags
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: logging.Discard()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(stderr, "nwalign:", err)

	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nwalign [flags] SEQ1 SEQ2",
		Short: "Optimal global alignment with every co-optimal path",
		Long: `nwalign computes the Needleman-Wunsch global alignment score of two
sequences and prints every alignment reaching it.

Scores come from match/mismatch constants or a substitution matrix file.
Settings are read from --config (YAML), then NWALIGN_* environment
variables, then flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.Float64Var(&a.match, "match-score", 0, "score of two equal symbols (default 1)")
	pf.Float64Var(&a.mismatch, "mismatch-penalty", 0, "penalty of two different symbols, sign ignored (default 1)")
	pf.Float64Var(&a.gap, "gap-penalty", 0, "penalty per gapped position, sign ignored (default 1)")
	pf.Float64Var(&a.gapOpen, "gap-open-penalty", 0, "extra penalty for the first gap of a run when re-scoring, sign ignored (default 0)")
	pf.StringVar(&a.matrixFile, "matrix-file", "", "substitution matrix file (overrides match/mismatch)")
	pf.BoolVar(&a.ignoreCase, "ignore-case", false, "upper-case sequences before aligning")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.logJSON, "log-json", false, "log JSON lines instead of text")

	a.bindAlign(root)
	root.AddCommand(a.scoreCmd(), a.schemeCmd())

	return root
}

// setup resolves configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("match-score") {
		cfg.MatchScore = &a.match
	}
	if flags.Changed("mismatch-penalty") {
		cfg.MismatchPenalty = &a.mismatch
	}
	if flags.Changed("gap-penalty") {
		cfg.GapPenalty = &a.gap
	}
	if flags.Changed("gap-open-penalty") {
		cfg.GapOpenPenalty = &a.gapOpen
	}
	if flags.Changed("matrix-file") {
		cfg.MatrixFile = a.matrixFile
	}
	if flags.Changed("ignore-case") {
		cfg.IgnoreCase = a.ignoreCase
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = a.logJSON
	}
	a.applyAlignFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return usageError{err}
	}

	a.cfg = cfg
	a.log = logging.New(logging.Config{Level: level, JSON: cfg.LogJSON, Writer: a.stderr, Service: "nwalign"})
	a.log.Debug("configuration resolved",
		"config", a.configPath,
		"matrix_file", cfg.MatrixFile,
		"max_alignments", cfg.MaxAlignments,
		"format", cfg.Format,
	)

	return nil
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
