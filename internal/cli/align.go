// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/internal/config"
	"github.com/katalvlaran/seqalign/internal/metrics"
	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/sequence"
)

// alignFlags are the root command's own flags.
type alignFlags struct {
	seq1File, seq2File string
	maxAlignments      int
	format             string
	metricsFile        string
	showMatrix         bool
}

func (a *app) bindAlign(root *cobra.Command) {
	var f alignFlags
	root.Args = func(cmd *cobra.Command, args []string) error {
		want := 2
		if f.seq1File != "" {
			want--
		}
		if f.seq2File != "" {
			want--
		}
		if len(args) != want {
			return usageError{fmt.Errorf("expected %d sequence argument(s), got %d", want, len(args))}
		}
		if f.seq1File == "-" && f.seq2File == "-" {
			return usageError{errors.New("--seq1-file and --seq2-file cannot both read standard input")}
		}
		return nil
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return a.runAlign(cmd, &f, args)
	}

	fl := root.Flags()
	fl.StringVar(&f.seq1File, "seq1-file", "", "read sequence 1 from a FASTA or plain-text file (- for stdin)")
	fl.StringVar(&f.seq2File, "seq2-file", "", "read sequence 2 from a FASTA or plain-text file (- for stdin)")
	fl.IntVar(&f.maxAlignments, "max-alignments", 0, "stop after this many alignments, 0 for all")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	fl.BoolVar(&f.showMatrix, "show-matrix", false, "print the score matrix before the alignments")
	root.PersistentFlags().StringVar(&f.format, "format", config.FormatText, "output format: text or json")

	a.alignFlags = &f
}

// applyAlignFlags copies explicitly set root flags over cfg.
func (a *app) applyAlignFlags(cmd *cobra.Command, cfg *config.Config) {
	f := a.alignFlags
	if f == nil {
		return
	}
	flags := cmd.Flags()
	if flags.Changed("max-alignments") {
		cfg.MaxAlignments = f.maxAlignments
	}
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
}

func (a *app) runAlign(cmd *cobra.Command, f *alignFlags, args []string) error {
	var seqOpts []sequence.Option
	if a.cfg.IgnoreCase {
		seqOpts = append(seqOpts, sequence.WithUpperCase())
	}

	seq1, seq2, err := a.readSequences(f, args, seqOpts)
	if err != nil {
		return err
	}

	sc, err := a.cfg.Scheme()
	if err != nil {
		return err
	}
	a.log.Debug("aligning",
		"len1", len(seq1),
		"len2", len(seq2),
		"matrix", sc.Table() != nil,
	)

	if f.showMatrix {
		g, err := nw.BuildGrid(seq1, seq2, sc)
		if err != nil {
			return err
		}
		if a.cfg.Format == config.FormatText {
			fmt.Fprintf(a.stdout, "Score matrix:\n%s\n", g)
		}
	}

	start := time.Now()
	res, err := nw.Align(seq1, seq2, sc,
		nw.WithContext(cmd.Context()),
		nw.WithMaxAlignments(a.cfg.MaxAlignments),
	)
	elapsed := time.Since(start)

	limited := errors.Is(err, nw.ErrAlignmentLimit)
	if err != nil && !limited {
		return err
	}
	if limited {
		a.log.Warn("alignment limit reached, output is partial",
			"max_alignments", a.cfg.MaxAlignments,
		)
	}
	a.log.Debug("alignment finished",
		"score", res.Score,
		"alignments", len(res.Alignments),
		"elapsed", elapsed,
	)

	if err := a.recordMetrics(seq1, seq2, res, elapsed, limited, sc.Table() != nil); err != nil {
		return err
	}

	out := report{
		Seq1:      string(seq1),
		Seq2:      string(seq2),
		Score:     res.Score,
		Truncated: limited,
	}
	for _, al := range res.Alignments {
		s1, s2 := al.Strings()
		out.Alignments = append(out.Alignments, pair{Seq1: s1, Seq2: s2})
	}

	return a.write(out)
}

func (a *app) readSequences(f *alignFlags, args []string, opts []sequence.Option) ([]rune, []rune, error) {
	next := func(file string) ([]rune, error) {
		if file != "" {
			rec, err := sequence.ReadFile(file, opts...)
			if err != nil {
				return nil, err
			}
			a.log.Debug("sequence read", "file", file, "id", rec.ID, "len", len(rec.Seq))
			return rec.Seq, nil
		}
		s := args[0]
		args = args[1:]
		seq, err := sequence.Parse(s, opts...)
		if err != nil {
			return nil, usageError{err}
		}
		return seq, nil
	}

	seq1, err := next(f.seq1File)
	if err != nil {
		return nil, nil, err
	}
	seq2, err := next(f.seq2File)
	if err != nil {
		return nil, nil, err
	}
	return seq1, seq2, nil
}

func (a *app) recordMetrics(seq1, seq2 []rune, res nw.Result, elapsed time.Duration, limited, matrix bool) error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	rec := metrics.New()
	run := metrics.Run{
		Cells:    (len(seq1) + 1) * (len(seq2) + 1),
		Duration: elapsed,
		Limited:  limited,
		Matrix:   matrix,
	}
	for _, al := range res.Alignments {
		run.Alignments = append(run.Alignments, al.Len())
	}
	rec.Observe(run)
	if err := rec.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("metrics written", "file", a.cfg.MetricsFile)

	return nil
}
