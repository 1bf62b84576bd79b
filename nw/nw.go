// SPDX-License-Identifier: MIT

package nw

import (
	"errors"
	"fmt"
)

// Align computes the optimal global alignment score of seq1 and seq2 under sc
// and enumerates every alignment reaching it.
//
// Stages:
//  1. Build the (m+1)×(n+1) matrix: borders hold gap·index, interior cells
//     the max of the diagonal, up and left terms.
//  2. Backtrace from (m, n) with a FIFO worklist, branching on every term
//     equal to the cell.
//
// Errors:
//   - ErrNilScorer, ErrOptionViolation for bad arguments.
//   - Scorer errors (e.g. scoring.ErrUnknownSymbol), wrapped with the cell.
//   - ErrAlignmentLimit with the partial Result when MaxAlignments was hit.
//   - ErrBrokenTrace on an internal inconsistency.
//   - ctx.Err() on cancellation, or the OnAlignment hook error.
//
// Complexity: O(m·n) time and memory for the matrix; the backtrace is
// proportional to the total length of all enumerated alignments.
func Align(seq1, seq2 []rune, sc Scorer, opts ...Option) (Result, error) {
	if sc == nil {
		return Result{}, ErrNilScorer
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	f := &filler{seq1: seq1, seq2: seq2, sc: sc, gap: sc.GapPenalty()}
	g, err := f.fill()
	if err != nil {
		return Result{}, err
	}

	w := &walker{filler: f, grid: g, opts: o}
	res := Result{Score: g.Score()}
	res.Alignments, err = w.run()
	if err != nil && !errors.Is(err, ErrAlignmentLimit) {
		return Result{}, err
	}

	return res, err
}

// BuildGrid returns the filled matrix without backtracing.
func BuildGrid(seq1, seq2 []rune, sc Scorer) (*Grid, error) {
	if sc == nil {
		return nil, ErrNilScorer
	}
	f := &filler{seq1: seq1, seq2: seq2, sc: sc, gap: sc.GapPenalty()}

	return f.fill()
}

// Score returns the optimal global alignment score keeping only two rows of
// the matrix. The value is identical to Align(...).Score.
// Complexity: O(m·n) time, O(n) memory.
func Score(seq1, seq2 []rune, sc Scorer) (float64, error) {
	if sc == nil {
		return 0, ErrNilScorer
	}
	gap := sc.GapPenalty()
	n := len(seq2)
	prev := make([]float64, n+1)
	curr := make([]float64, n+1)
	for j := range prev {
		prev[j] = border(gap, j)
	}
	for i := 1; i <= len(seq1); i++ {
		curr[0] = border(gap, i)
		for j := 1; j <= n; j++ {
			s, err := sc.PairScore(seq1[i-1], seq2[j-1])
			if err != nil {
				return 0, cellError(i, j, err)
			}
			curr[j] = max3(prev[j-1]+s, prev[j]+gap, curr[j-1]+gap)
		}
		prev, curr = curr, prev
	}

	return prev[n], nil
}

// filler owns the inputs of one call and the term arithmetic shared by matrix
// construction and backtrace.
type filler struct {
	seq1, seq2 []rune
	sc         Scorer
	gap        float64
}

func (f *filler) fill() (*Grid, error) {
	m, n := len(f.seq1), len(f.seq2)
	g := newGrid(m+1, n+1)
	for j := 0; j <= n; j++ {
		g.set(0, j, border(f.gap, j))
	}
	for i := 1; i <= m; i++ {
		g.set(i, 0, border(f.gap, i))
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag, up, left, err := f.terms(g, i, j)
			if err != nil {
				return nil, err
			}
			g.set(i, j, max3(diag, up, left))
		}
	}

	return g, nil
}

// terms returns the three recurrence candidates for cell (i, j):
// diagonal (pair i-1/j-1), up (gap in seq2), left (gap in seq1).
//
// Tie detection compares these values with the stored cell using exact
// float64 equality, so both stages must call this helper; do not inline or
// reorder the additions.
func (f *filler) terms(g *Grid, i, j int) (diag, up, left float64, err error) {
	s, err := f.sc.PairScore(f.seq1[i-1], f.seq2[j-1])
	if err != nil {
		return 0, 0, 0, cellError(i, j, err)
	}
	diag = g.at(i-1, j-1) + s
	up = g.at(i-1, j) + f.gap
	left = g.at(i, j-1) + f.gap

	return diag, up, left, nil
}

// border is the score of k leading gaps. The origin is +0 for any gap, so
// an empty alignment never reports -0.
func border(gap float64, k int) float64 {
	if k == 0 {
		return 0
	}
	return gap * float64(k)
}

func cellError(i, j int, err error) error {
	return fmt.Errorf("nw: cell (%d,%d): %w", i, j, err)
}

// max3 returns the maximum of three float64 values.
func max3(a, b, c float64) float64 {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}
