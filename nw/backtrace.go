// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
)

// column is one aligned column of a partial alignment. Columns form a
// persistent list running left to right; branches that leave the same cell
// share the columns to its right.
type column struct {
	a, b rune
	next *column
}

// partial is a worklist item: the alignment built so far for the suffixes
// seq1[i:] / seq2[j:], and the cell the backtrace stands on.
type partial struct {
	i, j  int
	head  *column // leftmost column built so far
	width int     // number of columns reachable from head
}

// walker encapsulates the mutable backtrace state.
type walker struct {
	*filler
	grid  *Grid
	opts  Options
	queue []partial
	out   []Alignment
}

// run drains the worklist and returns the completed alignments.
func (w *walker) run() ([]Alignment, error) {
	w.queue = append(w.queue, partial{i: len(w.seq1), j: len(w.seq2)})
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		p := w.queue[0]
		w.queue = w.queue[1:]

		switch {
		case p.i == 0:
			if err := w.emit(p, gaps(p.j), w.seq2[:p.j]); err != nil {
				return w.out, err
			}
		case p.j == 0:
			if err := w.emit(p, w.seq1[:p.i], gaps(p.i)); err != nil {
				return w.out, err
			}
		default:
			if err := w.expand(p); err != nil {
				return nil, err
			}
		}
	}

	return w.out, nil
}

// expand pushes one successor per recurrence term equal to the current cell,
// in diagonal, up, left order.
func (w *walker) expand(p partial) error {
	diag, up, left, err := w.terms(w.grid, p.i, p.j)
	if err != nil {
		return err
	}
	cell := w.grid.at(p.i, p.j)
	a, b := w.seq1[p.i-1], w.seq2[p.j-1]

	matched := false
	if cell == diag {
		w.push(p, p.i-1, p.j-1, a, b)
		matched = true
	}
	if cell == up {
		w.push(p, p.i-1, p.j, a, Gap)
		matched = true
	}
	if cell == left {
		w.push(p, p.i, p.j-1, Gap, b)
		matched = true
	}
	if !matched {
		return fmt.Errorf("%w: cell (%d,%d) = %v, terms %v/%v/%v", ErrBrokenTrace, p.i, p.j, cell, diag, up, left)
	}

	return nil
}

func (w *walker) push(p partial, i, j int, a, b rune) {
	w.queue = append(w.queue, partial{
		i:     i,
		j:     j,
		head:  &column{a: a, b: b, next: p.head},
		width: p.width + 1,
	})
}

// emit completes p with the remaining border prefixes and records it.
// Returns ErrAlignmentLimit once MaxAlignments alignments exist and work remains.
func (w *walker) emit(p partial, prefixA, prefixB []rune) error {
	n := len(prefixA) + p.width
	al := Alignment{A: make([]rune, 0, n), B: make([]rune, 0, n)}
	al.A = append(al.A, prefixA...)
	al.B = append(al.B, prefixB...)
	for c := p.head; c != nil; c = c.next {
		al.A = append(al.A, c.a)
		al.B = append(al.B, c.b)
	}

	if err := w.opts.OnAlignment(al); err != nil {
		return fmt.Errorf("nw: OnAlignment: %w", err)
	}
	w.out = append(w.out, al)

	if limit := w.opts.MaxAlignments; limit > 0 && len(w.out) >= limit && len(w.queue) > 0 {
		return fmt.Errorf("%w: stopped after %d alignments", ErrAlignmentLimit, len(w.out))
	}

	return nil
}

func gaps(n int) []rune {
	g := make([]rune, n)
	for k := range g {
		g[k] = Gap
	}
	return g
}
