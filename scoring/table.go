// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"math"
)

// Table is a substitution matrix: a square table of pair scores indexed by
// the position of each symbol in the alphabet.
// Scores are stored row-major in a flat slice; row i / column j belong to
// symbols[i] / symbols[j].
type Table struct {
	symbols []rune
	index   map[rune]int
	data    []float64 // len == n*n
}

// NewTable builds a Table from an ordered alphabet and one row of scores per
// symbol, in the same order.
// Returns ErrBadShape if symbols repeat, the row count or any row length
// differs from len(symbols), or a score is NaN/±Inf.
// Complexity: O(n²).
func NewTable(symbols []rune, rows [][]float64) (*Table, error) {
	n := len(symbols)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrBadShape)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrBadShape, len(rows), n)
	}
	t := newTable(symbols)
	if t == nil {
		return nil, fmt.Errorf("%w: duplicate symbol in alphabet %q", ErrBadShape, string(symbols))
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %q has %d scores, want %d", ErrBadShape, symbols[i], len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite score at (%q,%q)", ErrBadShape, symbols[i], symbols[j])
			}
			t.data[i*n+j] = v
		}
	}

	return t, nil
}

// newTable allocates a zeroed table over symbols, or nil if a symbol repeats.
func newTable(symbols []rune) *Table {
	n := len(symbols)
	index := make(map[rune]int, n)
	for i, s := range symbols {
		if _, dup := index[s]; dup {
			return nil
		}
		index[s] = i
	}

	return &Table{
		symbols: append([]rune(nil), symbols...),
		index:   index,
		data:    make([]float64, n*n),
	}
}

// Len returns the alphabet size.
func (t *Table) Len() int {
	return len(t.symbols)
}

// Symbols returns a copy of the alphabet in index order.
func (t *Table) Symbols() []rune {
	return append([]rune(nil), t.symbols...)
}

// Index returns the row/column of sym and whether it belongs to the alphabet.
func (t *Table) Index(sym rune) (int, bool) {
	i, ok := t.index[sym]
	return i, ok
}

// At returns the score stored at (row, col).
func (t *Table) At(row, col int) (float64, error) {
	n := len(t.symbols)
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, fmt.Errorf("Table.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return t.data[row*n+col], nil
}

// Score returns the table entry for the pair (a, b).
// Returns ErrUnknownSymbol if either symbol is absent from the alphabet.
func (t *Table) Score(a, b rune) (float64, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, a)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
	}

	return t.data[i*len(t.symbols)+j], nil
}
