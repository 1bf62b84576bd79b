// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PairScore returns the score of aligning symbol a against symbol b.
//
// With a loaded matrix the result is matrix[index(a)][index(b)] and an
// absent symbol yields ErrUnknownSymbol. Without one, Match is returned for
// equal symbols and Mismatch otherwise.
// Complexity: O(1).
func (s *Scheme) PairScore(a, b rune) (float64, error) {
	if s.table != nil {
		return s.table.Score(a, b)
	}
	if a == b {
		return s.Match, nil
	}

	return s.Mismatch, nil
}

// GapPenalty returns the uniform per-gap cost applied by the alignment
// recurrence (GapExtend). GapOpen is deliberately not part of it.
func (s *Scheme) GapPenalty() float64 {
	return s.GapExtend
}

// ScoreAlignment scores a finished pairwise alignment left to right.
//
// Behavior:
//   - Both sides gapped at one position → ErrInvalidAlignment.
//   - One side gapped → GapExtend, plus GapOpen when the previous position
//     on the same side was not a gap. Position 0 never pays GapOpen.
//   - Otherwise → PairScore (its errors are returned with the position).
//
// The two sides are expected to have equal length; scoring quietly stops at
// the end of the shorter one.
// Complexity: O(min(len(a1), len(a2))).
func (s *Scheme) ScoreAlignment(a1, a2 []rune) (float64, error) {
	n := min(len(a1), len(a2))
	score := 0.0
	for i := 0; i < n; i++ {
		x, y := a1[i], a2[i]
		switch {
		case x == Gap && y == Gap:
			return 0, fmt.Errorf("%w: position %d", ErrInvalidAlignment, i)
		case x == Gap:
			score += s.GapExtend
			if i > 0 && a1[i-1] != Gap {
				score += s.GapOpen
			}
		case y == Gap:
			score += s.GapExtend
			if i > 0 && a2[i-1] != Gap {
				score += s.GapOpen
			}
		default:
			v, err := s.PairScore(x, y)
			if err != nil {
				return 0, fmt.Errorf("position %d: %w", i, err)
			}
			score += v
		}
	}

	return score, nil
}

// Symbols returns the loaded matrix alphabet in index order, or nil when the
// Scheme scores with match/mismatch constants.
func (s *Scheme) Symbols() []rune {
	if s.table == nil {
		return nil
	}
	return s.table.Symbols()
}

// Table returns the loaded substitution matrix, or nil.
func (s *Scheme) Table() *Table {
	return s.table
}

// String renders the Scheme for diagnostics.
//
// Without a matrix it is a four-line summary. With one, the gap penalties
// are written as '#' comment lines followed by the matrix in the same layout
// ParseTable reads, so the output can be loaded back.
func (s *Scheme) String() string {
	var b strings.Builder
	if s.table == nil {
		fmt.Fprintf(&b, "Match Score: %s\n", formatScore(s.Match))
		fmt.Fprintf(&b, "Mismatch Penalty: %s\n", formatScore(s.Mismatch))
		fmt.Fprintf(&b, "Gap Start Penalty: %s\n", formatScore(s.GapOpen))
		fmt.Fprintf(&b, "Gap Extension Penalty: %s", formatScore(s.GapExtend))
		return b.String()
	}

	fmt.Fprintf(&b, "# Gap Start Penalty: %s\n", formatScore(s.GapOpen))
	fmt.Fprintf(&b, "# Gap Extension Penalty: %s\n", formatScore(s.GapExtend))

	symbols := s.table.symbols
	header := make([]string, len(symbols))
	for i, sym := range symbols {
		header[i] = string(sym)
	}
	b.WriteString("   " + strings.Join(header, "  "))

	n := len(symbols)
	for i, sym := range symbols {
		b.WriteString("\n" + string(sym))
		for j := 0; j < n; j++ {
			v := s.table.data[i*n+j]
			if v < 0 {
				b.WriteString(" " + formatScore(v))
			} else {
				b.WriteString("  " + formatScore(v))
			}
		}
	}

	return b.String()
}

// formatScore prints integral values without a fractional part.
func formatScore(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
