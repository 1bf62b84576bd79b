// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is the (m+1)×(n+1) dynamic programming matrix of one alignment,
// stored row-major in a flat slice. Row i / column j correspond to the first
// i symbols of seq1 and the first j symbols of seq2.
type Grid struct {
	rows, cols int
	data       []float64 // len == rows*cols
}

func newGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns m+1.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns n+1.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the cell (i, j) or ErrOutOfRange.
func (g *Grid) At(i, j int) (float64, error) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return 0, fmt.Errorf("Grid.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	return g.at(i, j), nil
}

// Score returns the bottom-right cell, the optimal global alignment score.
func (g *Grid) Score() float64 {
	return g.at(g.rows-1, g.cols-1)
}

func (g *Grid) at(i, j int) float64 {
	return g.data[i*g.cols+j]
}

func (g *Grid) set(i, j int, v float64) {
	g.data[i*g.cols+j] = v
}

// String renders one bracketed row per line, for debugging.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(g.at(i, j), 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
