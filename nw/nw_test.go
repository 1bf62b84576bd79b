// SPDX-License-Identifier: MIT

package nw_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/scoring"
)

// pairs flattens alignments into "A/B" strings for compact comparison.
func pairs(res nw.Result) []string {
	out := make([]string, len(res.Alignments))
	for k, al := range res.Alignments {
		a, b := al.Strings()
		out[k] = a + "/" + b
	}
	return out
}

// TestAlign_Textbook checks the classic GATTACA/GCATGCU example and the exact
// breadth-first order of its co-optimal alignments.
func TestAlign_Textbook(t *testing.T) {
	res, err := nw.Align([]rune("GATTACA"), []rune("GCATGCU"), scoring.Default())
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, []string{
		"G-ATTACA/GCA-TGCU",
		"G-ATTACA/GCAT-GCU",
		"G-ATTACA/GCATG-CU",
	}, pairs(res))
}

// TestAlign_EmptyAgainstSequence covers the i == 0 border.
func TestAlign_EmptyAgainstSequence(t *testing.T) {
	sc, err := scoring.New(scoring.WithGapExtend(-2))
	require.NoError(t, err)

	res, err := nw.Align(nil, []rune("ABC"), sc)
	require.NoError(t, err)
	assert.Equal(t, -6.0, res.Score)
	assert.Equal(t, []string{"---/ABC"}, pairs(res))

	res, err = nw.Align([]rune("ABC"), []rune(""), sc)
	require.NoError(t, err)
	assert.Equal(t, -6.0, res.Score)
	assert.Equal(t, []string{"ABC/---"}, pairs(res))
}

// TestAlign_BothEmpty yields score 0 and exactly one empty alignment.
func TestAlign_BothEmpty(t *testing.T) {
	res, err := nw.Align(nil, nil, scoring.Default())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Score)
	assert.False(t, math.Signbit(res.Score), "score must be +0")
	require.Len(t, res.Alignments, 1)
	assert.Equal(t, 0, res.Alignments[0].Len())
	assert.Empty(t, res.Alignments[0].B)

	score, err := nw.Score(nil, nil, scoring.Default())
	require.NoError(t, err)
	assert.False(t, math.Signbit(score), "score must be +0")

	g, err := nw.BuildGrid([]rune("A"), nil, scoring.Default())
	require.NoError(t, err)
	assert.Equal(t, "[0]\n[-1]\n", g.String())
}

// TestAlign_Branching checks multi-parent branching and ordering.
func TestAlign_Branching(t *testing.T) {
	cases := []struct {
		s1, s2 string
		score  float64
		want   []string
	}{
		{"AAA", "AA", 1, []string{"AAA/-AA", "AAA/A-A", "AAA/AA-"}},
		{"AB", "BA", -1, []string{"-AB/BA-", "AB-/-BA"}},
		{"ACGT", "AGT", 2, []string{"ACGT/A-GT"}},
		{"A", "A", 1, []string{"A/A"}},
	}
	for _, tc := range cases {
		t.Run(tc.s1+"_"+tc.s2, func(t *testing.T) {
			res, err := nw.Align([]rune(tc.s1), []rune(tc.s2), scoring.Default())
			require.NoError(t, err)
			assert.Equal(t, tc.score, res.Score)
			assert.Equal(t, tc.want, pairs(res))
		})
	}
}

// TestAlign_SubstitutionMatrix aligns with a loaded matrix and a wider gap cost.
func TestAlign_SubstitutionMatrix(t *testing.T) {
	sc, err := scoring.New(scoring.WithGapExtend(-2))
	require.NoError(t, err)
	require.NoError(t, sc.LoadMatrix(strings.NewReader("A C G T\nA 2 -1 -1 -1\nC -1 2 -1 -1\nG -1 -1 2 -1\nT -1 -1 -1 2\n")))

	res, err := nw.Align([]rune("ACGT"), []rune("AGT"), sc)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Score)
	assert.Equal(t, []string{"ACGT/A-GT"}, pairs(res))

	_, err = nw.Align([]rune("ACGU"), []rune("AGT"), sc)
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	_, err = nw.Score([]rune("ACGU"), []rune("AGT"), sc)
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
}

// TestAlign_Errors covers argument validation.
func TestAlign_Errors(t *testing.T) {
	_, err := nw.Align([]rune("A"), []rune("A"), nil)
	assert.ErrorIs(t, err, nw.ErrNilScorer)
	_, err = nw.Score([]rune("A"), []rune("A"), nil)
	assert.ErrorIs(t, err, nw.ErrNilScorer)
	_, err = nw.BuildGrid([]rune("A"), []rune("A"), nil)
	assert.ErrorIs(t, err, nw.ErrNilScorer)

	_, err = nw.Align([]rune("A"), []rune("A"), scoring.Default(), nw.WithMaxAlignments(-1))
	assert.ErrorIs(t, err, nw.ErrOptionViolation)
}

// TestAlign_MaxAlignments stops enumeration and reports the limit.
func TestAlign_MaxAlignments(t *testing.T) {
	s1, s2 := []rune("GATTACA"), []rune("GCATGCU")

	res, err := nw.Align(s1, s2, scoring.Default(), nw.WithMaxAlignments(2))
	assert.ErrorIs(t, err, nw.ErrAlignmentLimit)
	assert.Equal(t, 0.0, res.Score)
	assert.Len(t, res.Alignments, 2)

	// A limit equal to the total is not an error.
	res, err = nw.Align(s1, s2, scoring.Default(), nw.WithMaxAlignments(3))
	require.NoError(t, err)
	assert.Len(t, res.Alignments, 3)
}

// TestAlign_Hooks covers OnAlignment and context cancellation.
func TestAlign_Hooks(t *testing.T) {
	var seen int
	_, err := nw.Align([]rune("AAA"), []rune("AA"), scoring.Default(),
		nw.WithOnAlignment(func(nw.Alignment) error { seen++; return nil }))
	require.NoError(t, err)
	assert.Equal(t, 3, seen)

	stop := errors.New("stop")
	_, err = nw.Align([]rune("AAA"), []rune("AA"), scoring.Default(),
		nw.WithOnAlignment(func(nw.Alignment) error { return stop }))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = nw.Align([]rune("AAA"), []rune("AA"), scoring.Default(), nw.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBuildGrid checks borders, interior and bounds.
func TestBuildGrid(t *testing.T) {
	sc, err := scoring.New(scoring.WithGapExtend(-2))
	require.NoError(t, err)

	g, err := nw.BuildGrid([]rune("AC"), []rune("A"), sc)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 2, g.Cols())

	want := [][]float64{
		{0, -2},
		{-2, 1},
		{-4, -1},
	}
	for i, row := range want {
		for j, v := range row {
			got, err := g.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, v, got, "cell (%d,%d)", i, j)
		}
	}
	assert.Equal(t, -1.0, g.Score())
	assert.Equal(t, "[0, -2]\n[-2, 1]\n[-4, -1]\n", g.String())

	_, err = g.At(3, 0)
	assert.ErrorIs(t, err, nw.ErrOutOfRange)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, nw.ErrOutOfRange)
}

// flatScorer scores every pair the same; every lattice path then ties.
type flatScorer struct{}

func (flatScorer) PairScore(a, b rune) (float64, error) { return -2, nil }
func (flatScorer) GapPenalty() float64                  { return -1 }

// TestAlign_AllPathsTie enumerates every monotone lattice path: with a
// diagonal costing exactly two gaps, 2×2 has 13 Delannoy paths.
func TestAlign_AllPathsTie(t *testing.T) {
	res, err := nw.Align([]rune("XY"), []rune("UV"), flatScorer{})
	require.NoError(t, err)
	assert.Equal(t, -4.0, res.Score)
	assert.Len(t, res.Alignments, 13)
}
