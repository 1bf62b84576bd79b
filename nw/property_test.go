// SPDX-License-Identifier: MIT

package nw_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/scoring"
)

// randomSeq draws a sequence of length n over alphabet with a fixed RNG.
func randomSeq(rng *rand.Rand, alphabet string, n int) []rune {
	letters := []rune(alphabet)
	out := make([]rune, n)
	for k := range out {
		out[k] = letters[rng.Intn(len(letters))]
	}
	return out
}

// stripGaps removes gap markers from an aligned row.
func stripGaps(row []rune) []rune {
	out := make([]rune, 0, len(row))
	for _, r := range row {
		if r != nw.Gap {
			out = append(out, r)
		}
	}
	return out
}

// TestAlign_Properties checks, over deterministic random inputs:
//   - score symmetry under a symmetric scheme,
//   - re-scoring every alignment reproduces the optimal score,
//   - removing gaps reconstructs both inputs,
//   - no column holds two gaps,
//   - Score matches Align.
func TestAlign_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	schemes := map[string]*scoring.Scheme{
		"default": scoring.Default(),
	}
	weighted, err := scoring.New(scoring.WithMatch(2), scoring.WithMismatch(-3), scoring.WithGapExtend(-1.5))
	require.NoError(t, err)
	schemes["weighted"] = weighted

	for name, sc := range schemes {
		for round := 0; round < 40; round++ {
			s1 := randomSeq(rng, "ACGT", rng.Intn(9))
			s2 := randomSeq(rng, "ACGT", rng.Intn(9))

			res, err := nw.Align(s1, s2, sc)
			require.NoError(t, err, "%s %q/%q", name, string(s1), string(s2))
			require.NotEmpty(t, res.Alignments)

			rev, err := nw.Align(s2, s1, sc)
			require.NoError(t, err)
			assert.Equal(t, res.Score, rev.Score, "symmetry %q/%q", string(s1), string(s2))

			only, err := nw.Score(s1, s2, sc)
			require.NoError(t, err)
			assert.Equal(t, res.Score, only, "two-row score %q/%q", string(s1), string(s2))

			for _, al := range res.Alignments {
				require.Equal(t, len(al.A), len(al.B))
				for k := range al.A {
					assert.False(t, al.A[k] == nw.Gap && al.B[k] == nw.Gap, "double gap at %d", k)
				}
				assert.Equal(t, s1, stripGaps(al.A))
				assert.Equal(t, s2, stripGaps(al.B))

				got, err := sc.ScoreAlignment(al.A, al.B)
				require.NoError(t, err)
				assert.InDelta(t, res.Score, got, 1e-9, "rescore %s", al.String())
			}
		}
	}
}

// TestAlign_Idempotent verifies two calls with identical inputs agree exactly.
func TestAlign_Idempotent(t *testing.T) {
	sc := scoring.Default()
	s1, s2 := []rune("TGCATAGCAT"), []rune("ATGCTAGTCA")

	first, err := nw.Align(s1, s2, sc)
	require.NoError(t, err)
	second, err := nw.Align(s1, s2, sc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
