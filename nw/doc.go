// SPDX-License-Identifier: MIT

// Package nw computes Needleman–Wunsch global alignments and enumerates
// every alignment that reaches the optimal score.
//
// 🚀 What is global alignment?
//
//	Every symbol of both sequences takes part in the alignment, end to end.
//	Each column pairs two symbols or a symbol with a gap marker; the
//	alignment score sums pair scores and a uniform per-gap cost.
//
// ✨ Key features:
//   - full (m+1)×(n+1) DP matrix, exact O(m·n) time and memory
//   - multi-parent backtrace: every co-optimal alignment is returned
//   - score-only mode with two rolling rows (Score)
//   - opt-in cap on the number of alignments (WithMaxAlignments)
//
// ⚙️ Usage:
//
//	sc := scoring.Default() // match 1, mismatch -1, gap -1
//	res, err := nw.Align([]rune("GATTACA"), []rune("GCATGCU"), sc)
//	// res.Score == 0, res.Alignments holds every optimal alignment
//
// Recurrence:
//
//	A[0][j] = gap·j, A[i][0] = gap·i
//	A[i][j] = max(A[i-1][j-1] + pair(s1[i-1], s2[j-1]),
//	              A[i-1][j]   + gap,
//	              A[i][j-1]   + gap)
//
// The gap cost is uniform: the recurrence is not affine and never applies a
// gap-open surcharge, even when the Scorer carries one.
//
// Ties are detected with exact float64 equality. Construction and backtrace
// compute the three terms through the same helper, in the same order, so a
// cell always equals at least one of its recomputed terms bit for bit.
//
// Performance:
//
//   - Matrix: O(m·n) time and memory.
//   - Backtrace: exponential in the number of tied paths in the worst case
//     (e.g. every pair scoring the same). Nothing is deduplicated: distinct
//     paths that spell the same strings are all returned.
package nw
