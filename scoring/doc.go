// SPDX-License-Identifier: MIT

// Package scoring defines the pairwise scoring policy used by global
// sequence alignment.
//
// A Scheme scores a pair of symbols either with flat match/mismatch
// constants or, once a substitution matrix is loaded, with a PAM/BLOSUM
// style lookup table. It also scores a finished alignment independently
// of any dynamic programming, detecting the first gap of every gap run.
//
// ⚙️ Usage:
//
//	sc, err := scoring.New(scoring.WithGapExtend(-2))
//	if err != nil {
//	  // ErrOptionViolation
//	}
//	if err := sc.LoadMatrixFile("BLOSUM62.txt"); err != nil {
//	  // ErrParse (or an I/O error)
//	}
//	s, err := sc.PairScore('A', 'W') // ErrUnknownSymbol if absent
//
// Matrix file format:
//
//	# comment lines are skipped
//	   A  C
//	A  2 -1
//	C -1  2
//
// Concurrency:
//
//	A Scheme has no internal locking. Any number of goroutines may read it
//	(PairScore, ScoreAlignment, Symbols, String) as long as none of them
//	runs LoadMatrix / LoadMatrixFile at the same time.
package scoring
