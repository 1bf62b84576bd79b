// SPDX-License-Identifier: MIT

// Package seqalign computes optimal global alignments of two sequences and
// enumerates every alignment that reaches the optimal score.
//
// What is in the box?
//
//	scoring/   Scheme: match/mismatch constants or a substitution matrix,
//	           gap penalties, matrix file parsing, alignment re-scoring
//	nw/        Needleman-Wunsch: score grid, score-only fill, breadth-first
//	           backtrace over all co-optimal paths
//	sequence/  input normalization and FASTA / plain-text readers
//	cmd/       the nwalign command line tool
//
// Quick example:
//
//	res, err := nw.Align([]rune("GATTACA"), []rune("GCATGCU"), scoring.Default())
//	// res.Score == 0, len(res.Alignments) == 3
//	//
//	//	G-ATTACA
//	//	GCA-TGCU
//
// Every alignment has the same length on both sides, never pairs two gaps,
// and yields the original sequence when its gaps are removed. The number of
// co-optimal alignments can grow exponentially with input length; use
// nw.WithMaxAlignments or nw.WithOnAlignment to bound or stream them.
//
//	go install github.com/katalvlaran/seqalign/cmd/nwalign@latest
package seqalign
