// SPDX-License-Identifier: MIT

package nw

import "errors"

var (
	// ErrNilScorer is returned when Align, Score or BuildGrid get a nil Scorer.
	ErrNilScorer = errors.New("nw: scorer is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nw: invalid option supplied")

	// ErrAlignmentLimit is returned together with a partial Result when
	// WithMaxAlignments stopped enumeration before the worklist was drained.
	ErrAlignmentLimit = errors.New("nw: alignment limit reached")

	// ErrBrokenTrace signals a matrix cell that matches none of its three
	// recurrence terms. It is an internal invariant violation, not bad input.
	ErrBrokenTrace = errors.New("nw: backtrace found no predecessor")

	// ErrOutOfRange indicates a Grid index outside the matrix.
	ErrOutOfRange = errors.New("nw: index out of range")
)
