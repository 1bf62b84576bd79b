// SPDX-License-Identifier: MIT

package scoring

import "errors"

// Every message is prefixed with "scoring: ". Callers match with errors.Is;
// context such as line numbers or positions is added with %w wrapping.
var (
	// ErrUnknownSymbol is returned when a symbol is looked up in a loaded
	// substitution matrix whose alphabet does not contain it.
	ErrUnknownSymbol = errors.New("scoring: symbol not in substitution matrix")

	// ErrParse is returned for a malformed substitution-matrix source:
	// missing header, unknown row symbol, wrong column count, non-numeric score.
	ErrParse = errors.New("scoring: malformed substitution matrix")

	// ErrInvalidAlignment is returned by ScoreAlignment when both sides hold
	// a gap marker at the same position.
	ErrInvalidAlignment = errors.New("scoring: alignment between two gaps")

	// ErrOptionViolation is returned by New when an Option carries a
	// non-finite value.
	ErrOptionViolation = errors.New("scoring: invalid option supplied")
)

var (
	// ErrBadShape is returned by NewTable when the alphabet and the rows do not
	// form a square table of finite scores over distinct symbols.
	ErrBadShape = errors.New("scoring: invalid substitution matrix shape")

	// ErrOutOfRange indicates a row or column index outside the table.
	ErrOutOfRange = errors.New("scoring: index out of range")
)
