// SPDX-License-Identifier: MIT

package nw

import (
	"context"
	"fmt"
)

// Gap is the gap marker written into aligned sequences.
const Gap = '-'

// Scorer supplies the pair scores and the uniform gap cost of the recurrence.
// *scoring.Scheme satisfies it.
type Scorer interface {
	PairScore(a, b rune) (float64, error)
	GapPenalty() float64
}

// Alignment is one optimal path through the matrix: two equal-length rows
// of symbols and gap markers. No column holds two gaps.
type Alignment struct {
	A []rune
	B []rune
}

// Len returns the number of columns.
func (al Alignment) Len() int {
	return len(al.A)
}

// Strings returns both rows as strings.
func (al Alignment) Strings() (string, string) {
	return string(al.A), string(al.B)
}

// String renders the two rows on separate lines.
func (al Alignment) String() string {
	return string(al.A) + "\n" + string(al.B)
}

// Result holds the optimal score and every alignment reaching it, in
// backtrace (breadth-first) order.
type Result struct {
	Score      float64
	Alignments []Alignment
}

// Option configures Align via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a single Align call.
type Options struct {
	// Ctx allows cancellation; it is checked once per worklist iteration.
	Ctx context.Context

	// MaxAlignments, if > 0, stops enumeration after that many alignments and
	// makes Align return ErrAlignmentLimit with the partial Result.
	// 0 means no limit.
	MaxAlignments int

	// OnAlignment is called for each completed alignment. Returning an error
	// aborts the backtrace.
	OnAlignment func(Alignment) error

	err error
}

// DefaultOptions returns Options with a background context, no limit and a
// no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxAlignments: 0,
		OnAlignment:   func(Alignment) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxAlignments caps the number of enumerated alignments.
//
//	n > 0: stop after n alignments (ErrAlignmentLimit if more exist)
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxAlignments(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAlignments cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAlignments = n
	}
}

// WithOnAlignment registers a callback for every completed alignment.
func WithOnAlignment(fn func(Alignment) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAlignment = fn
		}
	}
}
