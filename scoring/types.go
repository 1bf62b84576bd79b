// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"math"
)

// Gap is the gap marker used in aligned sequences.
const Gap = '-'

// Defaults of a Scheme built without options.
const (
	DefaultMatch     = 1.0
	DefaultMismatch  = -1.0
	DefaultGapExtend = -1.0
	DefaultGapOpen   = 0.0
)

// Scheme is a pairwise scoring policy.
//
// Fields:
//   - Match: score of two equal symbols (no table loaded).
//   - Mismatch: score of two different symbols (no table loaded).
//   - GapExtend: cost added for every gapped position. This is the only gap
//     cost the alignment recurrence uses.
//   - GapOpen: surcharge for the first position of a gap run. Only
//     ScoreAlignment applies it; the recurrence is not affine.
//
// When a substitution matrix is loaded it overrides Match and Mismatch for
// every pair lookup.
type Scheme struct {
	Match     float64
	Mismatch  float64
	GapExtend float64
	GapOpen   float64

	table *Table
}

// Option configures a Scheme. Invalid values are recorded and surfaced by New
// as ErrOptionViolation.
type Option func(*options)

type options struct {
	scheme Scheme
	err    error
}

// Default returns a Scheme holding the package defaults and no matrix.
func Default() *Scheme {
	return &Scheme{
		Match:     DefaultMatch,
		Mismatch:  DefaultMismatch,
		GapExtend: DefaultGapExtend,
		GapOpen:   DefaultGapOpen,
	}
}

// New builds a Scheme from the defaults and the supplied options.
func New(opts ...Option) (*Scheme, error) {
	o := options{scheme: *Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	s := o.scheme

	return &s, nil
}

// WithMatch sets the score of two equal symbols.
func WithMatch(v float64) Option {
	return func(o *options) {
		if o.check("Match", v) {
			o.scheme.Match = v
		}
	}
}

// WithMismatch sets the score of two different symbols.
func WithMismatch(v float64) Option {
	return func(o *options) {
		if o.check("Mismatch", v) {
			o.scheme.Mismatch = v
		}
	}
}

// WithGapExtend sets the per-position gap cost.
func WithGapExtend(v float64) Option {
	return func(o *options) {
		if o.check("GapExtend", v) {
			o.scheme.GapExtend = v
		}
	}
}

// WithGapOpen sets the gap-run surcharge used by ScoreAlignment.
func WithGapOpen(v float64) Option {
	return func(o *options) {
		if o.check("GapOpen", v) {
			o.scheme.GapOpen = v
		}
	}
}

// WithTable installs an already parsed substitution matrix. A nil table
// leaves match/mismatch scoring in place.
func WithTable(t *Table) Option {
	return func(o *options) {
		o.scheme.table = t
	}
}

// check records the first non-finite value and reports whether v is usable.
func (o *options) check(name string, v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if o.err == nil {
			o.err = fmt.Errorf("%w: %s must be finite (%v)", ErrOptionViolation, name, v)
		}
		return false
	}
	return true
}
