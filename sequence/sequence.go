// SPDX-License-Identifier: MIT

package sequence

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/seqalign/scoring"
)

// ErrGapSymbol is returned when input text contains the gap marker, which
// would make aligned rows ambiguous.
var ErrGapSymbol = errors.New("sequence: input contains the gap marker")

// Option configures Parse and ReadFile.
type Option func(*options)

type options struct {
	upper bool
}

// WithUpperCase folds every symbol to upper case before alignment, so that
// "acgt" and "ACGT" align as equal and match an upper-case matrix alphabet.
func WithUpperCase() Option {
	return func(o *options) { o.upper = true }
}

func gather(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse converts s into a symbol sequence.
//
// Stages:
//  1. NFC-normalize so that composed and decomposed forms of one character
//     become the same symbol.
//  2. Optionally upper-case (language-neutral).
//  3. Drop whitespace; reject the gap marker with its rune offset.
func Parse(s string, opts ...Option) ([]rune, error) {
	o := gather(opts)

	s = norm.NFC.String(s)
	if o.upper {
		s = cases.Upper(language.Und).String(s)
	}

	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r == scoring.Gap {
			return nil, fmt.Errorf("%w %q at symbol %d", ErrGapSymbol, scoring.Gap, len(out))
		}
		out = append(out, r)
	}

	return out, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(s string, opts ...Option) []rune {
	seq, err := Parse(s, opts...)
	if err != nil {
		panic(err)
	}
	return seq
}
