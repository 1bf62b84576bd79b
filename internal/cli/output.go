// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqalign/internal/config"
)

const rule = "------------------------------"

type pair struct {
	Seq1 string `json:"seq1"`
	Seq2 string `json:"seq2"`
}

// report is the result of one alignment run.
type report struct {
	Seq1       string  `json:"seq1"`
	Seq2       string  `json:"seq2"`
	Score      float64 `json:"score"`
	Alignments []pair  `json:"alignments"`
	Truncated  bool    `json:"truncated"`
}

func (a *app) write(r report) error {
	if a.cfg.Format == config.FormatJSON {
		if r.Alignments == nil {
			r.Alignments = []pair{}
		}
		return a.writeJSON(r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sequence 1: %s\n", r.Seq1)
	fmt.Fprintf(&b, "Sequence 2: %s\n", r.Seq2)
	fmt.Fprintf(&b, "Alignment Score: %s\n", formatScore(r.Score))
	b.WriteString(rule + "\n")
	for _, p := range r.Alignments {
		b.WriteString(p.Seq1 + "\n")
		b.WriteString(p.Seq2 + "\n")
		b.WriteString(rule + "\n")
	}
	_, err := fmt.Fprint(a.stdout, b.String())
	return err
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
