// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/internal/config"
)

func (a *app) scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score ALIGNED1 ALIGNED2",
		Short: "Score an existing alignment",
		Long: `score re-scores two equal-length aligned rows, '-' marking gaps.
Unlike alignment it charges --gap-open-penalty once per run of gaps.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.cfg.Scheme()
			if err != nil {
				return err
			}
			row1, row2 := args[0], args[1]
			if a.cfg.IgnoreCase {
				row1, row2 = strings.ToUpper(row1), strings.ToUpper(row2)
			}

			score, err := sc.ScoreAlignment([]rune(row1), []rune(row2))
			if err != nil {
				return err
			}
			a.log.Debug("alignment scored", "score", score, "columns", len([]rune(row1)))

			if a.cfg.Format == config.FormatJSON {
				return a.writeJSON(struct {
					Seq1  string  `json:"seq1"`
					Seq2  string  `json:"seq2"`
					Score float64 `json:"score"`
				}{row1, row2, score})
			}
			_, err = fmt.Fprintf(a.stdout, "Alignment Score: %s\n", formatScore(score))
			return err
		},
	}
}

func (a *app) schemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scheme",
		Short: "Print the resolved scoring scheme",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.cfg.Scheme()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, sc.String())
			return err
		},
	}
}
