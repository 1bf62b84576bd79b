// SPDX-License-Identifier: MIT

package nw_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/scoring"
)

// ExampleAlign aligns the textbook pair with match 1, mismatch -1, gap -1
// and prints every co-optimal alignment.
func ExampleAlign() {
	res, err := nw.Align([]rune("GATTACA"), []rune("GCATGCU"), scoring.Default())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("score:", res.Score)
	for _, al := range res.Alignments {
		fmt.Println(al)
	}
	// Output:
	// score: 0
	// G-ATTACA
	// GCA-TGCU
	// G-ATTACA
	// GCAT-GCU
	// G-ATTACA
	// GCATG-CU
}

// ExampleScore computes only the score with two rolling rows.
func ExampleScore() {
	sc, _ := scoring.New(scoring.WithGapExtend(-2))
	score, _ := nw.Score(nil, []rune("ABC"), sc)
	fmt.Println(score)
	// Output:
	// -6
}

// ExampleWithMaxAlignments caps enumeration on a repetitive input.
func ExampleWithMaxAlignments() {
	res, err := nw.Align([]rune("AAAA"), []rune("AA"), scoring.Default(), nw.WithMaxAlignments(2))
	fmt.Println(len(res.Alignments), err)
	// Output:
	// 2 nw: alignment limit reached: stopped after 2 alignments
}
