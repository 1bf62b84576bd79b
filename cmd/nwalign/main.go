// SPDX-License-Identifier: MIT

// Command nwalign prints the optimal global alignment score of two sequences
// and every alignment that reaches it.
package main

import (
	"os"

	"github.com/katalvlaran/seqalign/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
