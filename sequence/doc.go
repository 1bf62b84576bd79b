// SPDX-License-Identifier: MIT

// Package sequence turns user-supplied text into symbol sequences ready for
// alignment: Unicode NFC normalization, whitespace removal, optional upper
// casing, and rejection of the gap marker. It also reads a sequence from a
// plain-text or FASTA file (first record), gzip-compressed or not.
package sequence
