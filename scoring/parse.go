// SPDX-License-Identifier: MIT

package scoring

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseTable reads a whitespace-delimited substitution matrix.
//
// Layout:
//   - Lines starting with '#' and blank lines are skipped.
//   - The first remaining line is the header: one single-character symbol per
//     field. Header order fixes the row/column index of every symbol.
//   - Every following line is a row: the row symbol, then one score per
//     header symbol, in header order.
//
// Every header symbol must own exactly one row. Any violation is reported as
// ErrParse together with the 1-based line number.
func ParseTable(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	var (
		t      *Table
		seen   []bool
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		if t == nil {
			symbols := make([]rune, 0, len(fields))
			for _, f := range fields {
				if utf8.RuneCountInString(f) != 1 {
					return nil, parseErrorf(lineNo, "header symbol %q is not a single character", f)
				}
				sym, _ := utf8.DecodeRuneInString(f)
				symbols = append(symbols, sym)
			}
			if t = newTable(symbols); t == nil {
				return nil, parseErrorf(lineNo, "duplicate symbol in header %q", line)
			}
			seen = make([]bool, len(symbols))
			continue
		}

		sym, _ := utf8.DecodeRuneInString(fields[0])
		i, ok := t.index[sym]
		if !ok || utf8.RuneCountInString(fields[0]) != 1 {
			return nil, parseErrorf(lineNo, "row symbol %q not in header", fields[0])
		}
		if seen[i] {
			return nil, parseErrorf(lineNo, "duplicate row for symbol %q", sym)
		}
		n := t.Len()
		if len(fields)-1 != n {
			return nil, parseErrorf(lineNo, "row %q has %d scores, want %d", sym, len(fields)-1, n)
		}
		for j, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, parseErrorf(lineNo, "score %q is not a number", f)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, parseErrorf(lineNo, "score %q is not finite", f)
			}
			t.data[i*n+j] = v
		}
		seen[i] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scoring: read matrix: %w", err)
	}

	if t == nil {
		return nil, fmt.Errorf("%w: missing header line", ErrParse)
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: missing row for symbol %q", ErrParse, t.symbols[i])
		}
	}

	return t, nil
}

func parseErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrParse, line, fmt.Sprintf(format, args...))
}

// LoadMatrix parses a substitution matrix from r and installs it, replacing
// any previously loaded one. On error the Scheme is left unchanged.
func (s *Scheme) LoadMatrix(r io.Reader) error {
	t, err := ParseTable(r)
	if err != nil {
		return err
	}
	s.table = t

	return nil
}

// LoadMatrixFile is LoadMatrix over the file at path. Gzip input is detected
// by magic number or a ".gz" suffix.
func (s *Scheme) LoadMatrixFile(path string) error {
	rc, err := openMatrix(path)
	if err != nil {
		return fmt.Errorf("scoring: open matrix: %w", err)
	}
	defer rc.Close()

	if err := s.LoadMatrix(rc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// gzipFile closes the decompressor and the underlying file together.
type gzipFile struct {
	*gzip.Reader
	fh *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.fh.Close(); err == nil {
		err = ferr
	}
	return err
}

func openMatrix(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipFile{Reader: gr, fh: fh}, nil
	}
	return fh, nil
}
