// SPDX-License-Identifier: MIT

package sequence

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a sequence read from a file. ID is the first word of the FASTA
// header line, or empty for plain-text input.
type Record struct {
	ID  string
	Seq []rune
}

// ReadFile reads one sequence from path.
//
// FASTA input (first non-blank line starts with '>') yields its first record;
// ';' comment lines are skipped. Any other input is taken as the sequence
// itself, all lines concatenated. "-" reads standard input. Gzip is detected
// by magic number or a ".gz" suffix.
func ReadFile(path string, opts ...Option) (Record, error) {
	rc, err := open(path)
	if err != nil {
		return Record{}, fmt.Errorf("sequence: open %s: %w", path, err)
	}
	defer rc.Close()

	rec, err := Read(rc, opts...)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Read is ReadFile over an already open reader.
func Read(r io.Reader, opts ...Option) (Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id     string
		fasta  bool
		seen   bool
		buf    strings.Builder
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !seen {
			seen = true
			if line[0] == '>' {
				fasta = true
				if f := strings.Fields(line[1:]); len(f) > 0 {
					id = f[0]
				}
				continue
			}
		}
		if fasta {
			if line[0] == '>' {
				break
			}
			if line[0] == ';' {
				continue
			}
		}
		buf.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("sequence: read line %d: %w", lineNo+1, err)
	}

	seq, err := Parse(buf.String(), opts...)
	if err != nil {
		return Record{}, err
	}
	return Record{ID: id, Seq: seq}, nil
}

// multiReadCloser closes the decompressor and the file together.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
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
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
