// Package dump saves compiled automata as text tables.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"regexdfa/internal/automaton"
	"regexdfa/internal/regex"
)

// Write prints a header identifying the run and re followed by the table
// of d, which is re's DFA or a minimized form of it.
func Write(w io.Writer, id uuid.UUID, re *regex.Regex, d *automaton.DFA) error {
	fmt.Fprintf(w, "# run: %s\n", id)
	fmt.Fprintf(w, "# regex: %s\n", re.Pattern())
	fmt.Fprintf(w, "# postfix: %s\n", re.Postfix())
	return d.PrintTable(w)
}

// Save writes the table of d to path and returns the run id recorded in
// the header. The file is zstd-compressed when compress is set or the path
// ends in ".zst".
func Save(path string, compress bool, re *regex.Regex, d *automaton.DFA) (uuid.UUID, error) {
	id := uuid.New()
	f, err := os.Create(path)
	if err != nil {
		return id, err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	var w io.Writer = bw
	var enc *zstd.Encoder
	if compress || strings.HasSuffix(path, ".zst") {
		enc, err = zstd.NewWriter(bw)
		if err != nil {
			return id, err
		}
		w = enc
	}

	if err := Write(w, id, re, d); err != nil {
		return id, err
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return id, err
		}
	}
	if err := bw.Flush(); err != nil {
		return id, err
	}
	return id, f.Close()
}

// Open returns a reader over a file written by Save.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	magic, _ := br.Peek(4)
	if string(magic) != "\x28\xb5\x2f\xfd" {
		return struct {
			io.Reader
			io.Closer
		}{br, f}, nil
	}
	dec, err := zstd.NewReader(br)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &zstdFile{dec: dec, f: f}, nil
}

type zstdFile struct {
	dec *zstd.Decoder
	f   *os.File
}

func (z *zstdFile) Read(p []byte) (int, error) { return z.dec.Read(p) }

func (z *zstdFile) Close() error {
	z.dec.Close()
	return z.f.Close()
}
