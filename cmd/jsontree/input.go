package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// readInput reads a whole document from name, or stdin for "-".
// Gzip-compressed input is decompressed transparently. When maxSize is
// positive at most maxSize+1 decoded bytes are read, enough for the parser
// to report the size limit.
func readInput(name string, stdin io.Reader, maxSize int64) ([]byte, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	br := bufio.NewReader(r)
	head, _ := br.Peek(len(gzipMagic))
	if bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		defer zr.Close()
		return io.ReadAll(limit(zr, maxSize))
	}
	return io.ReadAll(limit(br, maxSize))
}

func limit(r io.Reader, maxSize int64) io.Reader {
	if maxSize <= 0 {
		return r
	}
	return io.LimitReader(r, maxSize+1)
}
