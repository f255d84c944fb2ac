// Package lnreader reads text line by line while tracking the line number,
// so that parse errors in source files can point at the offending line.
package lnreader

import (
	"bufio"
	"bytes"
	"io"
)

type LineNumberReader struct {
	r       *bufio.Reader
	buf     []byte
	NumLine int
}

func NewLineNumberReader(r io.Reader) *LineNumberReader {
	return &LineNumberReader{
		r: bufio.NewReader(r),
	}
}

// ReadLine returns the next line without its line terminator. The returned
// slice is only valid until the next call.
func (r *LineNumberReader) ReadLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.buf = append(r.buf[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.buf = append(r.buf, line...)
		}
		line = r.buf
	}
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err != nil {
		return nil, err
	}
	r.NumLine++
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	if r.NumLine == 1 {
		line = bytes.TrimPrefix(line, []byte("\ufeff"))
	}
	return line, nil
}

// IsSkipLine reports whether l is blank or a '#' comment.
func IsSkipLine(l []byte) bool {
	l = bytes.TrimLeft(l, " \t")
	return len(l) == 0 || l[0] == '#'
}
