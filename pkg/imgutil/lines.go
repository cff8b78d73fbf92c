package imgutil

import (
	"errors"
	"io"
)

// LineReader reads a raw image one line at a time.
//
// A read returning less than a full line ends the stream; those bytes
// are discarded and counted by Dropped.
type LineReader struct {
	fsrc    io.Reader
	line    []byte
	dropped int
	done    bool
}

// NewLineReader allocates a LineReader for lines of stride bytes.
func NewLineReader(fsrc io.Reader, stride int) (*LineReader, error) {
	if stride <= 0 {
		return nil, &GeometryError{"stride", int64(stride), "must be positive"}
	}
	return &LineReader{fsrc: fsrc, line: make([]byte, stride)}, nil
}

// Next returns the next line, or io.EOF.
// The returned slice is reused by the following call.
func (r *LineReader) Next() ([]byte, error) {
	if r.done {
		return nil, io.EOF
	}
	n, err := io.ReadFull(r.fsrc, r.line)
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		r.done = true
		r.dropped = n
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	return r.line, nil
}

// Dropped returns the number of trailing bytes which did not fill a line.
func (r *LineReader) Dropped() int {
	return r.dropped
}

// ReadLines reads all full lines of stride bytes into memory.
func ReadLines(fsrc io.Reader, stride int) (lines [][]byte, dropped int, err error) {
	r, err := NewLineReader(fsrc, stride)
	if err != nil {
		return nil, 0, err
	}
	for {
		line, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, append([]byte(nil), line...))
	}
	return lines, r.Dropped(), nil
}
