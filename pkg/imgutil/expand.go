package imgutil

import (
	"fmt"
	"io"

	"github.com/ysh86/rawtex/pkg/pot"
)

// ExpandStats describes the geometry before and after ExpandPOT.
type ExpandStats struct {
	Stride    int
	Lines     int
	NewLines  int
	NewStride int
	Dropped   int // trailing bytes short of a full line
}

// Size returns the number of bytes written.
func (s ExpandStats) Size() int64 {
	lineSize := max(s.Stride, s.NewStride)
	return int64(s.Lines)*int64(lineSize) + int64(s.NewLines-s.Lines)*int64(s.NewStride)
}

// Unchanged returns true if the output equals the input.
func (s ExpandStats) Unchanged() bool {
	return s.Stride == s.NewStride && pot.Is(s.Lines)
}

// ExpandPOT pads every line to a power-of-two number of pixels and the
// number of lines to a power of two, filling with zero bytes.
func ExpandPOT(fdst io.Writer, fsrc io.Reader, g Geometry) (stats ExpandStats, err error) {
	if err = g.CheckPadded(); err != nil {
		return
	}
	stats.Stride = g.Stride
	stats.NewStride = g.PaddedStride()

	// a stride which is not a multiple of bpp can exceed the padded one
	var padding []byte
	if stats.NewStride > g.Stride {
		padding = make([]byte, stats.NewStride-g.Stride)
	}

	r, err := NewLineReader(fsrc, g.Stride)
	if err != nil {
		return stats, err
	}
	for {
		line, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
		if _, err = fdst.Write(line); err != nil {
			return stats, err
		}
		if len(padding) > 0 {
			if _, err = fdst.Write(padding); err != nil {
				return stats, err
			}
		}
		stats.Lines++
	}
	stats.Dropped = r.Dropped()

	stats.NewLines = pot.Next(stats.Lines)
	if stats.NewLines == 0 {
		return stats, fmt.Errorf("%d lines: padded line count overflows", stats.Lines)
	}
	blank := make([]byte, stats.NewStride)
	for y := stats.Lines; y < stats.NewLines; y++ {
		if _, err = fdst.Write(blank); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
