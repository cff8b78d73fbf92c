package imgutil

import (
	"fmt"
	"io"
)

// Dims is the pixel grid of a raw image as seen by Transpose.
type Dims struct {
	Cols, Rows int
}

// String formats the grid before and after transposition.
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d => %dx%d", d.Cols, d.Rows, d.Rows, d.Cols)
}

// Transpose writes the image column by column: for every pixel offset
// in a line, the pixels at that offset of all lines in order.
func Transpose(fdst io.Writer, lines [][]byte, bpp, stride int) (d Dims, err error) {
	g := Geometry{BPP: bpp, Stride: stride}
	if err = g.Validate(); err != nil {
		return
	}
	d = Dims{Cols: g.Cols(), Rows: len(lines)}

	for x := 0; x < stride; x += bpp {
		for _, line := range lines {
			_, err = fdst.Write(pixel(line, x, bpp))
			if err != nil {
				return
			}
		}
	}
	return
}

// pixel returns line[x:x+bpp], truncated at the end of the line.
func pixel(line []byte, x, bpp int) []byte {
	if x >= len(line) {
		return nil
	}
	return line[x:min(x+bpp, len(line))]
}

// TransposeAt is like Transpose but reads the pixels from src on demand
// instead of holding the image in memory. size is the length of src.
func TransposeAt(fdst io.Writer, src io.ReaderAt, size int64, g Geometry) (d Dims, err error) {
	if err = g.Validate(); err != nil {
		return
	}
	rows := size / int64(g.Stride)
	d = Dims{Cols: g.Cols(), Rows: int(rows)}

	buf := make([]byte, g.BPP)
	for x := 0; x < g.Stride; x += g.BPP {
		n := min(g.BPP, g.Stride-x)
		for y := int64(0); y < rows; y++ {
			off := y*int64(g.Stride) + int64(x)
			if _, err = src.ReadAt(buf[:n], off); err != nil {
				err = fmt.Errorf("pixel (%d, %d): %w", x/g.BPP, y, err)
				return
			}
			if _, err = fdst.Write(buf[:n]); err != nil {
				return
			}
		}
	}
	return
}
