package imgutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ysh86/rawtex/pkg/pot"
)

// ErrInvalidGeometry is matched by every GeometryError.
var ErrInvalidGeometry = errors.New("invalid geometry")

// GeometryError reports a bytes-per-pixel or stride value which can not
// describe a raw image.
type GeometryError struct {
	Field  string
	Value  int64
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s=%d: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidGeometry) hold.
func (e *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

// Geometry is the out-of-band layout of a headerless pixel buffer.
type Geometry struct {
	BPP    int // bytes per pixel
	Stride int // bytes per line
}

// ParseGeometry parses the BYTES-PER-PIXEL and STRIDE arguments.
// Only integer syntax is checked here, see Validate.
func ParseGeometry(bpp, stride string) (Geometry, error) {
	b, err := strconv.Atoi(bpp)
	if err != nil {
		return Geometry{}, fmt.Errorf("bytes-per-pixel: %w", err)
	}
	s, err := strconv.Atoi(stride)
	if err != nil {
		return Geometry{}, fmt.Errorf("stride: %w", err)
	}
	return Geometry{BPP: b, Stride: s}, nil
}

// Validate rejects values the transforms can not run with at all.
func (g Geometry) Validate() error {
	if g.BPP <= 0 {
		return &GeometryError{"bpp", int64(g.BPP), "must be positive"}
	}
	if g.Stride <= 0 {
		return &GeometryError{"stride", int64(g.Stride), "must be positive"}
	}
	return nil
}

// CheckAligned reports a stride which is not a whole number of pixels.
// The transforms still run on such input; the remainder is truncated.
func (g Geometry) CheckAligned() error {
	if err := g.Validate(); err != nil {
		return err
	}
	if pot.Align(g.Stride, g.BPP) != g.Stride {
		return &GeometryError{"stride", int64(g.Stride),
			fmt.Sprintf("not a multiple of bpp %d", g.BPP)}
	}
	return nil
}

// CheckSize reports a buffer size which is not a whole number of lines.
func (g Geometry) CheckSize(size int64) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if rem := size % int64(g.Stride); rem != 0 {
		return &GeometryError{"size", size,
			fmt.Sprintf("not a multiple of stride %d, %d trailing bytes", g.Stride, rem)}
	}
	return nil
}

// CheckPadded reports a stride whose PaddedStride does not fit in an int.
func (g Geometry) CheckPadded() error {
	if err := g.Validate(); err != nil {
		return err
	}
	cols := pot.Next(g.Cols())
	if cols == 0 || cols > math.MaxInt/g.BPP {
		return &GeometryError{"stride", int64(g.Stride), "padded stride overflows"}
	}
	return nil
}

// Cols returns the number of whole pixels in a line.
func (g Geometry) Cols() int {
	return g.Stride / g.BPP
}

// PaddedStride returns the line size rounded to a power-of-two pixel count.
// See CheckPadded for strides too large to round.
func (g Geometry) PaddedStride() int {
	return pot.Next(g.Cols()) * g.BPP
}
