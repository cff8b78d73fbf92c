// ------------------------------------------------
// Usage:
// $ go run ./cmd/rotate data/argb_640x480.raw data/argb_480x640.raw 4 2560
// ------------------------------------------------

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/icza/bitio"

	"github.com/ysh86/rawtex/pkg/imgutil"
)

// Sources larger than this are transposed from the file instead of memory.
var maxInMemory int64 = 256 << 20

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 5 {
		fmt.Fprintf(stdout, "Usage: %s SOURCE DEST BYTES-PER-PIXEL STRIDE\n", args[0])
		return 1
	}

	g, err := imgutil.ParseGeometry(args[3], args[4])
	if err != nil {
		panic(err)
	}
	if err = g.Validate(); err != nil {
		panic(err)
	}
	if err = g.CheckAligned(); err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	fsrc, err := os.Open(args[1])
	if err != nil {
		panic(err)
	}
	defer fsrc.Close()
	info, err := fsrc.Stat()
	if err != nil {
		panic(err)
	}
	if err = g.CheckSize(info.Size()); err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	fdst, err := os.Create(args[2])
	if err != nil {
		panic(err)
	}
	defer fdst.Close()

	writer := bitio.NewWriter(fdst)
	var d imgutil.Dims
	if info.Size() > maxInMemory {
		d, err = imgutil.TransposeAt(writer, fsrc, info.Size(), g)
		if err != nil {
			panic(err)
		}
	} else {
		lines, _, err := imgutil.ReadLines(fsrc, g.Stride)
		if err != nil {
			panic(err)
		}
		d, err = imgutil.Transpose(writer, lines, g.BPP, g.Stride)
		if err != nil {
			panic(err)
		}
	}
	if err = writer.Close(); err != nil {
		panic(err)
	}
	if err = fdst.Close(); err != nil {
		panic(err)
	}
	fmt.Fprintln(stdout, d)
	fmt.Fprintf(stderr, "done rotate: lines=%d, size=%d\n", d.Rows, info.Size())
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
