// ------------------------------------------------
// Usage:
// $ go run ./cmd/expandpot data/rgb565_100x60.raw data/rgb565_128x64.raw 2 200
// ------------------------------------------------

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/icza/bitio"

	"github.com/ysh86/rawtex/pkg/imgutil"
)

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 5 {
		fmt.Fprintf(stdout, "Usage: %s SOURCE DEST BYTES-PER-PIXEL STRIDE\n", args[0])
		return 1
	}

	g, err := imgutil.ParseGeometry(args[3], args[4])
	if err != nil {
		panic(err)
	}
	if err = g.CheckPadded(); err != nil {
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
	stats, err := imgutil.ExpandPOT(writer, fsrc, g)
	if err != nil {
		panic(err)
	}
	if err = writer.Close(); err != nil {
		panic(err)
	}
	if err = fdst.Close(); err != nil {
		panic(err)
	}

	if stats.Unchanged() {
		fmt.Fprintf(stderr, "already power of two\n")
	}
	fmt.Fprintf(stderr, "done expand: %dx%d => %dx%d, size=%d\n",
		g.Stride, stats.Lines, stats.NewStride, stats.NewLines, stats.Size())
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
