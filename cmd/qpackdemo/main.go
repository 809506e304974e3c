// Command qpackdemo packs a small synthetic Lhs matrix and prints the
// packed bytes and rank-one-update vector, to sanity-check the packing
// core against hand-computed expectations without a full GEMM driver.
package main

import (
	"fmt"
	"os"

	"github.com/quantpack/qpack"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-h" {
		fmt.Println("qpackdemo: packs a synthetic 8x32 Lhs matrix at a chosen bit depth")
		fmt.Println()
		fmt.Println("Usage: qpackdemo [bits]")
		fmt.Println("  bits: requantization bit depth, 1-8 (default 8)")
		return
	}

	bits := qpack.Bits8
	if len(os.Args) > 1 {
		var v int
		if _, err := fmt.Sscanf(os.Args[1], "%d", &v); err != nil || v < 1 || v > 8 {
			fmt.Fprintf(os.Stderr, "invalid bit depth %q: must be 1-8\n", os.Args[1])
			os.Exit(1)
		}
		bits = qpack.BitDepth(v)
	}

	const rows, cols = 8, 32
	data := make([]byte, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data[r*cols+c] = byte((r*31 + c*7) % 256)
		}
	}
	m := qpack.MatrixMap{Data: data, Rows: rows, Cols: cols, Stride: cols, Order: qpack.RowMajor}

	format := qpack.DepthMajorCells4x2(2) // kernel width 8, matches rows
	params := qpack.SideBlockParams{L1Width: rows, L1Depth: 16, L2Width: rows, L2Depth: cols}
	dst := qpack.NewPackedSideBlock(format, qpack.NewArenaAllocator(), params, 1)

	qpack.PackLhs(dst, m, bits)

	fmt.Printf("qpack demo: %s, bit depth %d\n", qpack.CPUInfo(), bits)
	fmt.Printf("packed bytes (%d):\n", len(dst.Data()))
	for i, b := range dst.Data() {
		fmt.Printf("%3d ", b)
		if (i+1)%16 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
	fmt.Println("rank-one-update vector:")
	fmt.Println(dst.RankOneUpdate())
}
