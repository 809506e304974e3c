package qpack

// MatrixOrder is the caller's matrix storage order (Section 4.5), distinct
// from SideMap's width/depth-major terminology: MatrixOrder describes how
// the caller laid out rows and columns in memory, before this package
// reinterprets that memory as a width/depth-addressed SideMap.
type MatrixOrder int

const (
	// RowMajor: element (r, c) lives at r*Stride + c.
	RowMajor MatrixOrder = iota
	// ColMajor: element (r, c) lives at c*Stride + r.
	ColMajor
)

// MatrixMap is the caller-supplied view of one operand matrix (Section
// 4.5's "Inputs to the core" boundary): raw bytes plus enough shape
// information to reinterpret them as a SideMap. Stride is expressed in
// bytes and may exceed the packed row/column length to describe a view
// into a larger allocation.
type MatrixMap struct {
	Data   []byte
	Rows   int
	Cols   int
	Stride int
	Order  MatrixOrder
}

// sideMap reinterprets m as a SideMap. widthIsRows selects which matrix
// dimension becomes the SideMap's width: true for the Lhs (width = rows,
// depth = cols), false for the Rhs (width = cols, depth = rows).
//
// The resulting SideMapOrder follows Section 4.5's rule: whichever
// MatrixOrder makes the *depth* dimension contiguous in memory maps to
// WidthMajor (contiguous storage per width index is exactly WidthMajor's
// definition); the other maps to DepthMajor. For the Lhs that means
// RowMajor -> WidthMajor; for the Rhs, ColMajor -> WidthMajor — the
// common case for both operands in a row-major-LHS, column-major-RHS GEMM
// convention.
func (m MatrixMap) sideMap(widthIsRows bool) *SideMap {
	if widthIsRows {
		if m.Order == RowMajor {
			return NewSideMap(m.Data, WidthMajor, m.Rows, m.Cols, m.Stride)
		}
		return NewSideMap(m.Data, DepthMajor, m.Rows, m.Cols, m.Stride)
	}
	if m.Order == ColMajor {
		return NewSideMap(m.Data, WidthMajor, m.Cols, m.Rows, m.Stride)
	}
	return NewSideMap(m.Data, DepthMajor, m.Cols, m.Rows, m.Stride)
}

// PackLhs packs an entire Lhs operand in one L2 block: dst must already be
// sized (via NewPackedSideBlock's params) to exactly m's row/column
// extents. Larger matrices that need multiple L2 blocks are a caller
// concern — this is the single-block entry point Section 6 describes as
// "the core"; L2-block iteration over a bigger matrix belongs to the
// surrounding GEMM driver, not this package.
func PackLhs(dst *PackedSideBlock, m MatrixMap, bits BitDepth) {
	PackL2(dst, m.sideMap(true), bits)
}

// PackRhs packs an entire Rhs operand in one L2 block, mirroring PackLhs.
func PackRhs(dst *PackedSideBlock, m MatrixMap, bits BitDepth) {
	PackL2(dst, m.sideMap(false), bits)
}
