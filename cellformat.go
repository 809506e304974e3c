package qpack

// CellOrder is a cell's internal byte order (Section 3, Cell format).
type CellOrder int

const (
	// CellDepthMajor stores the byte at internal (w,d) at offset w*depth+d.
	CellDepthMajor CellOrder = iota
	// CellWidthMajor stores the byte at internal (w,d) at offset d*width+w.
	CellWidthMajor
)

// CellFormat is the compile-time cell shape named in Section 3: a
// rectangular fragment of the packed layout with a fixed (width, depth)
// and an internal order.
type CellFormat struct {
	Width int
	Depth int
	Order CellOrder
}

// Size returns the number of bytes a cell occupies.
func (c CellFormat) Size() int {
	return c.Width * c.Depth
}

// OffsetIntoCell maps a (w, d) pair inside a cell to its linear byte
// offset, per Section 6's layout contract with the kernel:
//
//	DepthMajor: w*kCellDepth + d
//	WidthMajor: d*kCellWidth + w
func (c CellFormat) OffsetIntoCell(w, d int) int {
	if debugAssertEnabled && (w < 0 || w >= c.Width || d < 0 || d >= c.Depth) {
		panic(newSideMapBoundsError("OffsetIntoCell", "(w,d) outside cell", [2]int{w, d}))
	}
	if c.Order == CellDepthMajor {
		return w*c.Depth + d
	}
	return d*c.Width + w
}

// KernelSideFormat tiles kCells cells along the width (Section 3). The
// register tile width is kCells * Cell.Width; the register tile depth is
// always kRegisterSize (16).
type KernelSideFormat struct {
	Cell  CellFormat
	Cells int
}

// KernelWidth returns kCells * Cell.Width.
func (k KernelSideFormat) KernelWidth() int {
	return k.Cells * k.Cell.Width
}

// DepthMajorCells4x2 builds the 4x2 DepthMajor kernel side format with the
// given number of cells, the layout Section 3 specifies as "the specified
// layout here".
func DepthMajorCells4x2(cells int) KernelSideFormat {
	return KernelSideFormat{Cell: CellFormat{Width: 4, Depth: 2, Order: CellDepthMajor}, Cells: cells}
}

// WidthMajorCells4x2 builds the 4x2 WidthMajor kernel side format, used by
// the less-than-8-bit kernel path (Section 4.3's WidthMajor specialization).
func WidthMajorCells4x2(cells int) KernelSideFormat {
	return KernelSideFormat{Cell: CellFormat{Width: 4, Depth: 2, Order: CellWidthMajor}, Cells: cells}
}
