package qpack

// SideMapOrder names modeled after the source's "WidthMajor"/"DepthMajor"
// terminology (Section 3): WidthMajor means contiguous storage for
// entries sharing the same width index.
type SideMapOrder int

const (
	// WidthMajor: for the Lhs this is RowMajor; for the Rhs, ColMajor.
	WidthMajor SideMapOrder = iota
	// DepthMajor: the opposite of WidthMajor.
	DepthMajor
)

// SideMap is a non-owning, addressable view over a contiguous region of
// source memory, addressed in (width, depth) coordinates rather than
// (row, column) so that the Lhs and Rhs can share one code path (Section
// 3, component C5).
type SideMap struct {
	data   []byte
	Order  SideMapOrder
	width  int
	depth  int
	stride int
}

// NewSideMap constructs a SideMap over data with an explicit stride.
func NewSideMap(data []byte, order SideMapOrder, width, depth, stride int) *SideMap {
	return &SideMap{data: data, Order: order, width: width, depth: depth, stride: stride}
}

// NewSideMapDefaultStride constructs a SideMap whose stride is inferred
// from its order: depth if WidthMajor, width if DepthMajor (contiguous
// storage in the major dimension).
func NewSideMapDefaultStride(data []byte, order SideMapOrder, width, depth int) *SideMap {
	stride := depth
	if order == DepthMajor {
		stride = width
	}
	return &SideMap{data: data, Order: order, width: width, depth: depth, stride: stride}
}

// Width returns the view's width extent.
func (s *SideMap) Width() int { return s.width }

// Depth returns the view's depth extent.
func (s *SideMap) Depth() int { return s.depth }

// Stride returns the view's stride.
func (s *SideMap) Stride() int { return s.stride }

// widthStride is the element step between consecutive width indices.
func (s *SideMap) widthStride() int {
	if s.Order == DepthMajor {
		return 1
	}
	return s.stride
}

// depthStride is the element step between consecutive depth indices.
func (s *SideMap) depthStride() int {
	if s.Order == WidthMajor {
		return 1
	}
	return s.stride
}

// offset computes the linear byte offset of (w, d) within data.
func (s *SideMap) offset(w, d int) int {
	return w*s.widthStride() + d*s.depthStride()
}

// At returns the source byte at (w, d).
func (s *SideMap) At(w, d int) byte {
	return s.data[s.offset(w, d)]
}

// Data returns the view's base data slice (starting at its own origin,
// not the root's).
func (s *SideMap) Data() []byte { return s.data }

// Block returns a rectangular sub-view, without copying. The invariant
// from Section 3 — "any sub-view is fully contained in the parent" — is
// checked by a debug assertion; violating it is a programmer error with
// undefined behaviour in release builds (Section 7).
func (s *SideMap) Block(startWidth, startDepth, blockWidth, blockDepth int) *SideMap {
	if debugAssertEnabled {
		if startWidth < 0 || startWidth+blockWidth > s.width ||
			startDepth < 0 || startDepth+blockDepth > s.depth {
			panic(newSideMapBoundsError("SideMap.Block", "sub-view exceeds parent bounds",
				[6]int{startWidth, startDepth, blockWidth, blockDepth, s.width, s.depth}))
		}
	}
	return &SideMap{
		data:   s.data[s.offset(startWidth, startDepth):],
		Order:  s.Order,
		width:  blockWidth,
		depth:  blockDepth,
		stride: s.stride,
	}
}
