package qpack

// packContext bundles the per-PackL2-call state every register packer
// needs, resolved once (Section 9: rounding mode and requantize function
// selected once, not per byte).
type packContext struct {
	bits       BitDepth
	maxVal     byte
	mode       RoundingMode
	requant    requantizeFunc // scalar path: one byte in, one byte out
	scalarPRNG *ScalarPRNG
	vectorPRNG *VectorPRNG // only used by vector-specialized packers
}

// registerPacker is this Go port's realization of "compile-time
// specialization" for component C7 (Section 4.3 / Section 9): a concrete
// type handling one complete register tile for a specific
// (SideMapOrder, CellFormat) pairing, selected once per PackRun and
// invoked once per tile — never once per byte. registerBlock below is
// the generic, any-cell-format implementation; registerblock_vector.go's
// vectorRegisterBlock is the faster specialization for the two concrete
// 4x2-cell layouts this library ships.
type registerPacker interface {
	UseCompleteSrcInPlace(src *SideMap)
	MakeCompleteSrc(src *SideMap)
	Pack(dst *PackedSideBlock, startWidth int, ctx *packContext)
}

// registerBlock is the generic (non-specialized) packing register block
// (component C7). It handles any CellFormat/KernelSideFormat, at the cost
// of a per-byte inner loop instead of the vector specializations' whole-
// register processing.
type registerBlock struct {
	format      KernelSideFormat
	completeSrc *SideMap
	buf         []byte // zero-padding scratch, kernelWidth * kRegisterSize
}

// newRegisterBlock constructs a generic register block for format.
func newRegisterBlock(format KernelSideFormat) *registerBlock {
	kw := format.KernelWidth()
	return &registerBlock{format: format, buf: make([]byte, kw*kRegisterSize)}
}

// UseCompleteSrcInPlace selects an in-place complete source tile — the
// common case, when the caller already has a full
// kernelWidth x kRegisterSize block available (Section 4.3).
func (rb *registerBlock) UseCompleteSrcInPlace(src *SideMap) {
	rb.completeSrc = src
}

// MakeCompleteSrc copies and zero-extends an incomplete source tile into
// rb.buf (Section 4.3's boundary-handling step). Bytes outside the
// provided source region are set to 0 before requantization, so they
// remain 0 afterward regardless of rounding mode (Requantize(0) == 0 for
// every bit-depth and rounding mode).
func (rb *registerBlock) MakeCompleteSrc(src *SideMap) {
	kw := rb.format.KernelWidth()
	for i := range rb.buf {
		rb.buf[i] = 0
	}
	if src.Order == WidthMajor {
		for w := 0; w < src.Width(); w++ {
			srcOff := src.offset(w, 0)
			copy(rb.buf[w*kRegisterSize:w*kRegisterSize+src.Depth()], src.data[srcOff:srcOff+src.Depth()])
		}
	} else {
		if debugAssertEnabled && src.Order != DepthMajor {
			panic(newStrideMismatchError("MakeCompleteSrc", "unrecognized SideMapOrder", src.Order))
		}
		for d := 0; d < src.Depth(); d++ {
			srcOff := src.offset(0, d)
			copy(rb.buf[d*kw:d*kw+src.Width()], src.data[srcOff:srcOff+src.Width()])
		}
	}
	rb.completeSrc = NewSideMapDefaultStride(rb.buf, src.Order, kw, kRegisterSize)
}

// Pack packs rb.completeSrc into dst at cursor position, starting at
// column startWidth of the rank-one-update vector (component C7's "Pack"
// operation, Section 4.3).
func (rb *registerBlock) Pack(dst *PackedSideBlock, startWidth int, ctx *packContext) {
	format := rb.format
	cellWidth := format.Cell.Width
	cellDepth := format.Cell.Depth
	cellSize := format.Cell.Size()
	kernelWidth := format.KernelWidth()

	dstData := dst.Data()
	cursor := dst.pos
	rankOne := dst.RankOneUpdate()
	mult := dst.RankOneUpdateMultiplier()

	for cellStartDepth := 0; cellStartDepth < kRegisterSize; cellStartDepth += cellDepth {
		for cellStartWidth := 0; cellStartWidth < kernelWidth; cellStartWidth += cellWidth {
			srcCell := rb.completeSrc.Block(cellStartWidth, cellStartDepth, cellWidth, cellDepth)
			for w := 0; w < cellWidth; w++ {
				var sum int32
				for d := 0; d < cellDepth; d++ {
					raw := srcCell.At(w, d)
					requantized := ctx.requant(raw)
					dstData[cursor+format.Cell.OffsetIntoCell(w, d)] = requantized
					sum += int32(requantized)
				}
				rankOne[startWidth+cellStartWidth+w] += sum * mult
			}
			cursor += cellSize
		}
	}
	dst.pos = cursor
}
