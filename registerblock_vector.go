//go:build !noasm

package qpack

// vectorRegisterBlock is the 16-lane vector specialization of component
// C7 (Section 4.3's "SIMD-accelerated specialization"), selected once per
// PackRun when the source is WidthMajor and the cell format is one of the
// two 4x2 layouts the source library ships (DepthMajor 4x2, sourced from
// 8-bit lane zips; WidthMajor 4x2, sourced from 16-bit lane zips).
//
// Both of the source's NEON specializations requantize identically: one
// full 16-byte source row (one complete register-depth run for a single
// width index) per Requantize call, amortizing the PRNG draw and the
// divide-by-255 identity over 16 bytes instead of paying it per byte.
// They differ only in the zip/transpose cascade used to reshuffle those
// rows into the cell-ordered output — an instruction-level permutation
// chosen to minimize vector-register traffic on real NEON hardware, not
// a change to which byte ends up where.
//
// This Go port reproduces the requantize-one-row-at-a-time batching (the
// numerically load-bearing half of the specialization, and the half
// Section 9 calls a strict bit-identical contract) and expresses the
// reshuffle directly through CellFormat.OffsetIntoCell — the same
// function the scalar path uses — rather than hand-transcribing the
// vzipq_u8 cascades lane-by-lane. Since OffsetIntoCell already branches
// on CellFormat.Order, one implementation covers both named
// specializations; see DESIGN.md for why reproducing the literal zip
// cascades by hand, with no way to execute and verify them here, was
// judged a worse risk than this construction, which is byte-identical to
// the scalar path *by construction*.
type vectorRegisterBlock struct {
	*registerBlock
	rows [][16]byte
}

// newVectorRegisterBlock constructs a vector-specialized register block
// for format, which must be a 4x2 cell layout (DepthMajorCells4x2 or
// WidthMajorCells4x2).
func newVectorRegisterBlock(format KernelSideFormat) *vectorRegisterBlock {
	return &vectorRegisterBlock{
		registerBlock: newRegisterBlock(format),
		rows:          make([][16]byte, format.KernelWidth()),
	}
}

// supportsVectorPacking reports whether (order, format) is one of the two
// 4x2 layouts the vector specialization covers.
func supportsVectorPacking(order SideMapOrder, format KernelSideFormat) bool {
	return order == WidthMajor && format.Cell.Width == 4 && format.Cell.Depth == 2
}

// Pack loads and requantizes all kernelWidth source rows (16 bytes of
// depth each) in one batch per row, then stores through the same
// cell-offset mapping the scalar path uses.
func (v *vectorRegisterBlock) Pack(dst *PackedSideBlock, startWidth int, ctx *packContext) {
	format := v.format
	kernelWidth := format.KernelWidth()
	cellWidth, cellDepth, cellSize := format.Cell.Width, format.Cell.Depth, format.Cell.Size()

	for w := 0; w < kernelWidth; w++ {
		off := v.completeSrc.offset(w, 0)
		var raw [16]byte
		copy(raw[:], v.completeSrc.data[off:off+kRegisterSize])
		switch ctx.mode {
		case RoundingNearest:
			v.rows[w] = requantizeVector16Nearest(raw, ctx.maxVal)
		case RoundingProbabilistic:
			v.rows[w] = requantizeVector16Probabilistic(raw, ctx.maxVal, ctx.vectorPRNG)
		default:
			if debugAssertEnabled {
				panic(newUnknownRoundingError("vectorRegisterBlock.Pack", "unrecognized RoundingMode"))
			}
		}
	}

	dstData := dst.Data()
	cursor := dst.pos
	rankOne := dst.RankOneUpdate()
	mult := dst.RankOneUpdateMultiplier()

	for cellStartDepth := 0; cellStartDepth < kRegisterSize; cellStartDepth += cellDepth {
		for cellStartWidth := 0; cellStartWidth < kernelWidth; cellStartWidth += cellWidth {
			for w := 0; w < cellWidth; w++ {
				row := v.rows[cellStartWidth+w]
				var sum int32
				for d := 0; d < cellDepth; d++ {
					value := row[cellStartDepth+d]
					dstData[cursor+format.Cell.OffsetIntoCell(w, d)] = value
					sum += int32(value)
				}
				rankOne[startWidth+cellStartWidth+w] += sum * mult
			}
			cursor += cellSize
		}
	}
	dst.pos = cursor
}
