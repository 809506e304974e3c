package qpack

// PackL2 packs one L2 block of src into dst (component C8, Section 4.4).
// src must already be sliced to exactly dst.Params().L2Width x
// dst.Params().L2Depth, in local (0-based) coordinates matching dst — the
// L2-block-selection walk over a larger matrix is a caller concern, not
// this driver's.
//
// The rounding mode and requantize function are resolved once here, from
// the full L2 depth, and threaded through every PackL1/PackRun call below
// via packContext — never re-resolved per row or per byte (Section 9).
func PackL2(dst *PackedSideBlock, src *SideMap, bits BitDepth) {
	params := dst.Params()
	if debugAssertEnabled && (src.Width() != params.L2Width || src.Depth() != params.L2Depth) {
		panic(newDestTooSmallError("PackL2", "src dimensions must match dst L2 params", params))
	}

	dst.ZeroRankOneUpdate()

	mode := ChooseRoundingMode(bits, params.L2Depth)
	scalarPRNG := NewScalarPRNG()
	ctx := &packContext{
		bits:       bits,
		maxVal:     bits.MaxVal(),
		mode:       mode,
		requant:    selectRequantizeFunc(bits, mode, scalarPRNG),
		scalarPRNG: scalarPRNG,
		vectorPRNG: NewVectorPRNG(),
	}

	for startDepth := 0; startDepth < params.L2Depth; startDepth += params.L1Depth {
		depth := min(params.L1Depth, params.L2Depth-startDepth)
		for startWidth := 0; startWidth < params.L2Width; startWidth += params.L1Width {
			width := min(params.L1Width, params.L2Width-startWidth)
			prefetchL1(src, startWidth, width, startDepth, depth)
			packL1(dst, src, startWidth, width, startDepth, depth, ctx)
		}
	}
}

// packL1 packs one L1 block, one kernel-width strip at a time (Section
// 4.4's PackL1). Each strip seeks its own run position directly —
// PackedSideBlock.SeekRun computes a run's start from (width, depth)
// alone, so there is no cumulative cursor state to carry between strips.
func packL1(dst *PackedSideBlock, src *SideMap, startWidth, width, startDepth, depth int, ctx *packContext) {
	kernelWidth := dst.Format.KernelWidth()
	for w := 0; w < width; w += kernelWidth {
		runWidth := min(kernelWidth, width-w)
		dst.SeekRun(startWidth+w, startDepth)
		packer := selectRegisterPacker(src.Order, dst.Format)
		packRun(packer, dst, src, startWidth+w, runWidth, startDepth, depth, ctx)
	}
}

// packRun packs one kernel-width strip's full depth range, one register
// tile (kRegisterSize deep) at a time (Section 4.3's PackRun). A tile
// uses the fast in-place path only when it is a complete
// kernelWidth x kRegisterSize rectangle; any boundary tile — narrower
// than a full kernel width, or shallower than a full register — goes
// through MakeCompleteSrc's zero-padding copy instead.
func packRun(packer registerPacker, dst *PackedSideBlock, src *SideMap, startWidth, width, startDepth, depth int, ctx *packContext) {
	kernelWidth := dst.Format.KernelWidth()
	for d := 0; d < depth; d += kRegisterSize {
		runDepth := min(kRegisterSize, depth-d)
		tile := src.Block(startWidth, startDepth+d, width, runDepth)
		if width == kernelWidth && runDepth == kRegisterSize {
			packer.UseCompleteSrcInPlace(tile)
		} else {
			packer.MakeCompleteSrc(tile)
		}
		packer.Pack(dst, startWidth, ctx)
	}
}
