package qpack

import "testing"

func fillWidthMajorSrc(width, depth int) (*SideMap, []byte) {
	data := make([]byte, width*depth)
	for w := 0; w < width; w++ {
		for d := 0; d < depth; d++ {
			data[w*depth+d] = byte((w*31 + d*7) % 256)
		}
	}
	return NewSideMapDefaultStride(data, WidthMajor, width, depth), data
}

func newTestPackContext(bits BitDepth) *packContext {
	mode := RoundingNearest
	prng := NewScalarPRNG()
	return &packContext{
		bits:       bits,
		maxVal:     bits.MaxVal(),
		mode:       mode,
		requant:    selectRequantizeFunc(bits, mode, prng),
		scalarPRNG: prng,
		vectorPRNG: NewVectorPRNG(),
	}
}

func TestRegisterBlockPackCompleteTileNoZeroPadding(t *testing.T) {
	format := DepthMajorCells4x2(2) // kernelWidth = 8
	kernelWidth := format.KernelWidth()
	src, _ := fillWidthMajorSrc(kernelWidth, kRegisterSize)

	block := newTestBlock(t, kernelWidth, kRegisterSize, kernelWidth, kRegisterSize)
	rb := newRegisterBlock(format)
	rb.UseCompleteSrcInPlace(src)
	rb.Pack(block, 0, newTestPackContext(Bits8))

	out := block.Data()
	for w := 0; w < kernelWidth; w++ {
		for d := 0; d < kRegisterSize; d++ {
			cellStartWidth := (w / format.Cell.Width) * format.Cell.Width
			cellStartDepth := (d / format.Cell.Depth) * format.Cell.Depth
			cellIndex := cellStartDepth/format.Cell.Depth*format.Cells + cellStartWidth/format.Cell.Width
			cellOff := cellIndex * format.Cell.Size()
			inCell := format.Cell.OffsetIntoCell(w-cellStartWidth, d-cellStartDepth)
			want := src.At(w, d)
			if got := out[cellOff+inCell]; got != want {
				t.Fatalf("w=%d d=%d: packed byte = %d, want %d", w, d, got, want)
			}
		}
	}
}

func TestRegisterBlockMakeCompleteSrcZeroPadsBoundary(t *testing.T) {
	format := DepthMajorCells4x2(2)
	kernelWidth := format.KernelWidth()
	// A boundary tile: only 5 of kernelWidth(8) rows and 10 of 16 depth present.
	partial, _ := fillWidthMajorSrc(5, 10)

	rb := newRegisterBlock(format)
	rb.MakeCompleteSrc(partial)

	if rb.completeSrc.Width() != kernelWidth || rb.completeSrc.Depth() != kRegisterSize {
		t.Fatalf("completeSrc dims = (%d,%d), want (%d,%d)", rb.completeSrc.Width(), rb.completeSrc.Depth(), kernelWidth, kRegisterSize)
	}
	for w := 0; w < kernelWidth; w++ {
		for d := 0; d < kRegisterSize; d++ {
			got := rb.completeSrc.At(w, d)
			if w < 5 && d < 10 {
				if want := partial.At(w, d); got != want {
					t.Errorf("w=%d d=%d: got %d, want %d (copied)", w, d, got, want)
				}
			} else if got != 0 {
				t.Errorf("w=%d d=%d: got %d, want 0 (zero-padded)", w, d, got)
			}
		}
	}
}

func TestVectorRegisterBlockAgreesWithScalar(t *testing.T) {
	for _, format := range []KernelSideFormat{DepthMajorCells4x2(2), WidthMajorCells4x2(2)} {
		kernelWidth := format.KernelWidth()
		src, _ := fillWidthMajorSrc(kernelWidth, kRegisterSize)

		params := SideBlockParams{L1Width: kernelWidth, L1Depth: kRegisterSize, L2Width: kernelWidth, L2Depth: kRegisterSize}
		scalarBlock := NewPackedSideBlock(format, NewArenaAllocator(), params, 1)
		rb := newRegisterBlock(format)
		rb.UseCompleteSrcInPlace(src)
		rb.Pack(scalarBlock, 0, newTestPackContext(Bits8))

		vectorBlock := NewPackedSideBlock(format, NewArenaAllocator(), params, 1)
		vb := newVectorRegisterBlock(format)
		vb.UseCompleteSrcInPlace(src)
		vb.Pack(vectorBlock, 0, newTestPackContext(Bits8))

		scalarData, vectorData := scalarBlock.Data(), vectorBlock.Data()
		for i := range scalarData {
			if scalarData[i] != vectorData[i] {
				t.Fatalf("%v: byte %d: scalar=%d vector=%d", format, i, scalarData[i], vectorData[i])
			}
		}
		scalarRank, vectorRank := scalarBlock.RankOneUpdate(), vectorBlock.RankOneUpdate()
		for i := range scalarRank {
			if scalarRank[i] != vectorRank[i] {
				t.Fatalf("%v: rank-one[%d]: scalar=%d vector=%d", format, i, scalarRank[i], vectorRank[i])
			}
		}
	}
}

func TestSelectRegisterPackerFallsBackForUnsupportedOrder(t *testing.T) {
	// DepthMajor sources are never handled by the vector specialization
	// (Section 4.3's vector path requires WidthMajor source rows).
	packer := selectRegisterPacker(DepthMajor, DepthMajorCells4x2(2))
	if _, ok := packer.(*registerBlock); !ok {
		t.Fatalf("selectRegisterPacker(DepthMajor, ...) = %T, want *registerBlock", packer)
	}
}
