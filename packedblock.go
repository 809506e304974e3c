package qpack

// SideBlockParams holds the L1/L2 block-size parameters a PackedSideBlock
// follows (Section 3). Block-size tuning itself — choosing these values
// from cache sizes and matrix shape — is an external collaborator's
// responsibility (Section 1's Non-goals/out-of-scope list); this module
// only consumes the values the caller supplies.
type SideBlockParams struct {
	L1Width int
	L1Depth int
	L2Width int
	L2Depth int
}

// PackedSideBlock is a packed block of either the LHS or RHS (component
// C6). 'Packed' means it is laid out in the storage order the kernel
// format expects. The destination buffer is written sequentially via a
// mutable cursor; the kernel reads in that same order (Section 5).
type PackedSideBlock struct {
	Format KernelSideFormat
	params SideBlockParams

	alloc          Allocator
	dataHandle     Handle
	rankOneHandle  Int32Handle
	rankOneUpdateM int32

	// pos is the current cursor position in the data buffer, in bytes.
	// It is intentionally mutable through a pointer receiver only — there
	// is no const-method equivalent to preserve in Go, so callers that
	// need read-only traversal simply don't call the seek methods.
	pos int
}

// roundUpTo rounds n up to the nearest multiple of m.
func roundUpTo(n, m int) int {
	if rem := n % m; rem != 0 {
		return n + (m - rem)
	}
	return n
}

// NewPackedSideBlock reserves a PackedSideBlock's two buffers from alloc,
// per Section 6's "Inputs to the core". L2Width and L2Depth name the
// logical side extent; the actual buffers are sized up to the next whole
// kernel-width / register-tile boundary, since PackRun always writes a
// complete register tile (zero-padding a short one via MakeCompleteSrc)
// rather than a partial one. rankOneUpdateMultiplier is the
// caller-supplied constant sign (Section 3): typically +-1 depending on
// the other operand's quantization zero-point convention.
//
// params.L1Width must be a multiple of format.KernelWidth() (or cover all
// of L2Width in one block) and params.L1Depth a multiple of
// kRegisterSize (or cover all of L2Depth in one block) — the block-size
// tuner's responsibility (Section 1's Non-goals), checked here only as a
// debug assertion since violating it corrupts the padded-capacity
// accounting below.
func NewPackedSideBlock(format KernelSideFormat, alloc Allocator, params SideBlockParams, rankOneUpdateMultiplier int32) *PackedSideBlock {
	if debugAssertEnabled {
		if params.L2Width <= 0 || params.L2Depth <= 0 {
			panic(newDestTooSmallError("NewPackedSideBlock", "L2 dimensions must be positive", params))
		}
		kernelWidth := format.KernelWidth()
		if params.L1Width < params.L2Width && params.L1Width%kernelWidth != 0 {
			panic(newStrideMismatchError("NewPackedSideBlock", "L1Width must be a multiple of the kernel width", params))
		}
		if params.L1Depth < params.L2Depth && params.L1Depth%kRegisterSize != 0 {
			panic(newStrideMismatchError("NewPackedSideBlock", "L1Depth must be a multiple of kRegisterSize", params))
		}
	}
	paddedWidth := roundUpTo(params.L2Width, format.KernelWidth())
	paddedDepth := roundUpTo(params.L2Depth, kRegisterSize)
	return &PackedSideBlock{
		Format:         format,
		params:         params,
		alloc:          alloc,
		dataHandle:     alloc.Reserve(paddedWidth * paddedDepth),
		rankOneHandle:  alloc.ReserveInt32(paddedWidth),
		rankOneUpdateM: rankOneUpdateMultiplier,
	}
}

// Params returns the block's size parameters.
func (p *PackedSideBlock) Params() SideBlockParams { return p.params }

// RankOneUpdateMultiplier returns the caller-supplied constant multiplier.
func (p *PackedSideBlock) RankOneUpdateMultiplier() int32 { return p.rankOneUpdateM }

// Data returns the full packed-byte buffer.
func (p *PackedSideBlock) Data() []byte { return p.alloc.Bytes(p.dataHandle) }

// RankOneUpdate returns the full rank-one-update buffer.
func (p *PackedSideBlock) RankOneUpdate() []int32 { return p.alloc.Int32s(p.rankOneHandle) }

// CurrentData returns the buffer from the current cursor position onward.
func (p *PackedSideBlock) CurrentData() []byte {
	return p.Data()[p.pos:]
}

// ZeroRankOneUpdate zeroes the rank-one-update vector; called once at the
// start of each L2 pack (Section 4.4, PackL2).
func (p *PackedSideBlock) ZeroRankOneUpdate() {
	row := p.RankOneUpdate()
	for i := range row {
		row[i] = 0
	}
}

// SeekRun repositions the cursor to the start of a kernel-width run, per
// Section 3's seek_run: the destination walks L2-depth-major, so a run at
// (startWidth, startDepth) begins after all the prior L1-depth-bounded
// runs at lesser widths. startDepth must itself fall on an L1-block
// boundary (always true for PackL2's own calls, the only caller) so that
// every preceding depth-block contributes its full, already
// register-aligned byte count with no rounding ambiguity.
func (p *PackedSideBlock) SeekRun(startWidth, startDepth int) {
	paddedWidth := roundUpTo(p.params.L2Width, p.Format.KernelWidth())
	kernelRunDepth := p.params.L1Depth
	if rem := p.params.L2Depth - startDepth; rem < kernelRunDepth {
		kernelRunDepth = rem
	}
	kernelRunDepth = roundUpTo(kernelRunDepth, kRegisterSize)
	p.pos = paddedWidth*startDepth + startWidth*kernelRunDepth
}

// SeekForwardNCells advances the cursor by n cells.
func (p *PackedSideBlock) SeekForwardNCells(n int) {
	p.pos += n * p.Format.Cell.Size()
}
