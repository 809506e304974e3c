//go:build noasm

package qpack

// selectRegisterPacker always returns the generic scalar packer when built
// with the noasm tag, matching the teacher's own noasm convention
// (compute/asm/f32/gemm_small.go) of forcing the portable fallback.
func selectRegisterPacker(order SideMapOrder, format KernelSideFormat) registerPacker {
	return newRegisterBlock(format)
}
