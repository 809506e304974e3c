//go:build !noasm

package qpack

// selectRegisterPacker resolves the (SideMapOrder, KernelSideFormat) pair
// to a concrete registerPacker once per PackRun (Section 9's dispatch
// contract). Under the default !noasm build, the vector specialization is
// used whenever it applies and the process detected usable CPU features;
// registerblock_dispatch_noasm.go provides the noasm-tagged override that
// always returns the generic path.
func selectRegisterPacker(order SideMapOrder, format KernelSideFormat) registerPacker {
	if vectorPathAvailable() && supportsVectorPacking(order, format) {
		return newVectorRegisterBlock(format)
	}
	return newRegisterBlock(format)
}
