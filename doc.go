// Package qpack implements the packing-with-requantization core of a
// low-precision matrix multiplication library.
//
// Packing transforms a block of a source matrix (8-bit unsigned entries)
// into the storage layout a compute kernel expects, while simultaneously
// requantizing each source byte down to a narrower bit-depth (e.g. 7 bits
// on the LHS, 5 bits on the RHS, to raise SIMD throughput with narrower
// accumulators) and computing a per-column rank-one-update vector used to
// correct for the offset that unsigned quantization introduces during
// accumulation.
//
// The externally visible input and output remain 8-bit regardless of the
// internal bit-depth; narrower representations are purely an internal
// fidelity/performance trade-off, selected per side via BitDepth.
//
// This package covers only the packing stage. The compute kernel that
// consumes packed blocks, the unpack stage that applies the inverse
// rational scaling, block-size tuning, and the allocator's real backing
// store are external collaborators referenced here only through the
// interfaces they expose to or consume from the packer.
package qpack
