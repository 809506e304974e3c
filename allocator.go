package qpack

// Allocator is the packing core's view of the external allocator
// collaborator named in Section 1 and Section 5 ("The allocator is
// shared but accessed only through opaque handles"). PackedSideBlock
// reserves its two buffers through this interface rather than calling
// make() directly, so a caller embedding qpack in a larger multiplication
// library can supply a pooling/arena allocator of its own.
//
// Adapted from the teacher's MemoryPool/DevicePtr split in memory.go,
// cut down to exactly what a PackedSideBlock needs: two reservations, no
// freeing (a pack's buffers live for the caller-managed lifetime of the
// PackedSideBlock, not the pack call), no transfer-direction bookkeeping.
type Allocator interface {
	// Reserve allocates an uninitialized byte buffer of n bytes and
	// returns an opaque handle to it.
	Reserve(n int) Handle
	// ReserveInt32 allocates an int32 buffer of n elements.
	ReserveInt32(n int) Int32Handle
	// Bytes returns the buffer backing a Handle.
	Bytes(h Handle) []byte
	// Int32s returns the buffer backing an Int32Handle.
	Int32s(h Int32Handle) []int32
}

// Handle is an opaque reference to a byte buffer reserved from an
// Allocator.
type Handle struct{ buf []byte }

// Int32Handle is an opaque reference to an int32 buffer reserved from an
// Allocator.
type Int32Handle struct{ buf []int32 }

// ArenaAllocator is the module's only Allocator implementation: each
// reservation backs directly onto a freshly made Go slice. There is no
// free list or reuse across PackedSideBlocks — unlike the teacher's
// MemoryPool, qpack's buffers are sized once at PackedSideBlock
// construction and live for that block's lifetime, so pooling would only
// add bookkeeping with nothing to reuse it for within this package.
type ArenaAllocator struct{}

// NewArenaAllocator constructs the default Allocator.
func NewArenaAllocator() *ArenaAllocator {
	return &ArenaAllocator{}
}

// Reserve implements Allocator.
func (a *ArenaAllocator) Reserve(n int) Handle {
	return Handle{buf: make([]byte, n)}
}

// ReserveInt32 implements Allocator.
func (a *ArenaAllocator) ReserveInt32(n int) Int32Handle {
	return Int32Handle{buf: make([]int32, n)}
}

// Bytes implements Allocator.
func (a *ArenaAllocator) Bytes(h Handle) []byte { return h.buf }

// Int32s implements Allocator.
func (a *ArenaAllocator) Int32s(h Int32Handle) []int32 { return h.buf }
