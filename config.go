// Package qpack configuration constants.
package qpack

// Cache sizes for different levels (in bytes). These are not used to
// compute L1/L2 block sizes — that tuning is an external collaborator's
// responsibility (see SideBlockParams) — but are kept as named references
// for callers choosing block sizes, and for prefetch-distance reasoning.
const (
	// L1CacheSize is a typical per-core L1 cache size.
	L1CacheSize = 32 * 1024
	// L2CacheSize is a typical per-core L2 cache size.
	L2CacheSize = 256 * 1024
)

// kRegisterSize is the register tile depth: the number of source rows (or
// columns) pulled into one PackingRegisterBlock at a time. Fixed at 16 to
// match the 128-bit vector specialization's lane count.
const kRegisterSize = 16

// kDefaultCacheLineSize is the prefetch stride used by the driver's
// prefetch advisory (Section 4.4).
const kDefaultCacheLineSize = 64
