package qpack

// Prefetch provides a portable memory-prefetching hint for the pack
// driver's prefetchL1 (Section 4.4). It is advisory: omitting it is legal
// but costs throughput on long L2 depth blocks. Like the teacher's
// PrefetchFloat32, this touches the byte to pull it into cache rather
// than issuing an architecture-specific prefetch instruction, since qpack
// carries no Go assembly.
func Prefetch(data []byte, index int) {
	if index >= 0 && index < len(data) {
		_ = data[index]
	}
}

// prefetchL1 issues the prefetch advisory for an L1-sized slice of the
// source side map ahead of PackL1, following the orientation-dependent
// stride policy from Section 4.4: for WidthMajor sources, prefetch along
// depth at cache-line stride and along width at unit stride; vice versa
// for DepthMajor.
func prefetchL1(src *SideMap, startWidth, width, startDepth, depth int) {
	if src.Order == WidthMajor {
		for d := 0; d < depth; d += kDefaultCacheLineSize {
			for w := 0; w < width; w++ {
				Prefetch(src.data, src.offset(startWidth+w, startDepth+d))
			}
		}
	} else {
		for d := 0; d < depth; d++ {
			for w := 0; w < width; w += kDefaultCacheLineSize {
				Prefetch(src.data, src.offset(startWidth+w, startDepth+d))
			}
		}
	}
}
