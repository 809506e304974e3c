package qpack

import (
	"os"
	"sync"

	"golang.org/x/sys/cpu"
)

// QPACK_NOSIMD, when set to a non-empty value, forces every pack onto the
// scalar reference path regardless of detected CPU features. Grounded in
// go-highway's NoSimdEnv/dispatch_amd64.go convention of an environment
// override sitting above feature detection.
const noSIMDEnvVar = "QPACK_NOSIMD"

// cpuFeatures tracks the instruction-set extensions this process detected.
// Only the byte-shuffle-capable extensions relevant to the 16-lane vector
// specialization are tracked; qpack has no floating-point hot path to gate.
type cpuFeatures struct {
	HasSSE41 bool
	HasASIMD bool
}

var (
	detectedFeatures cpuFeatures
	detectOnce       sync.Once
)

func detectCPUFeatures() {
	detectedFeatures = cpuFeatures{
		HasSSE41: cpu.X86.HasSSE41,
		HasASIMD: cpu.ARM64.HasASIMD,
	}
}

// vectorPathAvailable reports whether the 16-lane vector specialization
// (requantize_vector.go, registerblock_vector.go) should be used in place
// of the scalar reference path. CPU features are detected once per
// process, since they don't change at runtime; the QPACK_NOSIMD override
// is read on every call. selectRegisterPacker calls this once per PackRun.
func vectorPathAvailable() bool {
	detectOnce.Do(detectCPUFeatures)
	if os.Getenv(noSIMDEnvVar) != "" {
		return false
	}
	return detectedFeatures.HasSSE41 || detectedFeatures.HasASIMD
}

// CPUInfo returns a human-readable description of the detected CPU
// features relevant to qpack's vector dispatch. Exposed for cmd/qpackdemo
// and diagnostics; not consulted by the packing core itself.
func CPUInfo() string {
	detectOnce.Do(detectCPUFeatures)
	switch {
	case detectedFeatures.HasSSE41:
		return "amd64 vector path (SSE4.1 byte shuffle)"
	case detectedFeatures.HasASIMD:
		return "arm64 vector path (ASIMD)"
	default:
		return "scalar reference path"
	}
}
