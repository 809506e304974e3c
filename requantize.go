package qpack

// requantizeNearest implements Section 4.1's Nearest-rounding branch:
// offset = 127, a fixed rounding constant.
func requantizeNearest(s, maxVal byte) byte {
	if maxVal == 255 {
		return s
	}
	scaled := uint16(s) * uint16(maxVal)
	return byte((scaled + 127) / 255)
}

// requantizeProbabilistic implements Section 4.1's Probabilistic-rounding
// branch: offset = prng.Get() - 1, uniform on [0, 254].
func requantizeProbabilistic(s, maxVal byte, prng *ScalarPRNG) byte {
	if maxVal == 255 {
		return s
	}
	scaled := uint16(s) * uint16(maxVal)
	offset := uint16(prng.Get()) - 1
	return byte((scaled + offset) / 255)
}

// Requantize is the public, non-hot-path entry point matching Section 8's
// testable properties (Requantize(s, B, R, prng)). The hot loop inside
// the pack driver never calls this — it resolves a requantizeFunc once
// per PackL2 via selectRequantizeFunc instead, so the RoundingMode
// switch below never executes per byte.
func Requantize(s byte, bits BitDepth, mode RoundingMode, prng *ScalarPRNG) byte {
	if bits.IsIdentity() {
		return s
	}
	maxVal := bits.MaxVal()
	switch mode {
	case RoundingNearest:
		return requantizeNearest(s, maxVal)
	case RoundingProbabilistic:
		return requantizeProbabilistic(s, maxVal, prng)
	default:
		if debugAssertEnabled {
			panic(newUnknownRoundingError("Requantize", "unrecognized RoundingMode"))
		}
		return 0
	}
}

// requantizeFunc is a specialized, single-input requantizer closing over
// a fixed maxVal, rounding mode and (for Probabilistic) PRNG. Selecting
// one of these once per PackL2 — instead of branching on RoundingMode
// inside the innermost per-byte loop — is this Go port's answer to the
// source's PackRun<Rounding> template dispatch (Section 9, Design Notes).
type requantizeFunc func(s byte) byte

// selectRequantizeFunc resolves bits+mode+prng to a concrete
// requantizeFunc once, at PackL2 setup.
func selectRequantizeFunc(bits BitDepth, mode RoundingMode, prng *ScalarPRNG) requantizeFunc {
	if bits.IsIdentity() {
		return func(s byte) byte { return s }
	}
	maxVal := bits.MaxVal()
	switch mode {
	case RoundingNearest:
		return func(s byte) byte { return requantizeNearest(s, maxVal) }
	case RoundingProbabilistic:
		return func(s byte) byte { return requantizeProbabilistic(s, maxVal, prng) }
	default:
		if debugAssertEnabled {
			panic(newUnknownRoundingError("selectRequantizeFunc", "unrecognized RoundingMode"))
		}
		return func(s byte) byte { return 0 }
	}
}
