package qpack

// RoundingMode selects how Requantize resolves the fractional remainder
// of the [0,255] -> [0, 2^B-1] mapping (Section 3, component C2).
type RoundingMode int

const (
	// RoundingNearest rounds to the nearest representable value, using a
	// constant offset of 127. Unbiased over a uniform continuum, but
	// biased over the non-uniform distributions real activations follow;
	// that residual bias compounds linearly with accumulation depth.
	RoundingNearest RoundingMode = iota
	// RoundingProbabilistic draws a fresh PRNG byte per value and uses it
	// as the rounding offset. Unbiased over *any* input distribution, at
	// the cost of doubled per-sample variance, so its error grows as
	// sqrt(depth) rather than linearly — which wins beyond a depth
	// threshold (see kProbabilisticRoundingThreshold).
	RoundingProbabilistic
)

// kProbabilisticRoundingThreshold is the empirically tuned per-bit-depth
// depth threshold at and above which ChooseRoundingMode selects
// Probabilistic rounding instead of Nearest. These constants are
// preserved from the source library's own calibration and must not be
// re-derived or re-tuned by an implementer (Section 9, Open Question):
// the source only calibrated and shipped one low-precision pairing
// (7-bit LHS / 5-bit RHS), both thresholds at depth 128. Bit-depths with
// no configured threshold fall back to the documented defaults: 8 is
// "always Nearest", every other untabulated depth is "always
// Probabilistic".
var kProbabilisticRoundingThreshold = map[BitDepth]int{
	Bits5: 128,
	Bits7: 128,
}

// ChooseRoundingMode implements the Section 3 selection rule: return
// Probabilistic if depth >= kProbabilisticRoundingThreshold(bits), else
// Nearest. Called once per PackL2, from the full source depth — never
// per tile and never per byte.
func ChooseRoundingMode(bits BitDepth, depth int) RoundingMode {
	if bits == Bits8 {
		return RoundingNearest
	}
	threshold, ok := kProbabilisticRoundingThreshold[bits]
	if !ok {
		return RoundingProbabilistic
	}
	if depth >= threshold {
		return RoundingProbabilistic
	}
	return RoundingNearest
}
