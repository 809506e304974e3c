package qpack

import "testing"

func TestChooseRoundingModeBits8AlwaysNearest(t *testing.T) {
	for _, depth := range []int{0, 1, 128, 1 << 20} {
		if mode := ChooseRoundingMode(Bits8, depth); mode != RoundingNearest {
			t.Errorf("ChooseRoundingMode(Bits8, %d) = %v, want RoundingNearest", depth, mode)
		}
	}
}

func TestChooseRoundingModeTabulatedThreshold(t *testing.T) {
	cases := []struct {
		bits  BitDepth
		depth int
		want  RoundingMode
	}{
		{Bits5, 0, RoundingNearest},
		{Bits5, 127, RoundingNearest},
		{Bits5, 128, RoundingProbabilistic},
		{Bits5, 1000, RoundingProbabilistic},
		{Bits7, 0, RoundingNearest},
		{Bits7, 127, RoundingNearest},
		{Bits7, 128, RoundingProbabilistic},
	}
	for _, tc := range cases {
		if got := ChooseRoundingMode(tc.bits, tc.depth); got != tc.want {
			t.Errorf("ChooseRoundingMode(Bits%d, %d) = %v, want %v", tc.bits, tc.depth, got, tc.want)
		}
	}
}

func TestChooseRoundingModeUntabulatedAlwaysProbabilistic(t *testing.T) {
	for _, bits := range []BitDepth{Bits1, Bits2, Bits3, Bits4, Bits6} {
		for _, depth := range []int{0, 1, 1000} {
			if got := ChooseRoundingMode(bits, depth); got != RoundingProbabilistic {
				t.Errorf("ChooseRoundingMode(Bits%d, %d) = %v, want RoundingProbabilistic", bits, depth, got)
			}
		}
	}
}
