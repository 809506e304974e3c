package qpack

import "testing"

func newTestBlock(t *testing.T, l1w, l1d, l2w, l2d int) *PackedSideBlock {
	t.Helper()
	format := DepthMajorCells4x2(1)
	params := SideBlockParams{L1Width: l1w, L1Depth: l1d, L2Width: l2w, L2Depth: l2d}
	return NewPackedSideBlock(format, NewArenaAllocator(), params, 1)
}

func TestPackedSideBlockBuffersAreSized(t *testing.T) {
	b := newTestBlock(t, 4, 16, 8, 32)
	if got, want := len(b.Data()), 8*32; got != want {
		t.Errorf("len(Data()) = %d, want %d", got, want)
	}
	if got, want := len(b.RankOneUpdate()), 8; got != want {
		t.Errorf("len(RankOneUpdate()) = %d, want %d", got, want)
	}
}

func TestPackedSideBlockZeroRankOneUpdate(t *testing.T) {
	b := newTestBlock(t, 4, 16, 8, 32)
	row := b.RankOneUpdate()
	for i := range row {
		row[i] = 99
	}
	b.ZeroRankOneUpdate()
	for i, v := range b.RankOneUpdate() {
		if v != 0 {
			t.Errorf("RankOneUpdate()[%d] = %d after ZeroRankOneUpdate, want 0", i, v)
		}
	}
}

func TestPackedSideBlockCurrentDataTracksCursor(t *testing.T) {
	b := newTestBlock(t, 4, 16, 8, 32)
	b.SeekRun(0, 0)
	start := len(b.CurrentData())
	b.SeekForwardNCells(2)
	if got, want := len(b.CurrentData()), start-2*b.Format.Cell.Size(); got != want {
		t.Errorf("len(CurrentData()) after SeekForwardNCells(2) = %d, want %d", got, want)
	}
}

func TestPackedSideBlockSeekRunMonotonicInDepth(t *testing.T) {
	b := newTestBlock(t, 4, 16, 8, 64)
	b.SeekRun(0, 0)
	first := b.pos
	b.SeekRun(0, 16)
	second := b.pos
	if second <= first {
		t.Errorf("SeekRun(0,16) pos %d not greater than SeekRun(0,0) pos %d", second, first)
	}
}

func TestNewPackedSideBlockRejectsNonPositiveDims(t *testing.T) {
	if !debugAssertEnabled {
		t.Skip("debug assertions disabled in this build")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive L2 dimensions")
		}
	}()
	NewPackedSideBlock(DepthMajorCells4x2(1), NewArenaAllocator(), SideBlockParams{L1Width: 4, L1Depth: 16, L2Width: 0, L2Depth: 16}, 1)
}
