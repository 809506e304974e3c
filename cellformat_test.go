package qpack

import "testing"

func TestCellFormatOffsetIntoCellDepthMajor(t *testing.T) {
	c := CellFormat{Width: 4, Depth: 2, Order: CellDepthMajor}
	seen := make(map[int]bool)
	for w := 0; w < 4; w++ {
		for d := 0; d < 2; d++ {
			off := c.OffsetIntoCell(w, d)
			if off < 0 || off >= c.Size() {
				t.Fatalf("OffsetIntoCell(%d,%d) = %d out of [0,%d)", w, d, off, c.Size())
			}
			if seen[off] {
				t.Fatalf("OffsetIntoCell(%d,%d) = %d collides with a previous (w,d)", w, d, off)
			}
			seen[off] = true
		}
	}
}

func TestCellFormatOffsetIntoCellWidthMajor(t *testing.T) {
	c := CellFormat{Width: 4, Depth: 2, Order: CellWidthMajor}
	seen := make(map[int]bool)
	for w := 0; w < 4; w++ {
		for d := 0; d < 2; d++ {
			off := c.OffsetIntoCell(w, d)
			if off < 0 || off >= c.Size() {
				t.Fatalf("OffsetIntoCell(%d,%d) = %d out of [0,%d)", w, d, off, c.Size())
			}
			if seen[off] {
				t.Fatalf("OffsetIntoCell(%d,%d) = %d collides with a previous (w,d)", w, d, off)
			}
			seen[off] = true
		}
	}
}

func TestKernelSideFormatWidth(t *testing.T) {
	f := DepthMajorCells4x2(3)
	if got, want := f.KernelWidth(), 12; got != want {
		t.Errorf("KernelWidth() = %d, want %d", got, want)
	}
}

func TestOffsetIntoCellOutOfBoundsPanicsInDebugBuild(t *testing.T) {
	if !debugAssertEnabled {
		t.Skip("debug assertions disabled in this build")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds (w,d)")
		}
	}()
	c := CellFormat{Width: 4, Depth: 2, Order: CellDepthMajor}
	c.OffsetIntoCell(4, 0)
}
