// bitmap_test.go

package vui

import "testing"

func newTestBitmap(t *testing.T, w, h int) *Bitmap {
	t.Helper()
	alloc := NewAllocator(1<<20, nil)
	b, err := NewBitmap(alloc, w, h, nil, PoolNormal)
	if err != nil {
		t.Fatalf("NewBitmap failed: %v", err)
	}
	return b
}

func TestNewBitmapRejectsOutOfRangeDimensions(t *testing.T) {
	alloc := NewAllocator(1<<20, nil)
	cases := []struct{ w, h int }{{1, 10}, {10, 1}, {2001, 10}, {10, 2001}}
	for _, c := range cases {
		if _, err := NewBitmap(alloc, c.w, c.h, nil, PoolNormal); err == nil {
			t.Errorf("NewBitmap(%d,%d) expected error, got nil", c.w, c.h)
		}
	}
}

func TestSetPixelGetPixelOutOfBoundsDoesNotMutate(t *testing.T) {
	b := newTestBitmap(t, 10, 10)
	if b.SetPixel(10, 0, 5) {
		t.Fatalf("SetPixel(10,0) should fail (x==width)")
	}
	if b.SetPixel(-1, 0, 5) {
		t.Fatalf("SetPixel(-1,0) should fail")
	}
	if _, ok := b.GetPixel(10, 10); ok {
		t.Fatalf("GetPixel(10,10) should fail")
	}
	for i := range b.pixels {
		if b.pixels[i] != 0 {
			t.Fatalf("bitmap was mutated by an out-of-bounds write")
		}
	}
}

func TestSetPenXYBoundaryCheck(t *testing.T) {
	b := newTestBitmap(t, 10, 10)
	if !b.SetPenXY(9, 9) {
		t.Fatalf("SetPenXY(9,9) should succeed (last valid pixel)")
	}
	if b.SetPenXY(10, 0) {
		t.Fatalf("SetPenXY(10,0) should fail: x>=width")
	}
	if b.SetPenXY(0, 10) {
		t.Fatalf("SetPenXY(0,10) should fail: y>=height")
	}
	if !b.SetPenXY(-5, -5) {
		t.Fatalf("negative pen coordinates must be permitted for partially-visible text")
	}
}

func TestBlitClipsSourceAndDestination(t *testing.T) {
	src := newTestBitmap(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetPixel(x, y, byte(y*4+x+1))
		}
	}
	dst := newTestBitmap(t, 4, 4)
	// Source rect partially off the right/bottom edge of src.
	Blit(src, 2, 2, dst, 0, 0, 10, 10)
	if got, _ := dst.GetPixel(0, 0); got != 11 {
		t.Fatalf("dst(0,0) = %d, want 11", got)
	}
	if got, _ := dst.GetPixel(1, 1); got != 16 {
		t.Fatalf("dst(1,1) = %d, want 16", got)
	}
	if got, _ := dst.GetPixel(3, 3); got != 0 {
		t.Fatalf("dst(3,3) should be untouched (0), got %d", got)
	}
}

func TestBlitWhollyOffscreenSourceCopiesNothing(t *testing.T) {
	src := newTestBitmap(t, 4, 4)
	src.FillMemory(9)
	dst := newTestBitmap(t, 4, 4)
	Blit(src, 100, 100, dst, 0, 0, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if v, _ := dst.GetPixel(x, y); v != 0 {
				t.Fatalf("dst(%d,%d) = %d, want 0 (untouched)", x, y, v)
			}
		}
	}
}

func TestTileFillsFullDestination(t *testing.T) {
	src := newTestBitmap(t, 2, 2)
	src.FillMemory(7)
	dst := newTestBitmap(t, 5, 5)
	if !Tile(src, 0, 0, dst, 2, 2) {
		t.Fatalf("Tile failed")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if v, _ := dst.GetPixel(x, y); v != 7 {
				t.Fatalf("dst(%d,%d) = %d, want 7", x, y, v)
			}
		}
	}
}

func TestTileRejectsOutOfBoundsSourceTile(t *testing.T) {
	src := newTestBitmap(t, 4, 4)
	dst := newTestBitmap(t, 8, 8)
	if Tile(src, 2, 2, dst, 4, 4) {
		t.Fatalf("Tile should fail: tile rect exceeds source bitmap")
	}
}

func TestDrawLineBresenhamDiagonal(t *testing.T) {
	b := newTestBitmap(t, 10, 10)
	b.SetColor(3)
	b.DrawLine(0, 0, 4, 4)
	for i := 0; i <= 4; i++ {
		if v, ok := b.GetPixel(i, i); !ok || v != 3 {
			t.Fatalf("pixel (%d,%d) = %d,%v, want 3,true", i, i, v, ok)
		}
	}
}

func TestDrawBoxFilledVsOutline(t *testing.T) {
	b := newTestBitmap(t, 10, 10)
	b.SetColor(1)
	b.DrawBox(2, 2, 5, 5, true)
	if v, _ := b.GetPixel(4, 4); v != 1 {
		t.Fatalf("filled box interior not set")
	}
	b2 := newTestBitmap(t, 10, 10)
	b2.SetColor(1)
	b2.DrawBox(2, 2, 5, 5, false)
	if v, _ := b2.GetPixel(4, 4); v != 0 {
		t.Fatalf("outline box interior should remain untouched, got %d", v)
	}
	if v, _ := b2.GetPixel(2, 2); v != 1 {
		t.Fatalf("outline box corner should be set")
	}
}

func TestDrawRoundBoxRejectsRadiusOutOfRange(t *testing.T) {
	b := newTestBitmap(t, 40, 40)
	if b.DrawRoundBox(0, 0, 30, 30, 2, false) {
		t.Fatalf("radius 2 should be rejected")
	}
	if b.DrawRoundBox(0, 0, 30, 30, 21, false) {
		t.Fatalf("radius 21 should be rejected")
	}
	if !b.DrawRoundBox(0, 0, 30, 30, 10, false) {
		t.Fatalf("radius 10 should be accepted")
	}
}

func TestFloodFillStopsAtBoundaryAndTargetColor(t *testing.T) {
	b := newTestBitmap(t, 5, 5)
	b.SetColor(9)
	b.DrawBox(0, 0, 5, 5, false) // a border of color 9
	b.SetColor(2)
	if !b.FloodFill(2, 2) {
		t.Fatalf("FloodFill from interior should succeed")
	}
	if v, _ := b.GetPixel(2, 2); v != 2 {
		t.Fatalf("interior not filled")
	}
	if v, _ := b.GetPixel(0, 0); v != 9 {
		t.Fatalf("border should not be overwritten, got %d", v)
	}
}

func TestFloodFillOutOfBoundsSeedFails(t *testing.T) {
	b := newTestBitmap(t, 5, 5)
	if b.FloodFill(-1, 0) {
		t.Fatalf("FloodFill with out-of-bounds seed should fail")
	}
}

func TestFillBoxClipsSilently(t *testing.T) {
	b := newTestBitmap(t, 5, 5)
	b.FillBox(-2, -2, 4, 4, 6) // half off top-left
	if v, _ := b.GetPixel(0, 0); v != 6 {
		t.Fatalf("clipped fill should still cover the in-bounds portion")
	}
}
