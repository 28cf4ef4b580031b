// allocator_test.go

package vui

import "testing"

func TestAllocatorNormalPoolTracksOutstanding(t *testing.T) {
	a := NewAllocator(4096, nil)
	if got := a.Outstanding(); got != 0 {
		t.Fatalf("Outstanding() = %d, want 0", got)
	}
	buf, err := a.Alloc(16, 1, PoolNormal)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if len(buf) != 16 {
		t.Fatalf("len(buf) = %d, want 16", len(buf))
	}
	if got := a.Outstanding(); got != 1 {
		t.Fatalf("Outstanding() = %d, want 1", got)
	}
	a.Free(buf, PoolNormal)
	if got := a.Outstanding(); got != 0 {
		t.Fatalf("Outstanding() after free = %d, want 0", got)
	}
}

func TestAllocatorVRAMPoolReusesFreedSpans(t *testing.T) {
	a := NewAllocator(64, nil)
	first, err := a.Alloc(32, 1, PoolVRAM)
	if err != nil {
		t.Fatalf("first alloc failed: %v", err)
	}
	a.Free(first, PoolVRAM)
	second, err := a.Alloc(32, 1, PoolVRAM)
	if err != nil {
		t.Fatalf("second alloc failed: %v", err)
	}
	if &first[0] != &second[0] {
		t.Fatalf("expected freed vram span to be reused")
	}
}

func TestAllocatorVRAMPoolExhaustion(t *testing.T) {
	a := NewAllocator(16, nil)
	if _, err := a.Alloc(16, 1, PoolVRAM); err != nil {
		t.Fatalf("first alloc should fit exactly: %v", err)
	}
	if _, err := a.Alloc(1, 1, PoolVRAM); err == nil {
		t.Fatalf("expected exhaustion error, got nil")
	}
}

func TestAllocatorZeroAllocClearsReusedVRAM(t *testing.T) {
	a := NewAllocator(16, nil)
	buf, _ := a.Alloc(16, 1, PoolVRAM)
	for i := range buf {
		buf[i] = 0xFF
	}
	a.Free(buf, PoolVRAM)
	buf2, err := a.ZeroAlloc(16, 1, PoolVRAM)
	if err != nil {
		t.Fatalf("ZeroAlloc failed: %v", err)
	}
	for i, v := range buf2 {
		if v != 0 {
			t.Fatalf("buf2[%d] = %d, want 0", i, v)
		}
	}
}

func TestAllocatorRejectsNonPositiveSize(t *testing.T) {
	a := NewAllocator(16, nil)
	if _, err := a.Alloc(0, 1, PoolNormal); err == nil {
		t.Fatalf("expected error for zero count")
	}
	if _, err := a.Alloc(1, 0, PoolNormal); err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestAllocatorReserveVRAMAtIsFixedOffset(t *testing.T) {
	a := NewAllocator(256, nil)
	buf := a.ReserveVRAMAt(128, 32)
	if len(buf) != 32 {
		t.Fatalf("len = %d, want 32", len(buf))
	}
	arena := a.VRAMArena()
	if &arena[128] != &buf[0] {
		t.Fatalf("ReserveVRAMAt did not return a view into the arena at the requested offset")
	}
}
