// allocator.go - Two-pool memory allocator (Normal RAM, VRAM)

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

import "sync"

// Pool names one of the runtime's two disjoint memory arenas.
type Pool int

const (
	// PoolNormal is for descriptors and offscreen buffers the display
	// hardware never scans.
	PoolNormal Pool = iota
	// PoolVRAM is for buffers whose address must be visible to the
	// display hardware (VICKY-sampled framebuffers).
	PoolVRAM
)

func (p Pool) String() string {
	if p == PoolVRAM {
		return "vram"
	}
	return "normal"
}

type vramFreeSpan struct {
	offset, size int
}

// Allocator models the BGET-style two-pool allocator this runtime treats
// as an external collaborator (spec §1, §4.1): alloc(size,pool)/free(ptr,pool).
// The Normal pool delegates straight to the Go heap (nothing about it needs
// a fixed address), tracked only for leak detection. The VRAM pool is a
// fixed-size byte arena — the display hardware samples it by offset, so
// allocations must live at stable, addressable locations, modelled here
// with a simple first-fit free-list bump allocator.
type Allocator struct {
	mu sync.Mutex

	diag *Diag

	normalOutstanding int
	normalBytes       int64

	vram            []byte
	vramOutstanding map[int]int // offset -> size, currently live blocks
	vramFree        []vramFreeSpan
	vramCursor      int
}

// NewAllocator creates an Allocator whose VRAM pool is backed by an arena
// of vramSize bytes (the machine's physical VRAM size, per the Platform's
// per-model table).
func NewAllocator(vramSize int, diag *Diag) *Allocator {
	return &Allocator{
		diag:            diag,
		vram:            make([]byte, vramSize),
		vramOutstanding: make(map[int]int),
	}
}

// Alloc reserves count*size bytes from pool. It returns a nil slice and a
// non-nil error on failure; callers must treat that as fatal during system
// init (spec §7) and as a graceful refusal during normal operation.
func (a *Allocator) Alloc(count, size int, pool Pool) ([]byte, error) {
	if count <= 0 || size <= 0 {
		return nil, &VUIError{Operation: "alloc", Details: "non-positive count or size"}
	}
	total := count * size
	a.mu.Lock()
	defer a.mu.Unlock()

	switch pool {
	case PoolNormal:
		a.normalOutstanding++
		a.normalBytes += int64(total)
		if a.diag != nil {
			a.diag.Allocf("normal alloc %d bytes (outstanding=%d)", total, a.normalOutstanding)
		}
		return make([]byte, total), nil
	case PoolVRAM:
		off, ok := a.vramAllocLocked(total)
		if !ok {
			return nil, &VUIError{Operation: "alloc", Details: "vram pool exhausted"}
		}
		if a.diag != nil {
			a.diag.Allocf("vram alloc %d bytes at offset 0x%X", total, off)
		}
		return a.vram[off : off+total : off+total], nil
	default:
		return nil, &VUIError{Operation: "alloc", Details: "unknown pool"}
	}
}

// ZeroAlloc is Alloc followed by zeroing; Go's make() already zeroes
// fresh normal-pool memory, but VRAM pool memory is reused from a
// free-list and must be explicitly cleared.
func (a *Allocator) ZeroAlloc(count, size int, pool Pool) ([]byte, error) {
	buf, err := a.Alloc(count, size, pool)
	if err != nil {
		return nil, err
	}
	if pool == PoolVRAM {
		for i := range buf {
			buf[i] = 0
		}
	}
	return buf, nil
}

// Free returns buf to the pool it was allocated from. Every object that
// owns memory must record the pool it came from (spec §4.1) so it can
// call Free correctly. For PoolVRAM, Free on a buffer not tracked by
// this allocator is a no-op; for PoolNormal, Free only decrements the
// outstanding count and byte total, without checking where buf came
// from.
func (a *Allocator) Free(buf []byte, pool Pool) {
	if buf == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	switch pool {
	case PoolNormal:
		if a.normalOutstanding > 0 {
			a.normalOutstanding--
			a.normalBytes -= int64(len(buf))
		}
	case PoolVRAM:
		off := a.vramOffsetOf(buf)
		if off < 0 {
			return
		}
		size, ok := a.vramOutstanding[off]
		if !ok {
			return
		}
		delete(a.vramOutstanding, off)
		a.vramFree = append(a.vramFree, vramFreeSpan{offset: off, size: size})
	}
}

// Outstanding reports the number of still-live allocations across both
// pools, used by the leak-tracking init/shutdown scenario in spec §8.
func (a *Allocator) Outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.normalOutstanding + len(a.vramOutstanding)
}

// VRAMArena exposes the backing store so Screen can reassign a bitmap's
// buffer to a fixed, MMIO-visible offset (spec §4.2: "Bitmaps representing
// the screen layers get their buffer address reassigned to a fixed VRAM
// offset after creation").
func (a *Allocator) VRAMArena() []byte { return a.vram }

// ReserveVRAMAt carves out a fixed-offset span of the VRAM arena for a
// hardware-addressed buffer (the two screen framebuffer layers), bypassing
// the free-list. The caller is responsible for not overlapping reserved
// spans; the Platform's per-model layer offsets are non-overlapping by
// construction.
func (a *Allocator) ReserveVRAMAt(offset, size int) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.vramOutstanding[offset] = size
	if a.diag != nil {
		a.diag.Allocf("vram reserve %d bytes at fixed offset 0x%X", size, offset)
	}
	return a.vram[offset : offset+size : offset+size]
}

func (a *Allocator) vramOffsetOf(buf []byte) int {
	if len(a.vram) == 0 || len(buf) == 0 {
		return -1
	}
	// Scan live blocks for the one sharing buf's backing array. Free is
	// not a hot path, so a linear scan over the (small) outstanding-block
	// set is preferable to carrying an unsafe pointer-to-offset table.
	for off, size := range a.vramOutstanding {
		if off+size <= len(a.vram) && &a.vram[off] == &buf[0] {
			return off
		}
	}
	return -1
}

func (a *Allocator) vramAllocLocked(size int) (int, bool) {
	// First-fit against freed spans.
	for i, span := range a.vramFree {
		if span.size >= size {
			a.vramFree = append(a.vramFree[:i], a.vramFree[i+1:]...)
			if span.size > size {
				a.vramFree = append(a.vramFree, vramFreeSpan{offset: span.offset + size, size: span.size - size})
			}
			a.vramOutstanding[span.offset] = size
			return span.offset, true
		}
	}
	if a.vramCursor+size > len(a.vram) {
		return 0, false
	}
	off := a.vramCursor
	a.vramCursor += size
	a.vramOutstanding[off] = size
	return off, true
}
