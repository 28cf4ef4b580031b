// window_test.go

package vui

import "testing"

func newTestWindowEnv(t *testing.T) (*Allocator, *Theme) {
	t.Helper()
	alloc := NewAllocator(1<<22, nil)
	font := NewBuiltinFont()
	theme, err := BuildDefaultTheme(alloc, font, font)
	if err != nil {
		t.Fatalf("BuildDefaultTheme failed: %v", err)
	}
	return alloc, theme
}

func newTestWindow(t *testing.T, x, y, w, h int) *Window {
	t.Helper()
	alloc, theme := newTestWindowEnv(t)
	on, err := NewBitmap(alloc, w, h, nil, PoolNormal)
	if err != nil {
		t.Fatalf("on-screen bitmap alloc failed: %v", err)
	}
	off, err := NewBitmap(alloc, w, h, nil, PoolNormal)
	if err != nil {
		t.Fatalf("off-screen bitmap alloc failed: %v", err)
	}
	return NewWindow(WindowTemplate{
		Title: "test", Type: WindowStandard,
		X: x, Y: y, W: w, H: h,
		MinW: 20, MinH: 20, MaxW: 400, MaxH: 400,
		CanResize: true,
		OnScreen:  on, Offscreen: off,
		Theme: theme,
	})
}

func TestNewWindowInstantiatesFourStandardControls(t *testing.T) {
	w := newTestWindow(t, 0, 0, 100, 80)
	for _, id := range []uint16{1, 2, 3, 4} {
		if w.ControlByID(id) == nil {
			t.Fatalf("expected standard control id=%d to exist", id)
		}
	}
	if w.ControlByID(99) != nil {
		t.Fatalf("ControlByID(99) should be nil")
	}
}

func TestNewWindowStartsInvalidatedAndInvisible(t *testing.T) {
	w := newTestWindow(t, 0, 0, 100, 80)
	if w.Visible() {
		t.Fatalf("new window should start invisible")
	}
	if !w.invalidated {
		t.Fatalf("new window should start invalidated")
	}
}

func TestWindowClampsToLimitsOnResize(t *testing.T) {
	w := newTestWindow(t, 0, 0, 100, 80)
	w.ChangeWindow(0, 0, 1000, 1000, false)
	if w.w != w.maxW || w.h != w.maxH {
		t.Fatalf("ChangeWindow did not clamp to max: got w=%d h=%d, want %d,%d", w.w, w.h, w.maxW, w.maxH)
	}
	w.ChangeWindow(0, 0, 1, 1, false)
	if w.w != w.minW || w.h != w.minH {
		t.Fatalf("ChangeWindow did not clamp to min: got w=%d h=%d, want %d,%d", w.w, w.h, w.minW, w.minH)
	}
}

func TestWindowMaximizeThenNormSizeRestoresGeometry(t *testing.T) {
	w := newTestWindow(t, 10, 10, 100, 80)
	w.Maximize(300, 200)
	if w.state != WindowMaximized {
		t.Fatalf("state should be WindowMaximized")
	}
	if w.w != 300 || w.h != 200 {
		t.Fatalf("maximize did not resize to screen: got %d,%d", w.w, w.h)
	}
	w.NormSize()
	if w.state != WindowNormal {
		t.Fatalf("state should be WindowNormal after NormSize")
	}
	if w.x != 10 || w.y != 10 || w.w != 100 || w.h != 80 {
		t.Fatalf("NormSize did not restore original geometry: got x=%d y=%d w=%d h=%d", w.x, w.y, w.w, w.h)
	}
}

func TestWindowHitTestDragZonePrioritizesCorner(t *testing.T) {
	w := newTestWindow(t, 0, 0, 100, 80)
	if zone := w.HitTestDragZone(99, 79); zone != DragResizeSE {
		t.Fatalf("bottom-right corner should report DragResizeSE, got %v", zone)
	}
	// Row 10 is inside the titlebar and below the 4px top resize zone.
	if zone := w.HitTestDragZone(50, 10); zone != DragMove {
		t.Fatalf("titlebar point should report DragMove, got %v", zone)
	}
}

func TestWindowAddClipRectFailsSilentlyPastCap(t *testing.T) {
	w := newTestWindow(t, 0, 0, 100, 80)
	w.numClip = 0
	for i := 0; i < WinMaxClipRects; i++ {
		r := NewRect(i, i, i, i)
		if !w.AddClipRect(r) {
			// merging may coalesce some entries; that's fine as long as
			// we eventually observe a full-capacity rejection below.
		}
	}
	// Force the array to capacity with non-adjacent, non-overlapping rects.
	w.numClip = 0
	for i := 0; i < WinMaxClipRects; i++ {
		w.clipRects[i] = NewRect(i*20, i*20, i*20, i*20)
	}
	w.numClip = WinMaxClipRects
	if w.AddClipRect(NewRect(500, 500, 500, 500)) {
		t.Fatalf("AddClipRect should fail silently once at capacity")
	}
}

func TestWindowAcceptDamageRectInvalidatesOnOverflow(t *testing.T) {
	w := newTestWindow(t, 0, 0, 100, 80)
	w.invalidated = false
	w.numClip = WinMaxClipRects
	for i := 0; i < WinMaxClipRects; i++ {
		w.clipRects[i] = NewRect(i*20, i*20, i*20, i*20)
	}
	w.AcceptDamageRect(NewRect(5, 5, 10, 10))
	if !w.invalidated {
		t.Fatalf("AcceptDamageRect should escalate to full invalidation when clip rects are full")
	}
}

func TestWindowAcceptDamageRectRejectsNonOverlapping(t *testing.T) {
	w := newTestWindow(t, 0, 0, 100, 80)
	w.invalidated = false
	w.numClip = 0
	w.AcceptDamageRect(NewRect(1000, 1000, 1010, 1010))
	if w.numClip != 0 || w.invalidated {
		t.Fatalf("non-overlapping damage rect must be silently rejected")
	}
}

func TestWindowRenderInvisibleProducesNoBlit(t *testing.T) {
	w := newTestWindow(t, 0, 0, 20, 20)
	theme := w.theme
	w.visible = false
	w.Render(theme)
	if v, _ := w.onScreen.GetPixel(0, 0); v != 0 {
		t.Fatalf("invisible window should not render to its on-screen bitmap")
	}
}

func TestWindowSetVisibleInvalidates(t *testing.T) {
	w := newTestWindow(t, 0, 0, 20, 20)
	w.invalidated = false
	w.SetVisible(true)
	if !w.visible || !w.invalidated {
		t.Fatalf("SetVisible(true) should show and invalidate the window")
	}
}
