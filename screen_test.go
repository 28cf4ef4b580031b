// screen_test.go

package vui

import "testing"

func TestNewScreenAutoConfiguresDefaultMode(t *testing.T) {
	alloc := NewAllocator(1<<21, nil)
	s, err := newScreen(MachineA2560K, 0, alloc, nil)
	if err != nil {
		t.Fatalf("newScreen failed: %v", err)
	}
	if s.mode != Mode640x480 {
		t.Fatalf("default mode = %v, want Mode640x480", s.mode)
	}
	w, h := Mode640x480.Dimensions()
	if s.widthPx != w || s.heightPx != h {
		t.Fatalf("widthPx/heightPx = %d,%d want %d,%d", s.widthPx, s.heightPx, w, h)
	}
	if s.cols <= 0 || s.rows <= 0 {
		t.Fatalf("cols/rows should be positive after auto-configure")
	}
}

func TestSetVideoModeRejects1024x768OnNonA2560KChannelA(t *testing.T) {
	alloc := NewAllocator(1<<21, nil)
	s, err := newScreen(MachineC256FMX, 0, alloc, nil)
	if err != nil {
		t.Fatalf("newScreen failed: %v", err)
	}
	if err := s.SetVideoMode(Mode1024x768); err == nil {
		t.Fatalf("expected rejection of 1024x768 on a C256FMX channel")
	}
}

func TestSetVideoModeAcceptsOnA2560KChannelA(t *testing.T) {
	alloc := NewAllocator(1<<21, nil)
	s, err := newScreen(MachineA2560K, 0, alloc, nil)
	if err != nil {
		t.Fatalf("newScreen failed: %v", err)
	}
	if err := s.SetVideoMode(Mode1024x768); err != nil {
		t.Fatalf("SetVideoMode(1024x768) should succeed on A2560K channel A: %v", err)
	}
	w, h := Mode1024x768.Dimensions()
	if s.widthPx != w || s.heightPx != h {
		t.Fatalf("resolution did not re-detect after SetVideoMode: got %d,%d want %d,%d", s.widthPx, s.heightPx, w, h)
	}
}

func TestSeedStandardLUTByteSwapsOnC256(t *testing.T) {
	alloc := NewAllocator(1<<21, nil)
	a2560, _ := newScreen(MachineA2560U, 0, alloc, nil)
	c256, _ := newScreen(MachineC256U, 1, alloc, nil)

	// Palette index 1 is 0x0000AA (blue). A2560 keeps RGB order; C256
	// swaps R/B lanes to BGRx, so the stored value differs.
	if a2560.fgLUT[1] == c256.fgLUT[1] {
		t.Fatalf("expected different LUT byte order between A2560 and C256 machines")
	}
}

func TestAllocateLayersReservesDistinctVRAMOffsets(t *testing.T) {
	alloc := NewAllocator(1<<21, nil)
	s, err := newScreen(MachineA2560U, 0, alloc, nil)
	if err != nil {
		t.Fatalf("newScreen failed: %v", err)
	}
	if err := s.AllocateLayers(); err != nil {
		t.Fatalf("AllocateLayers failed: %v", err)
	}
	if s.Layer0() == nil || s.Layer1() == nil {
		t.Fatalf("both layers should be allocated")
	}
	if s.Layer0().Width() != s.widthPx || s.Layer0().Height() != s.heightPx {
		t.Fatalf("layer0 dimensions do not match screen resolution")
	}
}

func TestSetChannelKindTogglesControlBits(t *testing.T) {
	alloc := NewAllocator(1<<21, nil)
	s, err := newScreen(MachineA2560U, 0, alloc, nil)
	if err != nil {
		t.Fatalf("newScreen failed: %v", err)
	}
	s.SetChannelKind(ChannelGraphicsOnly)
	ctrl := s.regs.readU32(RegMasterCtrl)
	if ctrl&MasterCtrlGraphicsEnable == 0 || ctrl&MasterCtrlTextEnable != 0 {
		t.Fatalf("ChannelGraphicsOnly should enable graphics and disable text")
	}
	s.SetChannelKind(ChannelTextOnly)
	ctrl = s.regs.readU32(RegMasterCtrl)
	if ctrl&MasterCtrlTextEnable == 0 || ctrl&MasterCtrlGraphicsEnable != 0 {
		t.Fatalf("ChannelTextOnly should enable text and disable graphics")
	}
}
