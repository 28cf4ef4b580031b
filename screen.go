// screen.go - One physical display channel: registers, mode, VRAM layers

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

// ChannelKind distinguishes the two content configurations a channel can
// carry when it supports both text and bitmap output.
type ChannelKind int

const (
	ChannelTextOnly ChannelKind = iota
	ChannelGraphicsOnly
	ChannelTextOverlay
)

// Screen owns one physical display channel: its VICKY register block,
// text-mode RAM regions, LUTs, current video mode, and (for channels
// with bitmap graphics) its two VRAM framebuffer layers.
type Screen struct {
	machine Machine
	index   int // 0 = channel A, 1 = channel B

	regs regBlock

	mode VideoMode
	kind ChannelKind

	widthPx, heightPx int
	cols, rows        int
	borderLeft, borderRight, borderTop, borderBottom int

	fgLUT [16]uint32
	bgLUT [16]uint32

	layer0, layer1 *Bitmap // back/fore bitmap graphics layers, nil on text-only channels

	alloc *Allocator
	diag  *Diag
}

const defaultBorder = 16
const defaultFontCell = 8

func newScreen(machine Machine, index int, alloc *Allocator, diag *Diag) (*Screen, error) {
	s := &Screen{machine: machine, index: index, alloc: alloc, diag: diag}
	if err := s.autoConfigure(); err != nil {
		return nil, err
	}
	return s, nil
}

// autoConfigure performs the four auto-configure steps from §4.4. It
// does not read back a previously set mode: it writes 640x480 plus
// gamma-enable into the master control register, derives the
// resolution and visible columns/rows from that, and seeds the
// standard 16-color LUT.
func (s *Screen) autoConfigure() error {
	s.mode = Mode640x480
	s.regs.writeU32(RegMasterCtrl, modeSelectBits(s.mode)|MasterCtrlGammaEnable)
	s.recomputeResolution()
	s.seedStandardLUT()
	return nil
}

// recomputeResolution re-derives widthPx/heightPx from the mode bits and
// cols/rows from a fixed defaultBorder on every side; the border
// registers are not read. Called by auto-configure and after
// SetVideoMode.
func (s *Screen) recomputeResolution() {
	bits := VideoMode((s.regs.readU32(RegMasterCtrl) >> 8) & 0b111)
	s.mode = bits
	s.widthPx, s.heightPx = s.mode.Dimensions()

	s.borderLeft, s.borderRight = defaultBorder, defaultBorder
	s.borderTop, s.borderBottom = defaultBorder, defaultBorder
	s.cols = (s.widthPx - 2*s.borderLeft) / defaultFontCell
	s.rows = (s.heightPx - 2*s.borderTop) / defaultFontCell
}

// standardVGAPalette is the 16-entry VGA palette in 0xRRGGBB order; each
// machine's seedStandardLUT adjusts byte order to match its LUT
// endianness (BGRx on C256, xRGB on A2560).
var standardVGAPalette = [16]uint32{
	0x000000, 0x0000AA, 0x00AA00, 0x00AAAA,
	0xAA0000, 0xAA00AA, 0xAA5500, 0xAAAAAA,
	0x555555, 0x5555FF, 0x55FF55, 0x55FFFF,
	0xFF5555, 0xFF55FF, 0xFFFF55, 0xFFFFFF,
}

func (s *Screen) isC256() bool {
	switch s.machine {
	case MachineC256U, MachineC256UPlus, MachineC256FMX, MachineC256GenX:
		return true
	default:
		return false
	}
}

// seedStandardLUT writes the standard 16-color VGA palette into both
// text LUTs, endian-adjusted per machine (step 3 of auto-configure).
func (s *Screen) seedStandardLUT() {
	for i, rgb := range standardVGAPalette {
		v := rgb
		if s.isC256() {
			// BGRx: swap R and B byte lanes of the 0xRRGGBB value.
			r := (rgb >> 16) & 0xFF
			g := (rgb >> 8) & 0xFF
			b := rgb & 0xFF
			v = b<<16 | g<<8 | r
		}
		s.fgLUT[i] = v
		s.bgLUT[i] = v
	}
}

// SetVideoMode writes the mode-select bits (clearing the old field and
// OR-ing in the new one) and re-detects border/columns/rows.
func (s *Screen) SetVideoMode(mode VideoMode) error {
	if mode == Mode1024x768 && !(s.machine == MachineA2560K && s.index == 0) {
		return &VUIError{Operation: "set video mode", Details: "1024x768 only available on A2560K channel A"}
	}
	ctrl := s.regs.readU32(RegMasterCtrl)
	ctrl &^= masterCtrlModeMask
	ctrl |= modeSelectBits(mode)
	s.regs.writeU32(RegMasterCtrl, ctrl)
	s.recomputeResolution()
	return nil
}

// SetChannelKind switches between text-only, graphics-only, and
// text-overlaid-on-graphics content configurations. Graphics mode
// enables both bitmap layers; overlay enables text and bitmap together;
// text-only disables both bitmap layers.
func (s *Screen) SetChannelKind(kind ChannelKind) {
	ctrl := s.regs.readU32(RegMasterCtrl)
	switch kind {
	case ChannelTextOnly:
		ctrl &^= MasterCtrlGraphicsEnable | MasterCtrlBitmapEnable
		ctrl |= MasterCtrlTextEnable
		ctrl &^= MasterCtrlTextOverlay
	case ChannelGraphicsOnly:
		ctrl &^= MasterCtrlTextEnable | MasterCtrlTextOverlay
		ctrl |= MasterCtrlGraphicsEnable | MasterCtrlBitmapEnable
	case ChannelTextOverlay:
		ctrl |= MasterCtrlTextEnable | MasterCtrlTextOverlay | MasterCtrlGraphicsEnable | MasterCtrlBitmapEnable
	}
	s.regs.writeU32(RegMasterCtrl, ctrl)
	s.kind = kind
}

// AllocateLayers creates the screen's two bitmap graphics layers and
// reassigns their buffers to fixed VRAM offsets (layer 0 at
// index*2*VRAMOffsetToNextScreen, layer 1 VRAMOffsetToNextScreen after
// it), then writes those offsets into the per-channel layer-address
// registers.
func (s *Screen) AllocateLayers() error {
	l0, err := NewBitmap(s.alloc, s.widthPx, s.heightPx, nil, PoolVRAM)
	if err != nil {
		return &VUIError{Operation: "screen allocate layers", Details: "layer 0 create failed", Err: err}
	}
	l1, err := NewBitmap(s.alloc, s.widthPx, s.heightPx, nil, PoolVRAM)
	if err != nil {
		return &VUIError{Operation: "screen allocate layers", Details: "layer 1 create failed", Err: err}
	}
	base := s.index * VRAMOffsetToNextScreen * 2
	off0 := base
	off1 := base + VRAMOffsetToNextScreen

	buf0 := s.alloc.ReserveVRAMAt(off0, s.widthPx*s.heightPx)
	buf1 := s.alloc.ReserveVRAMAt(off1, s.widthPx*s.heightPx)
	l0.ReassignBuffer(buf0, PoolVRAM)
	l1.ReassignBuffer(buf1, PoolVRAM)

	s.writeLayerAddr(RegBitmapL0Addr, uint32(off0))
	s.writeLayerAddr(RegBitmapL1Addr, uint32(off1))
	s.regs.writeU8(RegBitmapL0Ctrl, 1)
	s.regs.writeU8(RegBitmapL1Ctrl, 1)

	s.layer0, s.layer1 = l0, l1
	if s.diag != nil {
		s.diag.Infof("screen %d: layers at 0x%X/0x%X", s.index, off0, off1)
	}
	return nil
}

// writeLayerAddr writes a VRAM offset into a layer address register as
// the three low/mid/high bytes the hardware contract describes (a
// 32-bit word write is equivalent and is what this model performs).
func (s *Screen) writeLayerAddr(reg int, addr uint32) {
	s.regs.writeU32(reg, addr)
}

// SetCursorEnabled enables/disables the text-mode hardware cursor.
func (s *Screen) SetCursorEnabled(on bool) {
	v := byte(0)
	if on {
		v = 1
	}
	s.regs.writeU8(CursorCtrlOffset, v)
}

func (s *Screen) Width() int  { return s.widthPx }
func (s *Screen) Height() int { return s.heightPx }
func (s *Screen) Cols() int   { return s.cols }
func (s *Screen) Rows() int   { return s.rows }
func (s *Screen) Layer0() *Bitmap { return s.layer0 }
func (s *Screen) Layer1() *Bitmap { return s.layer1 }
