// theme.go - Colors, metrics, control templates, desktop pattern

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

// HAlign and VAlign describe a control's alignment to its parent rect,
// per §4.8.
type HAlign int
type VAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// ControlTemplate is a pure descriptor: no runtime state. Themes own
// templates; Controls are instantiated from them and never mutate them.
type ControlTemplate struct {
	Type ControlType

	HAlign             HAlign
	VAlign             VAlign
	XOffset, YOffset   int
	VAlignV            VAlign

	Width, Height int
	Min, Max      int

	// Art[active][pressed]
	Art [2][2]*Bitmap

	Caption         string
	AvailTextWidth  int
}

// Theme owns every color, metric, font reference, and control template
// the runtime's chrome draws from. A System holds exactly one, shared by
// every Window and Control.
type Theme struct {
	IconFont    *Font
	ControlFont *Font

	LUT [256]uint32 // indexed-color palette, index -> 0xRRGGBB

	OutlineThicknessActive   int
	OutlineThicknessInactive int
	OutlineColorActive       byte
	OutlineColorInactive     byte

	TitlebarHeight   int
	TitlebarColorActive   byte
	TitlebarColorInactive byte

	IconbarHeight int
	IconbarColor  byte

	ContentColor byte

	DesktopColor   byte
	DesktopPattern *Bitmap

	VickyBackgroundColor uint32
	VickyBorderColor     uint32

	StandardFore, StandardBack     byte
	HighlightFore, HighlightBack   byte
	InactiveFore, InactiveBack     byte

	CloseTemplate, MinimizeTemplate, NormSizeTemplate, MaximizeTemplate ControlTemplate
}

// BuildDefaultTheme constructs the runtime's built-in default theme: a
// standard 16-color palette (replicated across the 256-entry indexed
// LUT the way the source's static template table seeds its control
// art), metrics grounded on the original's separate titlebar/iconbar
// heights and active/inactive outline thicknesses, and the four
// standard control templates at a fixed 14x14 size (controlDim),
// independent of either font's metrics.
func BuildDefaultTheme(alloc *Allocator, iconFont, controlFont *Font) (*Theme, error) {
	t := &Theme{
		IconFont:    iconFont,
		ControlFont: controlFont,

		OutlineThicknessActive:   2,
		OutlineThicknessInactive: 1,
		OutlineColorActive:       0,
		OutlineColorInactive:     8,

		TitlebarHeight:        18,
		TitlebarColorActive:   1,
		TitlebarColorInactive: 8,

		IconbarHeight: 16,
		IconbarColor:  7,

		ContentColor: 15,

		DesktopColor: 3,

		VickyBackgroundColor: 0x000000,
		VickyBorderColor:     0x000000,

		StandardFore:  0,
		StandardBack:  15,
		HighlightFore: 15,
		HighlightBack: 4,
		InactiveFore:  8,
		InactiveBack:  7,
	}
	for i, rgb := range standardVGAPalette {
		t.LUT[i] = rgb
	}

	const controlDim = 14
	for i := range t.LUT[16:] {
		t.LUT[16+i] = standardVGAPalette[i%16]
	}

	pattern, err := NewBitmap(alloc, 8, 8, nil, PoolNormal)
	if err != nil {
		return nil, &VUIError{Operation: "build default theme", Details: "desktop pattern alloc failed", Err: err}
	}
	pattern.FillMemory(t.DesktopColor)
	for y := 0; y < 8; y += 2 {
		for x := 0; x < 8; x += 2 {
			pattern.SetPixel(x, y, t.DesktopColor+1)
		}
	}
	t.DesktopPattern = pattern

	mk := func(typ ControlType, xoff int) (ControlTemplate, error) {
		art, err := newStandardControlArt(alloc, controlDim, t)
		if err != nil {
			return ControlTemplate{}, err
		}
		return ControlTemplate{
			Type: typ, HAlign: HAlignLeft, VAlign: VAlignTop,
			XOffset: xoff, YOffset: 2,
			Width: controlDim, Height: controlDim,
			Art: art,
		}, nil
	}
	var err2 error
	if t.CloseTemplate, err2 = mk(ControlClose, 2); err2 != nil {
		return nil, err2
	}
	if t.MaximizeTemplate, err2 = mk(ControlMaximize, 2); err2 != nil {
		return nil, err2
	}
	if t.NormSizeTemplate, err2 = mk(ControlNormSize, 2+controlDim+2); err2 != nil {
		return nil, err2
	}
	if t.MinimizeTemplate, err2 = mk(ControlMinimize, 2+2*(controlDim+2)); err2 != nil {
		return nil, err2
	}
	t.CloseTemplate.HAlign = HAlignLeft
	t.MinimizeTemplate.HAlign, t.NormSizeTemplate.HAlign, t.MaximizeTemplate.HAlign = HAlignRight, HAlignRight, HAlignRight
	return t, nil
}

// newStandardControlArt builds the four active/pressed bitmaps shared by
// every standard window-chrome control (close/minimize/normsize/
// maximize): a flat up-state and an inverted-color pressed state.
func newStandardControlArt(alloc *Allocator, dim int, t *Theme) ([2][2]*Bitmap, error) {
	var art [2][2]*Bitmap
	for active := 0; active < 2; active++ {
		for pressed := 0; pressed < 2; pressed++ {
			b, err := NewBitmap(alloc, dim, dim, nil, PoolNormal)
			if err != nil {
				return art, &VUIError{Operation: "build control art", Details: "alloc failed", Err: err}
			}
			fore, back := t.StandardFore, t.StandardBack
			if active == 0 {
				fore, back = t.InactiveFore, t.InactiveBack
			}
			if pressed == 1 {
				fore, back = back, fore
			}
			b.FillMemory(back)
			b.SetColor(fore)
			b.DrawBox(0, 0, dim, dim, false)
			art[active][pressed] = b
		}
	}
	return art, nil
}
