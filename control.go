// control.go - Button/widget instance bound to a window rect

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

// ControlType enumerates the kinds of control this runtime supports.
type ControlType int

const (
	ControlClose ControlType = iota
	ControlMinimize
	ControlNormSize
	ControlMaximize
	ControlButton
	ControlCheckbox
	ControlRadio
	ControlLabel
	ControlScroller
	ControlTextField
	ControlCustom
)

// Control is a widget instance bound to a parent Window and one of its
// sub-rects (titlebar or content). A Control never owns its art: the
// four state bitmaps are borrowed from the Theme's template.
type Control struct {
	id      uint16
	groupID uint16

	typ ControlType

	tmpl *ControlTemplate

	rect Rectangle // window-local; valid only after AlignToWindow

	width, height  int
	min, max, value int

	caption string

	active, pressed, visible, enabled bool

	userData uint32
}

// NewControlFromTemplate instantiates a Control bound to tmpl. Controls
// are never constructed with their own art: tmpl.Art is shared for the
// control's lifetime.
func NewControlFromTemplate(id uint16, tmpl *ControlTemplate) *Control {
	return &Control{
		id: id, typ: tmpl.Type, tmpl: tmpl,
		width: tmpl.Width, height: tmpl.Height,
		caption: tmpl.Caption,
		visible: true, enabled: true,
	}
}

// AlignToWindow recomputes rect from the control's template alignment
// against parent (the titlebar or content rect), per §4.8. Must be
// called on every window size change.
func (c *Control) AlignToWindow(parent Rectangle) {
	pw, ph := parent.Width(), parent.Height()
	var x0, y0 int

	switch c.tmpl.HAlign {
	case HAlignLeft:
		x0 = parent.MinX + c.tmpl.XOffset
	case HAlignRight:
		x0 = parent.MaxX - c.tmpl.XOffset - c.width + 1
	case HAlignCenter:
		x0 = parent.MinX + (pw-c.width)/2
	}
	switch c.tmpl.VAlign {
	case VAlignTop:
		y0 = parent.MinY + c.tmpl.YOffset
	case VAlignBottom:
		y0 = parent.MaxY - c.tmpl.YOffset - c.height + 1
	case VAlignCenter:
		y0 = parent.MinY + (ph-c.height)/2
	}
	c.rect = NewRect(x0, y0, x0+c.width-1, y0+c.height-1)
}

// Rect returns the control's current window-local rectangle.
func (c *Control) Rect() Rectangle { return c.rect }

func (c *Control) ID() uint16        { return c.id }
func (c *Control) Visible() bool     { return c.visible }
func (c *Control) SetVisible(v bool) { c.visible = v }

// SetActive/SetPressed set flags only; the window's next render pass
// picks up the change when the window is invalidated. No redraw is
// triggered here.
func (c *Control) SetActive(v bool)  { c.active = v }
func (c *Control) SetPressed(v bool) { c.pressed = v }
func (c *Control) Pressed() bool     { return c.pressed }

// IsRighter compares the control's right edge against *xMax, updating
// it if the control extends further right.
func (c *Control) IsRighter(xMax *int) bool {
	if c.rect.MaxX > *xMax {
		*xMax = c.rect.MaxX
		return true
	}
	return false
}

// IsLefter compares the control's left edge against *xMin, updating it
// if the control extends further left.
func (c *Control) IsLefter(xMin *int) bool {
	if c.rect.MinX < *xMin {
		*xMin = c.rect.MinX
		return true
	}
	return false
}

// Render blits the control's current state bitmap into the parent
// window's bitmap and draws its caption, if any. Invisible controls
// produce no output.
func (c *Control) Render(theme *Theme, winBitmap *Bitmap) {
	if !c.visible {
		return
	}
	activeIdx, pressedIdx := 0, 0
	if c.active {
		activeIdx = 1
	}
	if c.pressed {
		pressedIdx = 1
	}
	art := c.tmpl.Art[activeIdx][pressedIdx]
	if art != nil {
		Blit(art, 0, 0, winBitmap, c.rect.MinX, c.rect.MinY, c.rect.Width(), c.rect.Height())
	}
	if c.caption == "" || theme.ControlFont == nil {
		return
	}
	avail := c.tmpl.AvailTextWidth
	count, measured := theme.ControlFont.MeasureString(c.caption, MeasureStringNoLimit, avail)
	hOff := (avail - measured) / 2
	penX := c.rect.MinX + (c.width-avail)/2 + hOff
	penY := c.rect.MinY + (c.height+int(theme.ControlFont.hdr.Descent))/2 - 1

	fore := theme.StandardFore
	switch {
	case c.active && c.pressed:
		fore = theme.StandardBack
	case c.active:
		fore = theme.StandardFore
	case !c.active && c.pressed:
		fore = theme.HighlightFore
	default:
		fore = theme.InactiveFore
	}
	winBitmap.SetColor(fore)
	winBitmap.SetPenXY(penX, penY)
	winBitmap.SetFont(theme.ControlFont)
	theme.ControlFont.DrawString(winBitmap, c.caption[:count], count)
}
