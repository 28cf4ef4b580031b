// menu.go - Transient dropdown/submenu overlay

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

// MenuIDNoSelection is returned by click handling when no item was hit.
const MenuIDNoSelection = -1

const (
	menuRowHeight    = 16
	menuPaddingX     = 8
	menuShortcutGap  = 24
)

// MenuItemType distinguishes a plain selectable item from a submenu
// launcher or a non-selectable divider.
type MenuItemType int

const (
	MenuItemEntry MenuItemType = iota
	MenuItemSubmenu
	MenuItemDivider
)

// MenuItem is one row within a MenuGroup.
type MenuItem struct {
	ID       int
	Caption  string
	Shortcut string
	Type     MenuItemType
	Submenu  *MenuGroup

	selRect Rectangle // local, computed by open()
}

// MenuGroup is a titled collection of MenuItems (the top-level menu bar
// entry, or a submenu opened from one of its items).
type MenuGroup struct {
	Title string
	Items []MenuItem
}

// Menu is the transient overlay that renders whichever MenuGroup is
// currently open. A System owns exactly one.
type Menu struct {
	bitmap *Bitmap
	font   *Font
	theme  *Theme

	group *MenuGroup

	x, y int
	rect Rectangle // global

	clipRects [WinMaxClipRects]Rectangle
	numClip   int

	visible   bool
	highlight int // index into group.Items, or -1
}

// NewMenu allocates the menu's offscreen bitmap at the given maximum
// size.
func NewMenu(alloc *Allocator, maxW, maxH int, font *Font, theme *Theme) (*Menu, error) {
	b, err := NewBitmap(alloc, maxW, maxH, font, PoolNormal)
	if err != nil {
		return nil, &VUIError{Operation: "menu create", Details: "bitmap alloc failed", Err: err}
	}
	return &Menu{bitmap: b, font: font, theme: theme, highlight: -1}, nil
}

// Open lays out group at (x,y): measures every non-divider caption to
// find the widest, computes inner width/height, draws every item
// (captions, submenu arrows, divider rules), records each item's
// selection rect, and clamps position on-screen. It does not change the
// system mouse mode; that is System-owned state, switched to
// mouseMenuOpen by the caller.
func (m *Menu) Open(group *MenuGroup, x, y, screenW, screenH int) {
	m.group = group
	m.highlight = -1
	m.visible = true

	maxText := 0
	for _, it := range group.Items {
		if it.Type == MenuItemDivider {
			continue
		}
		_, px := m.font.MeasureString(it.Caption, MeasureStringNoLimit, 1<<20)
		if px > maxText {
			maxText = px
		}
	}
	innerWidth := maxText + menuShortcutGap + 2*menuPaddingX
	innerHeight := len(group.Items) * menuRowHeight

	if x+innerWidth > screenW {
		x = screenW - innerWidth
	}
	if y+innerHeight > screenH {
		y = screenH - innerHeight
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	m.x, m.y = x, y
	m.rect = NewRect(x, y, x+innerWidth-1, y+innerHeight-1)

	m.bitmap.FillBox(0, 0, innerWidth, innerHeight, m.theme.StandardBack)
	for i := range group.Items {
		it := &group.Items[i]
		rowY := i * menuRowHeight
		it.selRect = NewRect(0, rowY, innerWidth-1, rowY+menuRowHeight-1)
		m.drawItem(i, false)
	}
}

func (m *Menu) drawItem(idx int, highlighted bool) {
	it := &m.group.Items[idx]
	fore, back := m.theme.StandardFore, m.theme.StandardBack
	if highlighted {
		fore, back = m.theme.HighlightFore, m.theme.HighlightBack
	}
	r := it.selRect
	m.bitmap.FillBox(r.MinX, r.MinY, r.Width(), r.Height(), back)

	if it.Type == MenuItemDivider {
		m.bitmap.SetColor(fore)
		m.bitmap.DrawHLine(r.MinX+menuPaddingX/2, r.MinY+r.Height()/2, r.Width()-menuPaddingX)
		return
	}
	m.bitmap.SetFont(m.font)
	m.bitmap.SetColor(fore)
	m.bitmap.SetPenXY(r.MinX+menuPaddingX, r.MinY+2)
	m.font.DrawString(m.bitmap, it.Caption, MeasureStringNoLimit)

	if it.Type == MenuItemSubmenu {
		m.bitmap.SetPenXY(r.MaxX-menuPaddingX-6, r.MinY+2)
		m.font.DrawGlyph(m.bitmap, '>')
	}
}

// HandleMouseMove hit-tests every item's selection rect; if the
// highlighted item changes, redraws the previous item in normal colors
// and the new one in highlight colors, pushing both rects into the
// menu's clip list.
func (m *Menu) HandleMouseMove(localX, localY int) {
	if m.group == nil {
		return
	}
	hit := -1
	for i := range m.group.Items {
		if m.group.Items[i].Type != MenuItemDivider && m.group.Items[i].selRect.Contains(localX, localY) {
			hit = i
			break
		}
	}
	if hit == m.highlight {
		return
	}
	if m.highlight >= 0 {
		m.drawItem(m.highlight, false)
		m.pushClip(m.group.Items[m.highlight].selRect)
	}
	if hit >= 0 {
		m.drawItem(hit, true)
		m.pushClip(m.group.Items[hit].selRect)
	}
	m.highlight = hit
}

func (m *Menu) pushClip(r Rectangle) {
	if m.numClip < WinMaxClipRects {
		m.clipRects[m.numClip] = r
		m.numClip++
	}
}

// HandleClick hit-tests (localX,localY), returns the clicked item's id
// (or MenuIDNoSelection), hides the menu, and returns the menu's global
// rect so the caller (System) can issue damage rects to every window
// covering the region the menu occupied.
func (m *Menu) HandleClick(localX, localY int) (id int, coveredRect Rectangle) {
	result := MenuIDNoSelection
	if m.group != nil {
		for i := range m.group.Items {
			it := &m.group.Items[i]
			if it.Type != MenuItemDivider && it.selRect.Contains(localX, localY) {
				result = it.ID
				break
			}
		}
	}
	covered := m.rect
	m.visible = false
	m.highlight = -1
	return result, covered
}

func (m *Menu) Visible() bool { return m.visible }
func (m *Menu) Show()         { m.visible = true }
