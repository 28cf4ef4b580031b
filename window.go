// window.go - Composed region: titlebar, content, controls, clip/damage rects

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

const (
	WinMaxClipRects         = 10
	WinMaxDamageRects       = 4
	WinDefaultDragZoneSize  = 4
	WinMaxMenuLevels        = 4
)

// WindowType distinguishes the backdrop window (always lowest Z-order,
// covers the whole screen) from ordinary standard/dialog windows.
type WindowType int

const (
	WindowStandard WindowType = iota
	WindowBackdrop
	WindowDialog
)

// WindowState is the window's visibility/size state.
type WindowState int

const (
	WindowHidden WindowState = iota
	WindowMinimized
	WindowNormal
	WindowMaximized
)

// DragZone is the result of a drag-zone hit test against a window-local
// point.
type DragZone int

const (
	DragNone DragZone = iota
	DragResizeE
	DragResizeW
	DragResizeN
	DragResizeS
	DragResizeSE
	DragMove
)

// EventHandler is the application-supplied callback a Window dispatches
// its routed events to.
type EventHandler func(w *Window, ev EventRecord)

// WindowTemplate is the populated-template argument to NewWindow: title,
// type, geometry, and the pre-allocated bitmaps a caller must supply.
type WindowTemplate struct {
	Title string
	Type  WindowType

	X, Y, W, H         int
	MinW, MinH         int
	MaxW, MaxH         int
	CanResize          bool

	OnScreen, Offscreen *Bitmap // pre-allocated by the caller
	Handler             EventHandler

	Theme *Theme
}

// Window is a composed region with a titlebar, content area, a linked
// set of Controls, and the clip/damage rect bookkeeping the compositor
// uses to blit only what changed.
type Window struct {
	title string
	typ   WindowType
	state WindowState

	onScreen, offscreen *Bitmap

	x, y, w, h                 int
	normX, normY, normW, normH int
	minW, minH, maxW, maxH     int
	canResize                  bool

	overallRect, titlebarRect, iconbarRect, contentRect Rectangle
	dragE, dragW, dragN, dragS, dragSE                  Rectangle

	controls       *controlArena
	controlOrder   []ControlHandle
	selectedCtrl   ControlHandle

	pattern *Bitmap

	handler EventHandler

	menuLevels [WinMaxMenuLevels]*Menu

	clipRects   [WinMaxClipRects]Rectangle
	numClip     int
	damageRects [WinMaxDamageRects]Rectangle
	numDamage   int

	displayOrder int

	active, visible, invalidated, titlebarInvalidated bool
	isBackdrop, resizable                             bool

	userData uint32

	theme *Theme
	self  WindowHandle // filled in by System.AddWindow
}

// NewWindow builds a Window from tmpl: clamps to min/max (locking
// min=max=current when CanResize is false), derives sub-rects, and
// instantiates the four standard chrome controls from theme. Starts
// invisible.
func NewWindow(tmpl WindowTemplate) *Window {
	w := &Window{
		title: tmpl.Title, typ: tmpl.Type,
		onScreen: tmpl.OnScreen, offscreen: tmpl.Offscreen,
		x: tmpl.X, y: tmpl.Y, w: tmpl.W, h: tmpl.H,
		normX: tmpl.X, normY: tmpl.Y, normW: tmpl.W, normH: tmpl.H,
		minW: tmpl.MinW, minH: tmpl.MinH, maxW: tmpl.MaxW, maxH: tmpl.MaxH,
		canResize: tmpl.CanResize,
		handler:   tmpl.Handler,
		theme:     tmpl.Theme,
		controls:  newControlArena(),
		isBackdrop: tmpl.Type == WindowBackdrop,
		resizable:  tmpl.CanResize,
		state:      WindowNormal,
	}
	if !w.canResize {
		w.minW, w.maxW = w.w, w.w
		w.minH, w.maxH = w.h, w.h
	}
	w.clampToLimits()
	w.deriveSubRects()
	if tmpl.Theme != nil && w.typ != WindowBackdrop {
		w.instantiateStandardControls(tmpl.Theme)
	}
	w.invalidated = true
	return w
}

func (w *Window) clampToLimits() {
	w.w = clampInt(w.w, w.minW, max(w.maxW, w.minW))
	w.h = clampInt(w.h, w.minH, max(w.maxH, w.minH))
}

// deriveSubRects computes overall/titlebar/content/drag-zone rects from
// the window's current w/h. overall_rect always equals
// (0,0,width-1,height-1) in window-local space.
func (w *Window) deriveSubRects() {
	w.overallRect = NewRect(0, 0, w.w-1, w.h-1)

	titlebarH := 0
	if w.theme != nil && !w.isBackdrop {
		titlebarH = w.theme.TitlebarHeight
	}
	w.titlebarRect = NewRect(1, 1, w.w-2, max(1, titlebarH-1))
	contentTop := titlebarH + 1
	if titlebarH == 0 {
		contentTop = 1
	}
	w.contentRect = NewRect(1, contentTop, w.w-2, w.h-2)

	z := WinDefaultDragZoneSize
	w.dragN = NewRect(0, 0, w.w-1, z-1)
	w.dragS = NewRect(0, w.h-z, w.w-1, w.h-1)
	w.dragW = NewRect(0, 0, z-1, w.h-1)
	w.dragE = NewRect(w.w-z, 0, w.w-1, w.h-1)
	w.dragSE = NewRect(w.w-z, w.h-z, w.w-1, w.h-1)

	for _, h := range w.controlOrder {
		if c := w.controls.resolve(h); c != nil {
			parent := w.titlebarRect
			if c.typ != ControlClose && c.typ != ControlMinimize &&
				c.typ != ControlNormSize && c.typ != ControlMaximize {
				parent = w.contentRect
			}
			c.AlignToWindow(parent)
		}
	}
}

func (w *Window) instantiateStandardControls(theme *Theme) {
	add := func(id uint16, tmpl *ControlTemplate) {
		c := NewControlFromTemplate(id, tmpl)
		c.AlignToWindow(w.titlebarRect)
		h := w.controls.insert(c)
		w.controlOrder = append(w.controlOrder, h)
	}
	add(1, &theme.CloseTemplate)
	add(2, &theme.MinimizeTemplate)
	add(3, &theme.NormSizeTemplate)
	add(4, &theme.MaximizeTemplate)
}

// ControlByID returns the control with the given id, or
// ControlIDNotFound-equivalent nil.
func (w *Window) ControlByID(id uint16) *Control {
	for _, h := range w.controlOrder {
		if c := w.controls.resolve(h); c != nil && c.id == id {
			return c
		}
	}
	return nil
}

// controlAt returns the visible control containing window-local (x,y);
// where controls overlap, the first inserted wins.
func (w *Window) controlAt(x, y int) *Control {
	for i := 0; i < len(w.controlOrder); i++ {
		c := w.controls.resolve(w.controlOrder[i])
		if c != nil && c.visible && c.rect.Contains(x, y) {
			return c
		}
	}
	return nil
}

// GlobalToLocal converts a global-coordinate point to window-local
// coordinates.
func (w *Window) GlobalToLocal(x, y int) (int, int) { return x - w.x, y - w.y }

// LocalToGlobal converts a window-local point to global coordinates.
func (w *Window) LocalToGlobal(x, y int) (int, int) { return x + w.x, y + w.y }

// HitTestDragZone classifies a window-local point into one of the named
// drag zones, corner taking priority over edge.
func (w *Window) HitTestDragZone(x, y int) DragZone {
	switch {
	case w.dragSE.Contains(x, y):
		return DragResizeSE
	case w.dragE.Contains(x, y):
		return DragResizeE
	case w.dragW.Contains(x, y):
		return DragResizeW
	case w.dragN.Contains(x, y):
		return DragResizeN
	case w.dragS.Contains(x, y):
		return DragResizeS
	case w.titlebarRect.Contains(x, y):
		return DragMove
	default:
		return DragNone
	}
}

// AddClipRect appends a local-coordinate dirty rect. Fails silently (per
// spec) past WinMaxClipRects; callers are expected to then invalidate
// the whole window.
func (w *Window) AddClipRect(r Rectangle) bool {
	if w.numClip >= WinMaxClipRects {
		return false
	}
	w.clipRects[w.numClip] = r
	w.numClip++
	w.mergeClipRects()
	return true
}

// mergeClipRects deduplicates and merges overlapping clip rects in
// place. Strategy (implementation discretion per spec): replace any pair
// that overlaps or touches (adjacent within one pixel) with its
// bounding union, repeated to a fixed point; the union's area is not
// compared against the pair's.
func (w *Window) mergeClipRects() {
	merged := true
	for merged {
		merged = false
		for i := 0; i < w.numClip; i++ {
			for j := i + 1; j < w.numClip; j++ {
				a, b := w.clipRects[i], w.clipRects[j]
				if a.Overlaps(b) || adjacent(a, b) {
					union := NewRect(min(a.MinX, b.MinX), min(a.MinY, b.MinY), max(a.MaxX, b.MaxX), max(a.MaxY, b.MaxY))
					w.clipRects[i] = union
					w.clipRects[j] = w.clipRects[w.numClip-1]
					w.numClip--
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
	}
}

func adjacent(a, b Rectangle) bool {
	return a.Inset(-1).Overlaps(b)
}

// AcceptDamageRect translates a global-coordinate damage rect to
// window-local, clips it to the window's own overall rect, and (if any
// pixels remain) adds the intersection as a clip rect. Non-intersecting
// damage rects are silently rejected.
func (w *Window) AcceptDamageRect(global Rectangle) {
	lx0, ly0 := w.GlobalToLocal(global.MinX, global.MinY)
	lx1, ly1 := w.GlobalToLocal(global.MaxX, global.MaxY)
	local := NewRect(lx0, ly0, lx1, ly1)
	clipped, ok := local.Intersect(w.overallRect)
	if !ok {
		return
	}
	if !w.AddClipRect(clipped) {
		w.invalidated = true
	}
}

// globalRect returns the window's current occupied rectangle in global
// coordinates (used by System to compute damage rects on move/resize).
func (w *Window) globalRect() Rectangle {
	return NewRect(w.x, w.y, w.x+w.w-1, w.y+w.h-1)
}

// Maximize saves the current geometry as "normal" and resizes to the
// given screen size.
func (w *Window) Maximize(screenW, screenH int) {
	if w.state != WindowMaximized {
		w.normX, w.normY, w.normW, w.normH = w.x, w.y, w.w, w.h
	}
	w.ChangeWindow(0, 0, screenW, screenH, false)
	w.state = WindowMaximized
}

// NormSize restores the saved normal geometry.
func (w *Window) NormSize() {
	w.ChangeWindow(w.normX, w.normY, w.normW, w.normH, false)
	w.state = WindowNormal
}

// Minimize hides the window without altering its geometry.
func (w *Window) Minimize() {
	w.visible = false
	w.state = WindowMinimized
}

// ChangeWindow re-validates (x,y,w,h) against min/max, repositions, and
// re-aligns controls. If updateNorm, the new geometry also becomes the
// saved "normal" geometry.
func (w *Window) ChangeWindow(x, y, width, height int, updateNorm bool) {
	w.x, w.y = x, y
	w.w = clampInt(width, w.minW, max(w.maxW, w.minW))
	w.h = clampInt(height, w.minH, max(w.maxH, w.minH))
	w.deriveSubRects()
	w.invalidated = true
	if updateNorm {
		w.normX, w.normY, w.normW, w.normH = w.x, w.y, w.w, w.h
	}
}

// Render is called back-to-front by System. If invalidated, the whole
// window redraws and blits in full; otherwise only accumulated clip
// rects are blitted.
func (w *Window) Render(theme *Theme) {
	if !w.visible {
		return
	}
	if w.invalidated {
		w.redrawAll(theme)
		Blit(w.offscreen, 0, 0, w.onScreen, 0, 0, w.w, w.h)
		w.numClip = 0
		w.invalidated = false
		w.titlebarInvalidated = false
		return
	}
	for i := 0; i < w.numClip; i++ {
		r := w.clipRects[i]
		Blit(w.offscreen, r.MinX, r.MinY, w.onScreen, r.MinX, r.MinY, r.Width(), r.Height())
	}
	w.numClip = 0
}

func (w *Window) redrawAll(theme *Theme) {
	b := w.offscreen
	if w.pattern != nil {
		Tile(w.pattern, 0, 0, b, w.pattern.Width(), w.pattern.Height())
	} else {
		fill := theme.ContentColor
		b.FillMemory(fill)
	}
	if !w.isBackdrop {
		titleColor := theme.TitlebarColorInactive
		outlineColor := theme.OutlineColorInactive
		thickness := theme.OutlineThicknessInactive
		if w.active {
			titleColor = theme.TitlebarColorActive
			outlineColor = theme.OutlineColorActive
			thickness = theme.OutlineThicknessActive
		}
		b.FillBox(w.titlebarRect.MinX, w.titlebarRect.MinY, w.titlebarRect.Width(), w.titlebarRect.Height(), titleColor)
		b.FillBox(w.contentRect.MinX, w.contentRect.MinY, w.contentRect.Width(), w.contentRect.Height(), theme.ContentColor)
		b.SetColor(outlineColor)
		for t := 0; t < thickness; t++ {
			b.DrawBox(t, t, w.w-2*t, w.h-2*t, false)
		}
		if theme.ControlFont != nil && w.title != "" {
			avail := w.titlebarRect.Width() - 4
			count, _ := theme.ControlFont.MeasureString(w.title, MeasureStringNoLimit, avail)
			b.SetFont(theme.ControlFont)
			b.SetColor(theme.StandardFore)
			b.SetPenXY(w.titlebarRect.MinX+2, w.titlebarRect.MinY+2)
			theme.ControlFont.DrawString(b, w.title[:count], count)
		}
	}
	for _, h := range w.controlOrder {
		if c := w.controls.resolve(h); c != nil {
			c.Render(theme, b)
		}
	}
}

// Dispatch delivers ev to the window's application-supplied handler, if
// any.
func (w *Window) Dispatch(ev EventRecord) {
	if w.handler != nil {
		w.handler(w, ev)
	}
}

func (w *Window) Active() bool  { return w.active }
func (w *Window) Visible() bool { return w.visible }

// SetVisible shows or hides the window outright (distinct from
// Minimize, which also records WindowMinimized state).
func (w *Window) SetVisible(v bool) {
	w.visible = v
	w.invalidated = true
}
func (w *Window) DisplayOrder() int { return w.displayOrder }
func (w *Window) IsBackdrop() bool  { return w.isBackdrop }
func (w *Window) Title() string     { return w.title }
func (w *Window) State() WindowState { return w.state }
