// system.go - Window fleet, Z-order, active window, render root

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

import "sort"

const (
	SysMaxWindows           = 32
	SysWinZOrderBackdrop    = 0
	SysWinZOrderNewlyActive = SysMaxWindows + 1
)

// MouseMode is System's current input-routing mode: ordinary window
// routing, or menu-open (mouse events go to Menu instead).
type MouseMode int

const (
	MouseModeNormal MouseMode = iota
	MouseModeMenuOpen
)

// System is the process-global root: up to 2 Screens, the active
// Theme, the window fleet in front-to-back order, the active window,
// the EventManager, and the Menu manager.
type System struct {
	platform *Platform
	screens  []*Screen
	theme    *Theme

	systemFont, appFont *Font

	windows    *windowArena
	order      []WindowHandle // front-to-back traversal order
	active     WindowHandle
	pressedWin WindowHandle

	events    *EventManager
	menu      *Menu
	mouseMode MouseMode

	backdrop WindowHandle

	alloc *Allocator
	diag  *Diag
}

// InitSystem performs the full boot sequence from §4.5, in order:
// detect machine, create one Screen per channel, build the default
// Theme, create the Menu manager, allocate both screen bitmap layers
// and register them with VICKY, and create the backdrop window. Any
// failed step is fatal.
func InitSystem(info SystemInfoReader, diag *Diag) (*System, error) {
	alloc := NewAllocator(8*1024*1024, diag)

	platform, err := DetectPlatform(info, diag)
	if err != nil {
		return nil, err
	}
	screens, err := platform.NewScreens(alloc)
	if err != nil {
		return nil, &VUIError{Operation: "system init", Details: "screen setup failed", Err: err}
	}

	sysFont := NewBuiltinFont()
	theme, err := BuildDefaultTheme(alloc, sysFont, sysFont)
	if err != nil {
		return nil, &VUIError{Operation: "system init", Details: "theme build failed", Err: err}
	}

	sys := &System{
		platform: platform, screens: screens, theme: theme,
		systemFont: sysFont, appFont: sysFont,
		windows: newWindowArena(),
		events:  NewEventManager(),
		alloc:   alloc, diag: diag,
	}

	menu, err := NewMenu(alloc, 320, 240, sysFont, theme)
	if err != nil {
		return nil, &VUIError{Operation: "system init", Details: "menu create failed", Err: err}
	}
	sys.menu = menu

	for _, sc := range screens {
		sc.SetChannelKind(ChannelGraphicsOnly)
		if err := sc.AllocateLayers(); err != nil {
			return nil, &VUIError{Operation: "system init", Details: "screen layer allocation failed", Err: err}
		}
	}

	backdropScreen := screens[len(screens)-1]
	onScreen := backdropScreen.Layer0()
	offscreen := backdropScreen.Layer1()
	backdrop := NewWindow(WindowTemplate{
		Title: "", Type: WindowBackdrop,
		X: 0, Y: 0, W: backdropScreen.Width(), H: backdropScreen.Height(),
		MinW: backdropScreen.Width(), MinH: backdropScreen.Height(),
		MaxW: backdropScreen.Width(), MaxH: backdropScreen.Height(),
		CanResize: false,
		OnScreen:  onScreen, Offscreen: offscreen,
		Theme: theme,
	})
	backdrop.pattern = theme.DesktopPattern
	backdrop.visible = true
	backdrop.displayOrder = SysWinZOrderBackdrop
	h := sys.windows.insert(backdrop)
	backdrop.self = h
	sys.backdrop = h
	sys.order = append(sys.order, h)

	if diag != nil {
		diag.Infof("system init complete: %s, %d screen(s)", platform.Machine, len(screens))
	}
	return sys, nil
}

func (s *System) Theme() *Theme         { return s.theme }
func (s *System) Screens() []*Screen    { return s.screens }
func (s *System) Events() *EventManager { return s.events }
func (s *System) Allocator() *Allocator { return s.alloc }

// OpenMenu lays out group at (x,y) on the first screen and switches mouse
// routing to MouseModeMenuOpen: subsequent mouse events go to the menu
// instead of window hit-testing until it is dismissed by a click.
func (s *System) OpenMenu(group *MenuGroup, x, y int) {
	sw, sh := 0, 0
	if len(s.screens) > 0 {
		sw, sh = s.screens[0].Width(), s.screens[0].Height()
	}
	s.menu.Open(group, x, y, sw, sh)
	s.mouseMode = MouseModeMenuOpen
}

// Window resolves a handle to its Window, or nil if it no longer
// refers to a live window.
func (s *System) Window(h WindowHandle) *Window { return s.windows.resolve(h) }

// AddWindow inserts w as the new front window: refuses once
// SysMaxWindows is reached, assigns it display order SysMaxWindows,
// renumbers the rest, then makes it active.
func (s *System) AddWindow(w *Window) (WindowHandle, bool) {
	if len(s.order) >= SysMaxWindows {
		return WindowHandle{}, false
	}
	h := s.windows.insert(w)
	w.self = h
	s.order = append([]WindowHandle{h}, s.order...)
	w.displayOrder = SysMaxWindows
	s.renumber()
	s.SetActiveWindow(h)
	return h, true
}

// renumber assigns display order n..1, where n is the number of
// non-backdrop windows, to those windows in current list order (front highest, back lowest); the
// backdrop always keeps SysWinZOrderBackdrop.
func (s *System) renumber() {
	n := 0
	for _, h := range s.order {
		if h == s.backdrop {
			continue
		}
		n++
	}
	next := n
	for _, h := range s.order {
		w := s.windows.resolve(h)
		if w == nil || h == s.backdrop {
			continue
		}
		w.displayOrder = next
		next--
	}
	if w := s.windows.resolve(s.backdrop); w != nil {
		w.displayOrder = SysWinZOrderBackdrop
	}
}

// RemoveWindow destroys w's resources, removes pending events
// referencing it, generates damage rects from its former global rect
// and distributes them, and activates the next window if it was active.
func (s *System) RemoveWindow(h WindowHandle) {
	w := s.windows.resolve(h)
	if w == nil {
		return
	}
	wasActive := h == s.active
	rect := w.globalRect()

	s.events.RemoveEventsForWindow(h)

	for i, oh := range s.order {
		if oh == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.windows.remove(h)
	if !w.isBackdrop {
		// The backdrop's bitmaps are the screen's layers; keep those.
		for _, b := range []*Bitmap{w.onScreen, w.offscreen} {
			if b != nil {
				b.Destroy()
			}
		}
	}

	for _, oh := range s.order {
		if ow := s.windows.resolve(oh); ow != nil {
			ow.AcceptDamageRect(rect)
		}
	}

	if wasActive && len(s.order) > 0 {
		s.SetActiveWindow(s.order[0])
	}
}

// SetActiveWindow marks the previous active window inactive, collects
// damage rects for the newly active window from every window that was
// occluding it (greater display order), marks it active, and — unless
// it's the backdrop — bumps it to SysWinZOrderNewlyActive, re-sorts by
// display order, and renumbers. Forces a render pass by invalidating
// the newly active window.
func (s *System) SetActiveWindow(h WindowHandle) {
	newWin := s.windows.resolve(h)
	if newWin == nil {
		return
	}
	if old := s.windows.resolve(s.active); old != nil {
		old.active = false
		old.invalidated = true
	}

	for _, oh := range s.order {
		ow := s.windows.resolve(oh)
		if ow == nil || oh == h {
			continue
		}
		if ow.displayOrder > newWin.displayOrder {
			newWin.AcceptDamageRect(ow.globalRect())
		}
	}

	newWin.active = true
	s.active = h

	if !newWin.isBackdrop {
		newWin.displayOrder = SysWinZOrderNewlyActive
		sort.SliceStable(s.order, func(i, j int) bool {
			wi := s.windows.resolve(s.order[i])
			wj := s.windows.resolve(s.order[j])
			if wi == nil || wj == nil {
				return false
			}
			return wi.displayOrder > wj.displayOrder
		})
		s.renumber()
	}
	newWin.invalidated = true
}

// Render walks the window list back-to-front, delegating to
// Window.Render for each visible window.
func (s *System) Render() {
	for i := len(s.order) - 1; i >= 0; i-- {
		w := s.windows.resolve(s.order[i])
		if w != nil {
			w.Render(s.theme)
		}
	}
}

// hitTestWindow returns the frontmost window containing global (x,y).
func (s *System) hitTestWindow(x, y int) WindowHandle {
	for _, h := range s.order {
		w := s.windows.resolve(h)
		if w != nil && w.visible && w.globalRect().Contains(x, y) {
			return h
		}
	}
	return WindowHandle{}
}

// normalize implements the EventManager normalization table from §4.6,
// turning one raw event into the sequence of events that must actually
// be delivered (e.g. a mouseDown on an inactive window becomes
// inactivate, activate, mouseDown again). Per §2/§4.9, while the system
// mouse mode is mouseMenuOpen the menu intercepts mouse routing instead
// of ordinary window hit-testing.
func (s *System) normalize(ev EventRecord) []EventRecord {
	if s.mouseMode == MouseModeMenuOpen {
		if seq, handled := s.normalizeMenuMouse(ev); handled {
			return seq
		}
	}
	switch ev.What {
	case MouseDown:
		h := s.hitTestWindow(ev.X, ev.Y)
		w := s.windows.resolve(h)
		if w == nil {
			return nil
		}
		if h != s.active {
			old := s.active
			seq := []EventRecord{}
			if oldWin := s.windows.resolve(old); oldWin != nil {
				seq = append(seq, EventRecord{What: InactivateEvt, Window: old})
			}
			seq = append(seq, EventRecord{What: ActivateEvt, Window: h})
			ev.Window = h
			seq = append(seq, ev)
			return seq
		}
		lx, ly := w.GlobalToLocal(ev.X, ev.Y)
		if c := w.controlAt(lx, ly); c != nil {
			c.SetPressed(true)
			s.pressedWin = h
			ev.Control = findHandle(w, c)
		}
		ev.Window = h
		return []EventRecord{ev}

	case MouseUp:
		h := s.hitTestWindow(ev.X, ev.Y)
		w := s.windows.resolve(h)
		out := []EventRecord{}
		if w != nil {
			lx, ly := w.GlobalToLocal(ev.X, ev.Y)
			c := w.controlAt(lx, ly)
			if c != nil && c.Pressed() {
				out = append(out, EventRecord{What: ControlClicked, Window: h, Control: findHandle(w, c)})
			}
		}
		// Cleared on every mouseUp, even one released outside any window.
		for _, wh := range []WindowHandle{h, s.active, s.pressedWin} {
			if cw := s.windows.resolve(wh); cw != nil {
				cw.selectedCtrl = ControlHandle{}
				for _, hh := range cw.controlOrder {
					if cc := cw.controls.resolve(hh); cc != nil {
						cc.SetPressed(false)
					}
				}
			}
		}
		ev.Window = h
		out = append(out, ev)
		return out

	case KeyDown, KeyUp, AutoKey, DiskEvt:
		ev.Window = s.active
		return []EventRecord{ev}

	case UpdateEvt, ActivateEvt, InactivateEvt, ControlClicked:
		return []EventRecord{ev}

	case MouseMoved:
		ev.Window = s.hitTestWindow(ev.X, ev.Y)
		return []EventRecord{ev}

	default:
		return []EventRecord{ev}
	}
}

// normalizeMenuMouse handles the three mouse event kinds while the menu
// is open, pre-empting ordinary window routing. handled is false for
// every other event kind, letting normalize fall through to its regular
// table.
func (s *System) normalizeMenuMouse(ev EventRecord) (seq []EventRecord, handled bool) {
	switch ev.What {
	case MouseMoved:
		s.menu.HandleMouseMove(ev.X-s.menu.x, ev.Y-s.menu.y)
		return nil, true

	case MouseDown:
		// Selection resolves on mouseUp; swallow mouseDown so it neither
		// hit-tests a window nor presses one of its controls.
		return nil, true

	case MouseUp:
		id, covered := s.menu.HandleClick(ev.X-s.menu.x, ev.Y-s.menu.y)
		s.mouseMode = MouseModeNormal
		for _, oh := range s.order {
			if ow := s.windows.resolve(oh); ow != nil {
				ow.AcceptDamageRect(covered)
			}
		}
		if id == MenuIDNoSelection {
			return nil, true
		}
		return []EventRecord{{What: ControlClicked, Window: s.active, Code: id}}, true

	default:
		return nil, false
	}
}

func findHandle(w *Window, c *Control) ControlHandle {
	for _, h := range w.controlOrder {
		if w.controls.resolve(h) == c {
			return h
		}
	}
	return ControlHandle{}
}

// dispatch applies system-level side effects for a normalized event
// (activation swaps) and then delivers it to the referenced window's
// handler.
func (s *System) dispatch(ev EventRecord) {
	switch ev.What {
	case ActivateEvt:
		s.SetActiveWindow(ev.Window)
	case InactivateEvt:
		if w := s.windows.resolve(ev.Window); w != nil {
			w.active = false
			w.invalidated = true
		}
	}
	if w := s.windows.resolve(ev.Window); w != nil {
		w.Dispatch(ev)
	}
}

// WaitForEvent loops consuming events (applying normalization/dispatch
// to each) until one matches mask.
func (s *System) WaitForEvent(mask EventMask) EventRecord {
	return s.events.WaitForEvent(s, mask)
}

// PumpEvents normalizes and dispatches every event currently queued,
// without blocking. Presentation backends that already own their own
// per-frame callback (ebiten's Update, for instance) drive the runtime
// this way instead of calling the blocking WaitForEvent.
func (s *System) PumpEvents() {
	s.events.DrainEvents(s)
}
