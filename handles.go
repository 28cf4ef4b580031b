// handles.go - Generation-checked handles for Windows and Controls

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

// WindowHandle and ControlHandle replace raw back-pointers between
// EventRecord/Control and their owning Window: event records and
// control group lookups hold a handle, not a *Window, so a destroyed
// window's slot can be reused without any lingering pointer aliasing a
// freed object (spec §9 Design Notes). A zero-value handle is invalid.
type WindowHandle struct {
	index int
	gen   uint32
}

// ControlHandle identifies a Control within its owning window's arena.
type ControlHandle struct {
	index int
	gen   uint32
}

// Valid reports whether the handle was ever issued (does not imply the
// object it named is still alive — use System.Window/Window.Control to
// resolve and check for that).
func (h WindowHandle) Valid() bool  { return h.gen != 0 }
func (h ControlHandle) Valid() bool { return h.gen != 0 }

// windowSlot is one entry in System's window arena.
type windowSlot struct {
	win *Window // nil when the slot is free
	gen uint32
}

// windowArena is an index-reuse arena: freed slots are recycled, and a
// handle's generation counter is bumped on free so stale handles resolve
// to nothing instead of a reused slot's new occupant.
type windowArena struct {
	slots []windowSlot
	free  []int
}

func newWindowArena() *windowArena { return &windowArena{} }

func (a *windowArena) insert(w *Window) WindowHandle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].win = w
		if a.slots[idx].gen == 0 {
			a.slots[idx].gen = 1
		}
		return WindowHandle{index: idx, gen: a.slots[idx].gen}
	}
	a.slots = append(a.slots, windowSlot{win: w, gen: 1})
	return WindowHandle{index: len(a.slots) - 1, gen: 1}
}

func (a *windowArena) remove(h WindowHandle) {
	if h.index < 0 || h.index >= len(a.slots) || a.slots[h.index].gen != h.gen {
		return
	}
	a.slots[h.index].win = nil
	a.slots[h.index].gen++
	a.free = append(a.free, h.index)
}

func (a *windowArena) resolve(h WindowHandle) *Window {
	if h.index < 0 || h.index >= len(a.slots) || a.slots[h.index].gen != h.gen {
		return nil
	}
	return a.slots[h.index].win
}

// controlSlot/controlArena mirror windowSlot/windowArena for a single
// window's owned controls.
type controlSlot struct {
	ctrl *Control
	gen  uint32
}

type controlArena struct {
	slots []controlSlot
	free  []int
}

func newControlArena() *controlArena { return &controlArena{} }

func (a *controlArena) insert(c *Control) ControlHandle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].ctrl = c
		if a.slots[idx].gen == 0 {
			a.slots[idx].gen = 1
		}
		return ControlHandle{index: idx, gen: a.slots[idx].gen}
	}
	a.slots = append(a.slots, controlSlot{ctrl: c, gen: 1})
	return ControlHandle{index: len(a.slots) - 1, gen: 1}
}

func (a *controlArena) remove(h ControlHandle) {
	if h.index < 0 || h.index >= len(a.slots) || a.slots[h.index].gen != h.gen {
		return
	}
	a.slots[h.index].ctrl = nil
	a.slots[h.index].gen++
	a.free = append(a.free, h.index)
}

func (a *controlArena) resolve(h ControlHandle) *Control {
	if h.index < 0 || h.index >= len(a.slots) || a.slots[h.index].gen != h.gen {
		return nil
	}
	return a.slots[h.index].ctrl
}

func (a *controlArena) all() []*Control {
	out := make([]*Control, 0, len(a.slots))
	for _, s := range a.slots {
		if s.ctrl != nil {
			out = append(out, s.ctrl)
		}
	}
	return out
}
