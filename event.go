// event.go - Event record and kind taxonomy

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

// EventKind enumerates every event the runtime routes. mouseMoved,
// autoKey (distinct from a plain keyDown autorepeat), closeEvt, and
// diskEvt are carried over from the original event taxonomy even though
// the distilled pipeline description only names a subset (spec's
// supplemented-features allowance).
type EventKind int

const (
	NullEvent EventKind = iota
	MouseDown
	MouseUp
	MouseMoved
	KeyDown
	KeyUp
	AutoKey // autorepeat, distinct from a held KeyDown
	UpdateEvt
	ActivateEvt
	InactivateEvt
	DiskEvt
	CloseEvt
	ControlClicked
)

// EventMask is a bitset over EventKind, used by WaitForEvent.
type EventMask uint32

func maskFor(k EventKind) EventMask { return 1 << uint(k) }

// EventMaskAll matches every event kind.
const EventMaskAll EventMask = ^EventMask(0)

// Modifier is a bitset of held modifier keys at the time of an event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModOption
	ModCommand
	ModCapsLock
)

// EventRecord is the tagged record flowing through the EventManager's
// circular buffer.
type EventRecord struct {
	What EventKind
	Code int // keycode, or an opaque payload for non-key events
	When uint64

	Window  WindowHandle
	Control ControlHandle

	X, Y int // global coordinates for mouse-origin events
	Mods Modifier
}
