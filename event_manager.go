// event_manager.go - Circular event queue, normalization, routing

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

import "sync/atomic"

// EventQueueSize is the circular buffer's fixed capacity.
const EventQueueSize = 256

// EventManager is the fixed-capacity circular buffer of EventRecords
// interrupt context writes into and the main loop reads from. Only the
// read and write indices are shared across contexts, through relaxed
// atomic loads/stores. Interrupts advance writeIdx and the main loop
// advances readIdx; on overflow AddEvent also advances readIdx to drop
// the oldest unread event, so in that case both sides write readIdx.
// One slot always stays empty (full means write+1 == read), so at most
// EventQueueSize-1 events are pending at once.
type EventManager struct {
	buf      [EventQueueSize]EventRecord
	writeIdx uint32
	readIdx  uint32

	tick uint64
}

func NewEventManager() *EventManager { return &EventManager{} }

// AddEvent writes a new event into the queue, overwriting the oldest
// unread event if the queue is full (no backpressure: interrupt context
// must never block).
func (e *EventManager) AddEvent(kind EventKind, code, x, y int, mods Modifier, win WindowHandle, ctrl ControlHandle) {
	w := atomic.LoadUint32(&e.writeIdx)
	e.tick++
	e.buf[w] = EventRecord{
		What: kind, Code: code, When: e.tick,
		Window: win, Control: ctrl,
		X: x, Y: y, Mods: mods,
	}
	next := (w + 1) % EventQueueSize
	r := atomic.LoadUint32(&e.readIdx)
	if next == r {
		// Buffer was full: drop the event we're about to overwrite by
		// advancing readIdx past it too.
		atomic.StoreUint32(&e.readIdx, (r+1)%EventQueueSize)
	}
	atomic.StoreUint32(&e.writeIdx, next)
}

// NextEvent returns the oldest unread event, or ok=false if the queue is
// empty (read == write).
func (e *EventManager) NextEvent() (EventRecord, bool) {
	r := atomic.LoadUint32(&e.readIdx)
	w := atomic.LoadUint32(&e.writeIdx)
	if r == w {
		return EventRecord{}, false
	}
	ev := e.buf[r]
	atomic.StoreUint32(&e.readIdx, (r+1)%EventQueueSize)
	return ev, true
}

// RemoveEventsForWindow sweeps the queue and nullifies every pending
// event referencing h, so a destroyed window's handle is never
// delivered to any handler.
func (e *EventManager) RemoveEventsForWindow(h WindowHandle) {
	r := atomic.LoadUint32(&e.readIdx)
	w := atomic.LoadUint32(&e.writeIdx)
	for i := r; i != w; i = (i + 1) % EventQueueSize {
		if e.buf[i].Window == h {
			e.buf[i] = EventRecord{What: NullEvent}
		}
	}
}

// There is no push-to-front operation on the ring. The
// mouseDown-on-inactive-window normalization case, which must deliver
// synthetic inactivate/activate events before the mouseDown, instead
// has System.normalize return the replacement sequence as a slice;
// WaitForEvent and DrainEvents dispatch that slice in order on the
// consumer side without writing it back into the ring.

// WaitForEvent loops consuming events until one matches mask, applying
// system-level normalization to every event first: window hit-testing,
// control press tracking, and active-window swaps, per the table in
// the EventManager's normalization rules. The matching event is
// delivered to its window's handler before WaitForEvent returns it.
func (e *EventManager) WaitForEvent(sys *System, mask EventMask) EventRecord {
	for {
		ev, ok := e.NextEvent()
		if !ok {
			continue
		}
		if ev.What == NullEvent {
			continue
		}
		for _, out := range sys.normalize(ev) {
			if maskFor(out.What)&mask != 0 {
				sys.dispatch(out)
				return out
			}
			sys.dispatch(out)
		}
	}
}

// DrainEvents normalizes and dispatches every event currently queued,
// without blocking when the queue is empty. This is the non-blocking
// counterpart WaitForEvent's caller needs under a host loop that cannot
// yield (e.g. a presentation backend's per-frame Update callback) rather
// than this runtime's own cooperative wait_for_event spin.
func (e *EventManager) DrainEvents(sys *System) {
	for {
		ev, ok := e.NextEvent()
		if !ok {
			return
		}
		if ev.What == NullEvent {
			continue
		}
		for _, out := range sys.normalize(ev) {
			sys.dispatch(out)
		}
	}
}
