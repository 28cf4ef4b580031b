// doc.go - Package overview for the VICKY windowing runtime

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

/*
Package vui implements the windowing and graphics runtime for the Foenix
A2560/C256 family of machines, sitting directly on top of the VICKY video
controller's memory-mapped registers and video RAM.

It provides:

  - Platform/Screen: hardware auto-detection, video mode selection, and
    the two-layer VRAM framebuffer setup for each display channel.
  - System: the window fleet, Z-order, active window tracking, the event
    queue, and the shared theme.
  - Window/Control compositing: per-window dirty rectangles and
    cross-window damage rectangles, blitting only what changed.
  - EventManager: translation of raw keyboard/mouse input into routed
    window/control events, including window activation and control
    press tracking (drag zones are classified separately, by
    Window.HitTestDragZone).
  - Bitmap/Font: the 2D primitive drawing engine and Mac-style bitmap
    font renderer every window uses for its content and chrome.

The runtime is single-threaded and cooperative: exactly one goroutine
owns System, Window, Control and Bitmap state at a time. Only
EventManager's circular buffer is written from more than one context
(an input producer and the consuming main loop), and only through the
atomic read/write index protocol described in event_manager.go.
*/
package vui
