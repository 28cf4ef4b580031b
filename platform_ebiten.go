//go:build !headless

// platform_ebiten.go - ebiten-backed presentation surface and input source

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenOutput drives a System's render loop inside an ebiten.Game,
// translating ebiten's keyboard/mouse callbacks into raw EventManager
// events and presenting the active screen's composited layer 0 bitmap
// each frame.
type EbitenOutput struct {
	sys    *System
	screen *Screen

	frame *ebiten.Image

	keyState map[ebiten.Key]bool
}

// NewEbitenOutput builds an output surface for sys's screen index idx.
func NewEbitenOutput(sys *System, screenIndex int) *EbitenOutput {
	sc := sys.Screens()[screenIndex]
	return &EbitenOutput{
		sys: sys, screen: sc,
		frame:    ebiten.NewImage(sc.Width(), sc.Height()),
		keyState: make(map[ebiten.Key]bool),
	}
}

// Update polls input, then drains and normalizes every queued event
// through the System (window activation swaps, control press/click
// tracking, handler delivery) before rendering, matching the runtime's
// single-threaded cooperative scheduling model: ebiten's Update is the
// "main loop tick" driving wait_for_event/render. It uses the
// non-blocking PumpEvents rather than WaitForEvent since ebiten's
// callback must return every frame even when no input arrived.
func (o *EbitenOutput) Update() error {
	o.pollMouse()
	o.pollKeys()
	o.sys.PumpEvents()
	o.sys.Render()
	return nil
}

func (o *EbitenOutput) pollMouse() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		o.sys.Events().AddEvent(MouseDown, 0, x, y, o.currentMods(), WindowHandle{}, ControlHandle{})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		o.sys.Events().AddEvent(MouseUp, 0, x, y, o.currentMods(), WindowHandle{}, ControlHandle{})
	}
}

func (o *EbitenOutput) pollKeys() {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		o.sys.Events().AddEvent(KeyDown, int(k), 0, 0, o.currentMods(), o.sys.active, ControlHandle{})
		o.keyState[k] = true
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		o.sys.Events().AddEvent(KeyUp, int(k), 0, 0, o.currentMods(), o.sys.active, ControlHandle{})
		delete(o.keyState, k)
	}
	for k := range o.keyState {
		if inpututil.KeyPressDuration(k) > 20 && inpututil.KeyPressDuration(k)%3 == 0 {
			o.sys.Events().AddEvent(AutoKey, int(k), 0, 0, o.currentMods(), o.sys.active, ControlHandle{})
		}
	}
}

func (o *EbitenOutput) currentMods() Modifier {
	var m Modifier
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModOption
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ModCommand
	}
	return m
}

// Draw rasterizes the screen's onscreen bitmap (indexed palette, via the
// theme's LUT) into the presented ebiten.Image.
func (o *EbitenOutput) Draw(dst *ebiten.Image) {
	layer := o.screen.Layer0()
	if layer == nil {
		return
	}
	lut := o.sys.Theme().LUT
	w, h := layer.Width(), layer.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx, _ := layer.GetPixel(x, y)
			rgb := lut[idx]
			img.Set(x, y, color.RGBA{
				R: byte(rgb >> 16), G: byte(rgb >> 8), B: byte(rgb), A: 255,
			})
		}
	}
	o.frame.WritePixels(img.Pix)
	dst.DrawImage(o.frame, nil)
}

// Layout reports the screen's native pixel dimensions as ebiten's
// logical screen size; this runtime performs no additional scaling.
func (o *EbitenOutput) Layout(outsideWidth, outsideHeight int) (int, int) {
	return o.screen.Width(), o.screen.Height()
}

// RunEbiten starts the ebiten game loop for sys's screen index idx, and
// blocks until the window is closed.
func RunEbiten(sys *System, screenIndex int, title string) error {
	out := NewEbitenOutput(sys, screenIndex)
	ebiten.SetWindowSize(out.screen.Width(), out.screen.Height())
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(out)
}
