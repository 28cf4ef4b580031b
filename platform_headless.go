//go:build headless

// platform_headless.go - headless stand-in for the ebiten presentation surface

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

// RunEbiten is unavailable in a headless build (no ebiten dependency is
// linked); callers that need a presentation surface under `-tags
// headless` should drive System.WaitForEvent/System.Render directly and
// inject synthetic input via System.Events().AddEvent.
func RunEbiten(sys *System, screenIndex int, title string) error {
	return &VUIError{Operation: "run ebiten", Details: "unavailable in a headless build"}
}
