// platform.go - Hardware auto-detection and per-machine configuration

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

// SystemInfoReader is the external collaborator that reports the
// detected machine model; on real hardware it reads a fixed system-info
// record, on the emulator target it reads an emulated equivalent. Either
// way, detection failure is fatal (spec §4.4).
type SystemInfoReader interface {
	DetectMachine() (Machine, error)
}

// StaticSystemInfo is a SystemInfoReader that always reports a fixed
// machine, used by tests and the headless demo build.
type StaticSystemInfo struct{ Machine Machine }

func (s StaticSystemInfo) DetectMachine() (Machine, error) {
	if s.Machine == MachineUnknown {
		return MachineUnknown, &VUIError{Operation: "detect machine", Details: "no machine configured"}
	}
	return s.Machine, nil
}

// Platform is the entry point for machine auto-detection and per-model
// Screen construction. It has no runtime state of its own beyond the
// detected machine — Screens, once built, own everything else.
type Platform struct {
	Machine Machine
	diag    *Diag
}

// DetectPlatform auto-detects the machine via info, classifying one of
// the eight supported models. Detection failure is fatal: callers must
// not proceed to build a System on error.
func DetectPlatform(info SystemInfoReader, diag *Diag) (*Platform, error) {
	m, err := info.DetectMachine()
	if err != nil {
		return nil, &VUIError{Operation: "platform detect", Details: "machine classification failed", Err: err}
	}
	if diag != nil {
		diag.Infof("detected machine %s (%d screen(s))", m, m.NumScreens())
	}
	return &Platform{Machine: m, diag: diag}, nil
}

// NewScreens builds one Screen per physical display channel for the
// detected machine, auto-configuring each from the per-machine register
// and LUT tables.
func (p *Platform) NewScreens(alloc *Allocator) ([]*Screen, error) {
	profile, ok := machineProfiles[p.Machine]
	if !ok {
		return nil, &VUIError{Operation: "platform new screens", Details: "no profile for machine"}
	}
	screens := make([]*Screen, profile.numScreens)
	for i := 0; i < profile.numScreens; i++ {
		s, err := newScreen(p.Machine, i, alloc, p.diag)
		if err != nil {
			return nil, err
		}
		screens[i] = s
	}
	return screens, nil
}
