// diag.go - Diagnostic channel: compile-time log-level ladder

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// LogLevel is the diagnostic channel's log-level ladder, per spec §6.
type LogLevel int

const (
	LogError LogLevel = iota
	LogWarning
	LogInfo
	LogDebug
	LogAlloc
)

func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "ERROR"
	case LogWarning:
		return "WARN"
	case LogInfo:
		return "INFO"
	case LogDebug:
		return "DEBUG"
	case LogAlloc:
		return "ALLOC"
	default:
		return "?"
	}
}

// EmulatorPeekAddr is the well-known address the core writes diagnostic
// text to on the emulator target, per spec §6. Real hardware has no such
// peek address and falls back to the text console instead.
const EmulatorPeekAddr = 0xFFFFFFFB

// Diag is the runtime's diagnostic sink. A System owns exactly one; it is
// safe to share across the single cooperative task the runtime runs as.
type Diag struct {
	level    LogLevel
	out      io.Writer
	emulator bool // true: write to the peek address surface, false: text console
}

// NewDiag builds a Diag at the given minimum level. When w is nil it
// chooses its destination the way the real hardware/emulator split in
// spec §6 describes: an interactive terminal (detected via
// golang.org/x/term, the same dependency the teacher uses for terminal
// control) gets the text-console fallback; anything else is treated as
// the emulator target and writes to stderr, standing in for the peek
// address surface.
func NewDiag(level LogLevel, w io.Writer) *Diag {
	d := &Diag{level: level, out: w}
	if d.out == nil {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			d.out = os.Stderr
			d.emulator = false
		} else {
			d.out = os.Stderr
			d.emulator = true
		}
	}
	return d
}

// Log writes a message at the given level if it meets the configured
// threshold.
func (d *Diag) Log(level LogLevel, format string, args ...any) {
	if d == nil || level > d.level {
		return
	}
	prefix := "[vui " + level.String() + "] "
	if d.emulator {
		prefix = fmt.Sprintf("[peek:0x%X %s] ", EmulatorPeekAddr, level.String())
	}
	fmt.Fprintf(d.out, prefix+format+"\n", args...)
}

func (d *Diag) Errorf(format string, args ...any)   { d.Log(LogError, format, args...) }
func (d *Diag) Warningf(format string, args ...any) { d.Log(LogWarning, format, args...) }
func (d *Diag) Infof(format string, args ...any)    { d.Log(LogInfo, format, args...) }
func (d *Diag) Debugf(format string, args ...any)   { d.Log(LogDebug, format, args...) }
func (d *Diag) Allocf(format string, args ...any)   { d.Log(LogAlloc, format, args...) }
