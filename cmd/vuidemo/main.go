// main.go - vuidemo: runnable demonstration of the windowing runtime

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"os"

	vui "github.com/foenixdev/vicky-ui"
)

func boilerPlate() {
	fmt.Println(`
 __      ___      _              _    _ ___
 \ \    / (_)_ _ | |____  _  ___| |  | |_ _|
  \ \/\/ /| | ' \| / / || | |__ \ |__| || |
   \_/\_/ |_|_||_|_\_\\_, |   / /____/ |___|
                      |__/   /_/
  Foenix A2560/C256 windowing runtime demo
`)
}

var machineNames = map[string]vui.Machine{
	"c256u":    vui.MachineC256U,
	"c256u+":   vui.MachineC256UPlus,
	"c256fmx":  vui.MachineC256FMX,
	"c256genx": vui.MachineC256GenX,
	"a2560u":   vui.MachineA2560U,
	"a2560u+":  vui.MachineA2560UPlus,
	"a2560k":   vui.MachineA2560K,
	"a2560x":   vui.MachineA2560X,
}

func main() {
	boilerPlate()

	machineFlag := flag.String("machine", "a2560k", "target machine: "+machineList())
	logLevel := flag.Int("loglevel", int(vui.LogInfo), "diagnostic verbosity (0=error .. 4=alloc)")
	flag.Parse()

	machine, ok := machineNames[*machineFlag]
	if !ok {
		fmt.Fprintf(os.Stderr, "vuidemo: unknown machine %q (want one of %s)\n", *machineFlag, machineList())
		os.Exit(1)
	}

	diag := vui.NewDiag(vui.LogLevel(*logLevel), os.Stderr)

	sys, err := vui.InitSystem(vui.StaticSystemInfo{Machine: machine}, diag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vuidemo: system init failed: %v\n", err)
		os.Exit(1)
	}

	demoWin := buildDemoWindow(sys)
	if _, ok := sys.AddWindow(demoWin); !ok {
		fmt.Fprintf(os.Stderr, "vuidemo: could not add demo window\n")
		os.Exit(1)
	}

	if err := vui.RunEbiten(sys, 0, "vuidemo"); err != nil {
		fmt.Fprintf(os.Stderr, "vuidemo: %v\n", err)
		os.Exit(1)
	}
}

func machineList() string {
	out := ""
	for name := range machineNames {
		if out != "" {
			out += ", "
		}
		out += name
	}
	return out
}

func buildDemoWindow(sys *vui.System) *vui.Window {
	const w, h = 320, 200
	onScreen, err := vui.NewBitmap(sys.Allocator(), w, h, nil, vui.PoolNormal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vuidemo: %v\n", err)
		os.Exit(1)
	}
	offscreen, err := vui.NewBitmap(sys.Allocator(), w, h, nil, vui.PoolNormal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vuidemo: %v\n", err)
		os.Exit(1)
	}

	win := vui.NewWindow(vui.WindowTemplate{
		Title: "Demo", Type: vui.WindowStandard,
		X: 40, Y: 40, W: w, H: h,
		MinW: 160, MinH: 100, MaxW: 640, MaxH: 480,
		CanResize: true,
		OnScreen:  onScreen, Offscreen: offscreen,
		Theme: sys.Theme(),
		Handler: func(win *vui.Window, ev vui.EventRecord) {
			if ev.What == vui.ControlClicked {
				win.SetVisible(false)
			}
		},
	})
	win.SetVisible(true)
	return win
}
