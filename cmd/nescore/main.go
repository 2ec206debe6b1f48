// Command nescore runs the NES emulation core against a ROM file, either in
// a real window, headless, or under the interactive debugger.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	tea "github.com/charmbracelet/bubbletea"

	"nescore/internal/app"
	"nescore/internal/config"
	"nescore/internal/debug"
	"nescore/internal/graphics"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM file")
	configPath := flag.String("config", "", "path to a YAML configuration file")
	nogui := flag.Bool("nogui", false, "run without a window, using the headless backend")
	debugMode := flag.Bool("debug", false, "launch the interactive TUI debugger instead of the frame loop")
	flag.Parse()

	defer glog.Flush()

	if *romPath == "" {
		glog.Error("nescore: -rom is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		glog.Errorf("nescore: loading config: %v", err)
		os.Exit(1)
	}

	var backend graphics.Backend
	if *nogui {
		backend = graphics.NewHeadlessBackend()
	} else {
		backend = graphics.NewEbitenBackend(cfg.Window.Scale)
	}

	application, err := app.New(cfg, *romPath, backend)
	if err != nil {
		glog.Errorf("nescore: %v", err)
		os.Exit(1)
	}

	if *debugMode {
		program := tea.NewProgram(debug.NewTUI(application.Bus))
		if _, err := program.Run(); err != nil {
			glog.Errorf("nescore: debugger: %v", err)
			os.Exit(1)
		}
		return
	}

	if ebitenBackend, ok := backend.(*graphics.EbitenBackend); ok {
		ebitenBackend.SetUpdateFunc(func() error {
			application.Bus.PPU.ClearFrameComplete()
			for !application.Bus.PPU.FrameComplete() {
				application.Bus.Tick()
			}
			return ebitenBackend.Present(application.Bus.PPU.Frame())
		})
		if err := ebiten.RunGame(ebitenBackend); err != nil {
			glog.Errorf("nescore: %v", err)
			os.Exit(1)
		}
		return
	}

	// Headless runs have no window to close, so they stop after a fixed
	// frame budget instead of running forever.
	const headlessFrameBudget = 3600
	frames := 0
	if err := application.Run(func() bool {
		frames++
		return frames > headlessFrameBudget
	}); err != nil {
		glog.Errorf("nescore: %v", err)
		os.Exit(1)
	}
}
