// Package app wires configuration, the bus, and a display backend together
// and owns the only wall-clock frame pacing in the program.
package app

import (
	"fmt"
	"time"

	"github.com/golang/glog"

	"nescore/internal/bus"
	"nescore/internal/cartridge"
	"nescore/internal/config"
	"nescore/internal/graphics"
)

// frameInterval is the NTSC frame period; Run sleeps to approximate it.
const frameInterval = time.Second / 60

// Application holds the configuration, the loaded cartridge, the bus and the
// display backend chosen by the caller. New loads the cartridge and builds
// and resets the bus; Run drives the frame loop.
type Application struct {
	Config    config.Config
	Bus       *bus.Bus
	Backend   graphics.Backend
	Cartridge *cartridge.Cartridge
}

// New loads romPath as a cartridge, attaches it to a new bus and stores
// backend. The bus is reset before return.
func New(cfg config.Config, romPath string, backend graphics.Backend) (*Application, error) {
	cart, err := cartridge.Load(romPath)
	if err != nil {
		return nil, fmt.Errorf("app: loading %s: %w", romPath, err)
	}

	b := bus.New()
	b.AttachCartridge(cart)
	b.Reset()

	glog.Infof("app: loaded %s, backend=%T", romPath, backend)
	return &Application{
		Config:    cfg,
		Bus:       b,
		Backend:   backend,
		Cartridge: cart,
	}, nil
}

// Run drives the bus one frame at a time until stop returns true, pacing
// each iteration to frameInterval with time.Sleep. The core itself never
// sleeps; only Run does.
func (a *Application) Run(stop func() bool) error {
	for !stop() {
		start := time.Now()

		a.Bus.PPU.ClearFrameComplete()
		for !a.Bus.PPU.FrameComplete() {
			a.Bus.Tick()
		}

		a.pollInput()

		if err := a.Backend.Present(a.Bus.PPU.Frame()); err != nil {
			return fmt.Errorf("app: present: %w", err)
		}

		if elapsed := time.Since(start); elapsed < frameInterval {
			time.Sleep(frameInterval - elapsed)
		}
	}
	return nil
}

// pollInput is a seam for a real input source to push button state into
// a.Bus.Controller(0)/(1); the core's controller ports are driven externally.
func (a *Application) pollInput() {}
