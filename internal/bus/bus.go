// Package bus wires the CPU, PPU, cartridge and controllers into a single
// tick-driven system, owning CPU memory-map dispatch and OAM-DMA timing.
package bus

import (
	"github.com/golang/glog"

	"nescore/internal/apu"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/input"
	"nescore/internal/ppu"
)

// Bus is the NES system bus: CPU-visible RAM, the PPU register mirror,
// controller ports, OAM-DMA, the stub APU, and cartridge dispatch.
type Bus struct {
	CPU *cpu.CPU
	PPU *ppu.PPU
	APU *apu.APU

	cart        *cartridge.Cartridge
	ram         [2048]uint8
	controllers [2]*input.Controller

	oam [256]uint8

	dmaPage   uint8
	dmaAddr   uint8
	dmaData   uint8
	dmaActive bool
	dmaDummy  bool

	systemClock uint64
}

// New creates a bus with its CPU and PPU constructed and wired together. No
// cartridge is attached yet; AttachCartridge must be called before Reset.
func New() *Bus {
	b := &Bus{
		controllers: [2]*input.Controller{input.New(), input.New()},
	}
	b.PPU = ppu.New()
	b.APU = apu.New()
	b.CPU = cpu.New(b)
	return b
}

// AttachCartridge wires a loaded cartridge into both the CPU-visible memory
// map and the PPU's pattern/nametable dispatch.
func (b *Bus) AttachCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.PPU.AttachCartridge(cart)
}

// Controller returns port 0 or 1 ($4016/$4017).
func (b *Bus) Controller(port int) *input.Controller { return b.controllers[port] }

// Reset resets cartridge, CPU and PPU in that order and zeroes the tick
// counter.
func (b *Bus) Reset() {
	if b.cart != nil {
		b.cart.Reset()
	}
	b.CPU.Reset()
	b.PPU.Reset()
	b.APU.Reset()
	b.systemClock = 0
	b.dmaActive = false
	b.dmaDummy = true
	glog.Info("bus: reset")
}

// Read services a CPU-side read against the memory map in §4.3.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return b.PPU.CPURead(addr & 0x0007)
	case addr == 0x4015:
		return b.APU.Status()
	case addr == 0x4016:
		return b.controllers[0].Read()
	case addr == 0x4017:
		return b.controllers[1].Read()
	case addr >= 0x4020:
		return b.cart.CPURead(addr)
	default:
		return 0
	}
}

// Write services a CPU-side write against the memory map in §4.3.
func (b *Bus) Write(addr uint16, data uint8) {
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = data
	case addr <= 0x3FFF:
		b.PPU.CPUWrite(addr&0x0007, data)
	case addr >= 0x4000 && addr <= 0x4013:
		b.APU.WriteRegister(addr, data)
	case addr == 0x4014:
		b.dmaPage = data
		b.dmaAddr = 0
		b.dmaActive = true
		b.dmaDummy = true
	case addr == 0x4015:
		b.APU.WriteRegister(addr, data)
	case addr == 0x4016:
		b.controllers[0].Write(data)
	case addr == 0x4017:
		b.controllers[1].Write(data)
	case addr >= 0x4020:
		b.cart.CPUWrite(addr, data)
	}
}

// Tick advances the system one master (PPU) cycle: the PPU always advances;
// every third cycle either steps OAM-DMA or clocks the CPU; then a pending
// PPU NMI is drained into the CPU.
func (b *Bus) Tick() {
	b.PPU.Tick()

	if b.systemClock%3 == 0 {
		b.APU.Tick()
		if b.dmaActive {
			b.stepDMA()
		} else {
			b.CPU.Tick()
		}
	}

	if b.PPU.NMI() {
		b.PPU.SetNMI(false)
		b.CPU.NMI()
	}

	b.systemClock++
}

func (b *Bus) stepDMA() {
	if b.dmaDummy {
		if b.systemClock%2 == 1 {
			b.dmaDummy = false
		}
		return
	}

	if b.systemClock%2 == 0 {
		b.dmaData = b.Read(uint16(b.dmaPage)<<8 | uint16(b.dmaAddr))
		return
	}

	b.oam[b.dmaAddr] = b.dmaData
	b.dmaAddr++
	if b.dmaAddr == 0 {
		b.dmaActive = false
		b.dmaDummy = true
	}
}
