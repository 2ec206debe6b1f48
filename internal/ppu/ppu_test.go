package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCart is a minimal Cartridge stand-in: CHR-RAM backed, fixed mirroring.
type fakeCart struct {
	chr       [0x2000]uint8
	mirroring Mirroring
}

func (c *fakeCart) PPURead(addr uint16) (bool, uint8) {
	if addr <= 0x1FFF {
		return true, c.chr[addr]
	}
	return false, 0
}

func (c *fakeCart) PPUWrite(addr uint16, data uint8) bool {
	if addr <= 0x1FFF {
		c.chr[addr] = data
		return true
	}
	return false
}

func (c *fakeCart) Mirroring() Mirroring { return c.mirroring }

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	p := New()
	p.AttachCartridge(&fakeCart{})
	p.status |= statusVBlank
	p.w = true

	data := p.CPURead(0x0002)
	assert.NotZero(t, data&statusVBlank)
	assert.Zero(t, p.status&statusVBlank)
	assert.False(t, p.w)
}

func TestPPUADDRWriteSequenceSetsV(t *testing.T) {
	p := New()
	p.AttachCartridge(&fakeCart{})

	p.CPUWrite(0x0006, 0x21) // high byte
	p.CPUWrite(0x0006, 0x08) // low byte
	assert.Equal(t, uint16(0x2108), p.v.value())
}

func TestPPUDATAReadIsBufferedExceptPalette(t *testing.T) {
	p := New()
	p.AttachCartridge(&fakeCart{})

	p.Write(0x2005, 0xAB) // nametable write via internal bus
	p.CPUWrite(0x0006, 0x20)
	p.CPUWrite(0x0006, 0x05)

	first := p.CPURead(0x0007) // returns stale buffer (0), primes buffer with 0xAB
	assert.Equal(t, uint8(0), first)
	second := p.CPURead(0x0007)
	assert.Equal(t, uint8(0xAB), second)

	p.Write(0x3F00, 0x16)
	p.CPUWrite(0x0006, 0x3F)
	p.CPUWrite(0x0006, 0x00)
	assert.Equal(t, uint8(0x16), p.CPURead(0x0007)) // palette read is immediate
}

func TestPaletteWriteMirrorsEveryFourthEntry(t *testing.T) {
	p := New()
	p.AttachCartridge(&fakeCart{})

	p.Write(0x3F00, 0x16)
	assert.Equal(t, uint8(0x16), p.readPaletteRAM(0x3F10))
}

func TestHorizontalMirroringMapsTopRowToSameTable(t *testing.T) {
	p := New()
	p.AttachCartridge(&fakeCart{mirroring: Horizontal})

	p.Write(0x2000, 0x01)
	assert.Equal(t, uint8(0x01), p.Read(0x2400))
	p.Write(0x2800, 0x02)
	assert.Equal(t, uint8(0x02), p.Read(0x2C00))
	assert.NotEqual(t, p.Read(0x2000), p.Read(0x2800+0))
}

func TestVerticalMirroringMapsLeftColumnToSameTable(t *testing.T) {
	p := New()
	p.AttachCartridge(&fakeCart{mirroring: Vertical})

	p.Write(0x2000, 0x05)
	assert.Equal(t, uint8(0x05), p.Read(0x2800))
	p.Write(0x2400, 0x06)
	assert.Equal(t, uint8(0x06), p.Read(0x2C00))
}

func TestVBlankSetAtScanline241Dot1AndRaisesNMIWhenEnabled(t *testing.T) {
	p := New()
	p.AttachCartridge(&fakeCart{})
	p.CPUWrite(0x0000, ctrlNMI)
	p.scanline = 241
	p.dot = 0

	p.Tick() // dot 0 -> 1
	p.Tick() // dot 1: vblank set, NMI raised
	assert.NotZero(t, p.status&statusVBlank)
	assert.True(t, p.NMI())
}

func TestFrameCompletesAfterFullScan(t *testing.T) {
	p := New()
	p.AttachCartridge(&fakeCart{})
	for !p.FrameComplete() {
		p.Tick()
	}
	assert.Equal(t, int32(-1), p.scanline)
	assert.Equal(t, int32(0), p.dot)
}

func TestLoopyValueRoundTrip(t *testing.T) {
	var l loopy
	l.set(0x7FFF)
	assert.Equal(t, uint16(0x7FFF), l.value())
	l.setHigh(0x00)
	assert.Equal(t, uint16(0x00FF), l.value())
}
