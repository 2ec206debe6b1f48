package bus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nescore/internal/cartridge"
)

func testCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	buf := &bytes.Buffer{}
	buf.WriteString("NES\x1A")
	buf.Write([]uint8{2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	prg := make([]uint8, 2*16*1024)
	// reset vector -> 0x8000
	prg[0x7FFC] = 0x00
	prg[0x7FFD] = 0x80
	buf.Write(prg)
	buf.Write(make([]uint8, 8*1024))

	cart, err := cartridge.LoadReader(buf)
	require.NoError(t, err)
	return cart
}

func TestResetLoadsPCFromCartridgeVector(t *testing.T) {
	b := New()
	b.AttachCartridge(testCartridge(t))
	b.Reset()
	assert.Equal(t, uint16(0x8000), b.CPU.PC)
}

func TestRAMIsMirroredEveryTwoKiB(t *testing.T) {
	b := New()
	b.AttachCartridge(testCartridge(t))
	b.Reset()
	b.Write(0x0000, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x0800))
	assert.Equal(t, uint8(0x42), b.Read(0x1800))
}

func TestControllerPortLatchesAndShifts(t *testing.T) {
	b := New()
	b.AttachCartridge(testCartridge(t))
	b.Reset()
	b.Controller(0).SetButtons(0x80) // A held
	b.Write(0x4016, 0x01)
	b.Write(0x4016, 0x00)
	assert.Equal(t, uint8(1), b.Read(0x4016))
	assert.Equal(t, uint8(0), b.Read(0x4016))
}

func TestOAMDMATakesAtLeast512BusCyclesAndCopiesPage(t *testing.T) {
	b := New()
	b.AttachCartridge(testCartridge(t))
	b.Reset()
	b.ram[0x0000] = 0xAA

	b.Write(0x4014, 0x00) // page 0: source $0000-$00FF of RAM
	// DMA consumes ~513 CPU-cadence steps, each spanning 3 master ticks.
	ticks := 0
	for ; ticks < 2000 && b.dmaActive; ticks++ {
		b.Tick()
	}
	assert.False(t, b.dmaActive)
	assert.GreaterOrEqual(t, ticks, 512*3)
	assert.Equal(t, uint8(0xAA), b.oam[0])
}

func TestAPURegisterWritesAreRoutedToAPU(t *testing.T) {
	b := New()
	b.AttachCartridge(testCartridge(t))
	b.Reset()

	b.Write(0x4015, 0x01)
	assert.Equal(t, uint8(0x01), b.Read(0x4015))
}

func TestTickAdvancesPPUThreeTimesPerCPUCycle(t *testing.T) {
	b := New()
	b.AttachCartridge(testCartridge(t))
	b.Reset()
	b.Tick()
	b.Tick()
	b.Tick()
	assert.Equal(t, uint64(3), b.systemClock)

	// The CPU is clocked on master ticks 0, 3, 6, ...: the 8 reset cycles
	// are still in flight after 21 master ticks and done after 22.
	for i := 3; i < 21; i++ {
		b.Tick()
	}
	assert.False(t, b.CPU.Complete())
	b.Tick()
	assert.True(t, b.CPU.Complete())
}
