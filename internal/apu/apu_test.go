package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteRegisterSetsPulseDutyAndVolume(t *testing.T) {
	a := New()
	a.WriteRegister(0x4000, 0xBF) // duty=10, volume=0xF
	assert.Equal(t, uint8(2), a.pulse1.duty)
	assert.Equal(t, uint8(0x0F), a.pulse1.volume)
}

func TestStatusReflectsChannelEnableBits(t *testing.T) {
	a := New()
	a.WriteRegister(0x4015, 0x03)
	assert.Equal(t, uint8(0x03), a.Status())

	a.WriteRegister(0x4015, 0x00)
	assert.Equal(t, uint8(0x00), a.Status())
}

func TestResetClearsState(t *testing.T) {
	a := New()
	a.WriteRegister(0x4015, 0x03)
	a.Tick()
	a.Reset()
	assert.Equal(t, uint8(0), a.Status())
	assert.Equal(t, uint64(0), a.cycles)
}

func TestTickAdvancesCycleCount(t *testing.T) {
	a := New()
	a.Tick()
	a.Tick()
	assert.Equal(t, uint64(2), a.cycles)
}
