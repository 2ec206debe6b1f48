package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadlessBackendResolution(t *testing.T) {
	h := NewHeadlessBackend()
	w, ht := h.Resolution()
	assert.Equal(t, 256, w)
	assert.Equal(t, 240, ht)
}

func TestHeadlessBackendPresentCopiesFrame(t *testing.T) {
	h := NewHeadlessBackend()
	var frame [256 * 240]uint32
	frame[0] = 0xFF0000
	require := h.Present(&frame)
	assert.NoError(t, require)

	frame[0] = 0x00FF00 // mutate caller's copy after Present
	last := h.LastFrame()
	assert.Equal(t, uint32(0xFF0000), last[0])
	assert.Equal(t, uint64(1), h.FrameCount())
}

func TestHeadlessBackendCountsEveryFrame(t *testing.T) {
	h := NewHeadlessBackend()
	var frame [256 * 240]uint32
	for i := 0; i < 5; i++ {
		_ = h.Present(&frame)
	}
	assert.Equal(t, uint64(5), h.FrameCount())
}
