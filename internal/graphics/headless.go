package graphics

// HeadlessBackend records the latest presented frame without opening a
// window. Used by -nogui mode and by tests that need to pump whole frames.
type HeadlessBackend struct {
	frame      [256 * 240]uint32
	frameCount uint64
}

// NewHeadlessBackend creates a headless backend.
func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{}
}

// Present copies frame into the backend's last-frame buffer.
func (h *HeadlessBackend) Present(frame *[256 * 240]uint32) error {
	h.frame = *frame
	h.frameCount++
	return nil
}

// Resolution reports the fixed NES framebuffer dimensions.
func (h *HeadlessBackend) Resolution() (int, int) { return 256, 240 }

// LastFrame returns a copy of the most recently presented frame.
func (h *HeadlessBackend) LastFrame() [256 * 240]uint32 { return h.frame }

// FrameCount returns how many frames have been presented.
func (h *HeadlessBackend) FrameCount() uint64 { return h.frameCount }
