// Package graphics abstracts the pixel-push surface the core renders into:
// a real window in GUI mode, or a headless sink for -nogui runs and tests.
package graphics

// Backend receives completed NES frames and presents them.
type Backend interface {
	// Present is called once per completed PPU frame. Implementations must
	// copy frame rather than retain the pointer; the caller reuses it.
	Present(frame *[256 * 240]uint32) error

	// Resolution returns the backend's native pixel dimensions.
	Resolution() (int, int)
}
