// Package cartridge implements iNES ROM loading and the polymorphic mapper
// contract that translates CPU/PPU addresses onto PRG/CHR memory.
package cartridge

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"nescore/internal/ppu"
)

// Sentinel errors returned by Load/LoadReader. Wrap with fmt.Errorf("%w: ...")
// so callers can still match with errors.Is.
var (
	ErrInvalidImage      = errors.New("cartridge: invalid iNES image")
	ErrTruncatedImage    = errors.New("cartridge: truncated iNES image")
	ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")
)

const (
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
)

type iNESHeader struct {
	Magic      [4]uint8
	PRGBanks   uint8
	CHRBanks   uint8
	Mapper1    uint8
	Mapper2    uint8
	PRGRAMSize uint8
	TVSystem1  uint8
	TVSystem2  uint8
	_          [5]uint8
}

// Cartridge owns the loaded PRG/CHR memory and the mapper that translates
// guest addresses onto it.
type Cartridge struct {
	prgROM []uint8
	chrROM []uint8

	hasCHRRAM bool
	mirroring ppu.Mirroring
	mapperID  uint8
	mapper    Mapper
}

// Load opens path and parses it as an iNES image.
func Load(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses an iNES image from r.
func LoadReader(r io.Reader) (*Cartridge, error) {
	var header iNESHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedImage, err)
	}
	if string(header.Magic[:]) != "NES\x1A" {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidImage)
	}

	if header.Mapper1&0x04 != 0 {
		if _, err := io.CopyN(io.Discard, r, 512); err != nil {
			return nil, fmt.Errorf("%w: trainer: %v", ErrTruncatedImage, err)
		}
	}

	cart := &Cartridge{
		mapperID: (header.Mapper2 & 0xF0) | (header.Mapper1 >> 4),
	}
	if header.Mapper1&0x01 != 0 {
		cart.mirroring = ppu.Vertical
	} else {
		cart.mirroring = ppu.Horizontal
	}

	cart.prgROM = make([]uint8, int(header.PRGBanks)*prgBankSize)
	if _, err := io.ReadFull(r, cart.prgROM); err != nil {
		return nil, fmt.Errorf("%w: prg: %v", ErrTruncatedImage, err)
	}

	chrBanks := header.CHRBanks
	if chrBanks == 0 {
		cart.chrROM = make([]uint8, chrBankSize)
		cart.hasCHRRAM = true
	} else {
		cart.chrROM = make([]uint8, int(chrBanks)*chrBankSize)
		if _, err := io.ReadFull(r, cart.chrROM); err != nil {
			return nil, fmt.Errorf("%w: chr: %v", ErrTruncatedImage, err)
		}
	}

	mapper, err := newMapper(cart.mapperID, header.PRGBanks, chrBanks)
	if err != nil {
		glog.Errorf("cartridge: mapper %d unsupported", cart.mapperID)
		return nil, err
	}
	cart.mapper = mapper

	return cart, nil
}

// Mirroring reports the cartridge's nametable mirroring mode.
func (c *Cartridge) Mirroring() ppu.Mirroring { return c.mirroring }

// Reset is a no-op for every currently implemented mapper but is part of the
// bus's uniform Reset(cart, cpu, ppu) sequence.
func (c *Cartridge) Reset() { c.mapper.Reset() }

// CPURead reads through the mapper at a CPU-visible address ($4020-$FFFF).
// Returns 0 if the mapper does not claim the address.
func (c *Cartridge) CPURead(addr uint16) uint8 {
	if ok, offset := c.mapper.CPURead(addr); ok {
		return c.prgROM[offset%uint32(len(c.prgROM))]
	}
	return 0
}

// CPUWrite writes through the mapper at a CPU-visible address. NROM has no
// writable PRG memory, so this is a no-op for mapper 0, but the call is
// always safe.
func (c *Cartridge) CPUWrite(addr uint16, data uint8) {
	if ok, offset := c.mapper.CPUWrite(addr); ok {
		if int(offset) < len(c.prgROM) {
			c.prgROM[offset] = data
		}
	}
}

// PPURead satisfies ppu.Cartridge: reads through the mapper at a PPU-visible
// address ($0000-$1FFF pattern tables).
func (c *Cartridge) PPURead(addr uint16) (bool, uint8) {
	ok, offset := c.mapper.PPURead(addr)
	if !ok {
		return false, 0
	}
	return true, c.chrROM[offset%uint32(len(c.chrROM))]
}

// PPUWrite satisfies ppu.Cartridge: writes through the mapper, accepted only
// when the cartridge declared CHR-RAM.
func (c *Cartridge) PPUWrite(addr uint16, data uint8) bool {
	ok, offset := c.mapper.PPUWrite(addr)
	if !ok {
		return false
	}
	c.chrROM[offset] = data
	return true
}
