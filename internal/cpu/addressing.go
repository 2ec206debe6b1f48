package cpu

// Each addressing-mode function resolves c.addrAbs (or, for REL, c.addrRel)
// and returns 1 if the mode may require an extra cycle — gated by the
// operation also returning 1 before the CPU actually charges it.

func amIMP(c *CPU) uint8 {
	c.fetched = c.A
	return 0
}

func amIMM(c *CPU) uint8 {
	c.addrAbs = c.PC
	c.PC++
	return 0
}

func amZP0(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC)) & 0x00FF
	c.PC++
	return 0
}

func amZPX(c *CPU) uint8 {
	c.addrAbs = (uint16(c.read(c.PC)) + uint16(c.X)) & 0x00FF
	c.PC++
	return 0
}

func amZPY(c *CPU) uint8 {
	c.addrAbs = (uint16(c.read(c.PC)) + uint16(c.Y)) & 0x00FF
	c.PC++
	return 0
}

func amABS(c *CPU) uint8 {
	c.addrAbs = c.read16(c.PC)
	c.PC += 2
	return 0
}

func amABX(c *CPU) uint8 {
	base := c.read16(c.PC)
	c.PC += 2
	c.addrAbs = base + uint16(c.X)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

func amABY(c *CPU) uint8 {
	base := c.read16(c.PC)
	c.PC += 2
	c.addrAbs = base + uint16(c.Y)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// amIND reproduces the documented 6502 bug: when the pointer's low byte is
// $FF, the high byte of the target is read from pointer&$FF00, not pointer+1.
func amIND(c *CPU) uint8 {
	ptr := c.read16(c.PC)
	c.PC += 2

	var hi uint16
	if ptr&0x00FF == 0x00FF {
		hi = uint16(c.read(ptr & 0xFF00))
	} else {
		hi = uint16(c.read(ptr + 1))
	}
	lo := uint16(c.read(ptr))
	c.addrAbs = lo | hi<<8
	return 0
}

func amIZX(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++

	ptr := (t + uint16(c.X)) & 0x00FF
	lo := uint16(c.read(ptr & 0x00FF))
	hi := uint16(c.read((ptr + 1) & 0x00FF))
	c.addrAbs = lo | hi<<8
	return 0
}

func amIZY(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++

	lo := uint16(c.read(t & 0x00FF))
	hi := uint16(c.read((t + 1) & 0x00FF))
	base := lo | hi<<8
	c.addrAbs = base + uint16(c.Y)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

func amREL(c *CPU) uint8 {
	rel := uint16(c.read(c.PC))
	c.PC++
	if rel&0x80 != 0 {
		rel |= 0xFF00
	}
	c.addrRel = rel
	return 0
}
