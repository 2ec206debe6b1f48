package cpu

// buildTable populates the 256-entry opcode table. Every slot not
// overwritten below stays the illegal "???" no-op, except the six
// extra-cycle illegal NOPs and 0xEB (illegal "???" that happens to execute
// SBC), per §4.1.
func (c *CPU) buildTable() {
	for i := range c.table {
		c.table[i] = instruction{name: "???", opFn: opXXX, modeFn: amIMP, mode: IMP, cycles: 2}
	}

	set := func(op uint8, name string, fn func(c *CPU) uint8, mode AddressingMode, cycles uint8) {
		c.table[op] = instruction{name: name, opFn: fn, modeFn: modeFnFor(mode), mode: mode, cycles: cycles}
	}

	// ADC
	set(0x69, "ADC", opADC, IMM, 2)
	set(0x65, "ADC", opADC, ZP0, 3)
	set(0x75, "ADC", opADC, ZPX, 4)
	set(0x6D, "ADC", opADC, ABS, 4)
	set(0x7D, "ADC", opADC, ABX, 4)
	set(0x79, "ADC", opADC, ABY, 4)
	set(0x61, "ADC", opADC, IZX, 6)
	set(0x71, "ADC", opADC, IZY, 5)

	// AND
	set(0x29, "AND", opAND, IMM, 2)
	set(0x25, "AND", opAND, ZP0, 3)
	set(0x35, "AND", opAND, ZPX, 4)
	set(0x2D, "AND", opAND, ABS, 4)
	set(0x3D, "AND", opAND, ABX, 4)
	set(0x39, "AND", opAND, ABY, 4)
	set(0x21, "AND", opAND, IZX, 6)
	set(0x31, "AND", opAND, IZY, 5)

	// ASL
	set(0x0A, "ASL", opASL, IMP, 2)
	set(0x06, "ASL", opASL, ZP0, 5)
	set(0x16, "ASL", opASL, ZPX, 6)
	set(0x0E, "ASL", opASL, ABS, 6)
	set(0x1E, "ASL", opASL, ABX, 7)

	// Branches
	set(0x90, "BCC", opBCC, REL, 2)
	set(0xB0, "BCS", opBCS, REL, 2)
	set(0xF0, "BEQ", opBEQ, REL, 2)
	set(0x30, "BMI", opBMI, REL, 2)
	set(0xD0, "BNE", opBNE, REL, 2)
	set(0x10, "BPL", opBPL, REL, 2)
	set(0x50, "BVC", opBVC, REL, 2)
	set(0x70, "BVS", opBVS, REL, 2)

	// BIT
	set(0x24, "BIT", opBIT, ZP0, 3)
	set(0x2C, "BIT", opBIT, ABS, 4)

	// BRK
	set(0x00, "BRK", opBRK, IMP, 7)

	// Flag clear/set
	set(0x18, "CLC", opCLC, IMP, 2)
	set(0xD8, "CLD", opCLD, IMP, 2)
	set(0x58, "CLI", opCLI, IMP, 2)
	set(0xB8, "CLV", opCLV, IMP, 2)
	set(0x38, "SEC", opSEC, IMP, 2)
	set(0xF8, "SED", opSED, IMP, 2)
	set(0x78, "SEI", opSEI, IMP, 2)

	// CMP
	set(0xC9, "CMP", opCMP, IMM, 2)
	set(0xC5, "CMP", opCMP, ZP0, 3)
	set(0xD5, "CMP", opCMP, ZPX, 4)
	set(0xCD, "CMP", opCMP, ABS, 4)
	set(0xDD, "CMP", opCMP, ABX, 4)
	set(0xD9, "CMP", opCMP, ABY, 4)
	set(0xC1, "CMP", opCMP, IZX, 6)
	set(0xD1, "CMP", opCMP, IZY, 5)

	// CPX / CPY
	set(0xE0, "CPX", opCPX, IMM, 2)
	set(0xE4, "CPX", opCPX, ZP0, 3)
	set(0xEC, "CPX", opCPX, ABS, 4)
	set(0xC0, "CPY", opCPY, IMM, 2)
	set(0xC4, "CPY", opCPY, ZP0, 3)
	set(0xCC, "CPY", opCPY, ABS, 4)

	// DEC / DEX / DEY
	set(0xC6, "DEC", opDEC, ZP0, 5)
	set(0xD6, "DEC", opDEC, ZPX, 6)
	set(0xCE, "DEC", opDEC, ABS, 6)
	set(0xDE, "DEC", opDEC, ABX, 7)
	set(0xCA, "DEX", opDEX, IMP, 2)
	set(0x88, "DEY", opDEY, IMP, 2)

	// EOR
	set(0x49, "EOR", opEOR, IMM, 2)
	set(0x45, "EOR", opEOR, ZP0, 3)
	set(0x55, "EOR", opEOR, ZPX, 4)
	set(0x4D, "EOR", opEOR, ABS, 4)
	set(0x5D, "EOR", opEOR, ABX, 4)
	set(0x59, "EOR", opEOR, ABY, 4)
	set(0x41, "EOR", opEOR, IZX, 6)
	set(0x51, "EOR", opEOR, IZY, 5)

	// INC / INX / INY
	set(0xE6, "INC", opINC, ZP0, 5)
	set(0xF6, "INC", opINC, ZPX, 6)
	set(0xEE, "INC", opINC, ABS, 6)
	set(0xFE, "INC", opINC, ABX, 7)
	set(0xE8, "INX", opINX, IMP, 2)
	set(0xC8, "INY", opINY, IMP, 2)

	// JMP / JSR
	set(0x4C, "JMP", opJMP, ABS, 3)
	set(0x6C, "JMP", opJMP, IND, 5)
	set(0x20, "JSR", opJSR, ABS, 6)

	// LDA / LDX / LDY
	set(0xA9, "LDA", opLDA, IMM, 2)
	set(0xA5, "LDA", opLDA, ZP0, 3)
	set(0xB5, "LDA", opLDA, ZPX, 4)
	set(0xAD, "LDA", opLDA, ABS, 4)
	set(0xBD, "LDA", opLDA, ABX, 4)
	set(0xB9, "LDA", opLDA, ABY, 4)
	set(0xA1, "LDA", opLDA, IZX, 6)
	set(0xB1, "LDA", opLDA, IZY, 5)

	set(0xA2, "LDX", opLDX, IMM, 2)
	set(0xA6, "LDX", opLDX, ZP0, 3)
	set(0xB6, "LDX", opLDX, ZPY, 4)
	set(0xAE, "LDX", opLDX, ABS, 4)
	set(0xBE, "LDX", opLDX, ABY, 4)

	set(0xA0, "LDY", opLDY, IMM, 2)
	set(0xA4, "LDY", opLDY, ZP0, 3)
	set(0xB4, "LDY", opLDY, ZPX, 4)
	set(0xAC, "LDY", opLDY, ABS, 4)
	set(0xBC, "LDY", opLDY, ABX, 4)

	// LSR
	set(0x4A, "LSR", opLSR, IMP, 2)
	set(0x46, "LSR", opLSR, ZP0, 5)
	set(0x56, "LSR", opLSR, ZPX, 6)
	set(0x4E, "LSR", opLSR, ABS, 6)
	set(0x5E, "LSR", opLSR, ABX, 7)

	// NOP (legal)
	set(0xEA, "NOP", opNOP, IMP, 2)

	// ORA
	set(0x09, "ORA", opORA, IMM, 2)
	set(0x05, "ORA", opORA, ZP0, 3)
	set(0x15, "ORA", opORA, ZPX, 4)
	set(0x0D, "ORA", opORA, ABS, 4)
	set(0x1D, "ORA", opORA, ABX, 4)
	set(0x19, "ORA", opORA, ABY, 4)
	set(0x01, "ORA", opORA, IZX, 6)
	set(0x11, "ORA", opORA, IZY, 5)

	// Stack
	set(0x48, "PHA", opPHA, IMP, 3)
	set(0x08, "PHP", opPHP, IMP, 3)
	set(0x68, "PLA", opPLA, IMP, 4)
	set(0x28, "PLP", opPLP, IMP, 4)

	// ROL / ROR
	set(0x2A, "ROL", opROL, IMP, 2)
	set(0x26, "ROL", opROL, ZP0, 5)
	set(0x36, "ROL", opROL, ZPX, 6)
	set(0x2E, "ROL", opROL, ABS, 6)
	set(0x3E, "ROL", opROL, ABX, 7)

	set(0x6A, "ROR", opROR, IMP, 2)
	set(0x66, "ROR", opROR, ZP0, 5)
	set(0x76, "ROR", opROR, ZPX, 6)
	set(0x6E, "ROR", opROR, ABS, 6)
	set(0x7E, "ROR", opROR, ABX, 7)

	// RTI / RTS
	set(0x40, "RTI", opRTI, IMP, 6)
	set(0x60, "RTS", opRTS, IMP, 6)

	// SBC
	set(0xE9, "SBC", opSBC, IMM, 2)
	set(0xE5, "SBC", opSBC, ZP0, 3)
	set(0xF5, "SBC", opSBC, ZPX, 4)
	set(0xED, "SBC", opSBC, ABS, 4)
	set(0xFD, "SBC", opSBC, ABX, 4)
	set(0xF9, "SBC", opSBC, ABY, 4)
	set(0xE1, "SBC", opSBC, IZX, 6)
	set(0xF1, "SBC", opSBC, IZY, 5)

	// STA / STX / STY
	set(0x85, "STA", opSTA, ZP0, 3)
	set(0x95, "STA", opSTA, ZPX, 4)
	set(0x8D, "STA", opSTA, ABS, 4)
	set(0x9D, "STA", opSTA, ABX, 5)
	set(0x99, "STA", opSTA, ABY, 5)
	set(0x81, "STA", opSTA, IZX, 6)
	set(0x91, "STA", opSTA, IZY, 6)

	set(0x86, "STX", opSTX, ZP0, 3)
	set(0x96, "STX", opSTX, ZPY, 4)
	set(0x8E, "STX", opSTX, ABS, 4)

	set(0x84, "STY", opSTY, ZP0, 3)
	set(0x94, "STY", opSTY, ZPX, 4)
	set(0x8C, "STY", opSTY, ABS, 4)

	// Transfers
	set(0xAA, "TAX", opTAX, IMP, 2)
	set(0xA8, "TAY", opTAY, IMP, 2)
	set(0xBA, "TSX", opTSX, IMP, 2)
	set(0x8A, "TXA", opTXA, IMP, 2)
	set(0x9A, "TXS", opTXS, IMP, 2)
	set(0x98, "TYA", opTYA, IMP, 2)

	// Illegal opcodes explicitly named by the spec: six extra-cycle NOPs...
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, "???", opNOP, ABX, 4)
	}
	// ...and 0xEB, "???" that happens to execute SBC.
	set(0xEB, "???", opSBC, IMM, 2)
}

func modeFnFor(mode AddressingMode) func(c *CPU) uint8 {
	switch mode {
	case IMP:
		return amIMP
	case IMM:
		return amIMM
	case ZP0:
		return amZP0
	case ZPX:
		return amZPX
	case ZPY:
		return amZPY
	case REL:
		return amREL
	case ABS:
		return amABS
	case ABX:
		return amABX
	case ABY:
		return amABY
	case IND:
		return amIND
	case IZX:
		return amIZX
	case IZY:
		return amIZY
	default:
		return amIMP
	}
}
