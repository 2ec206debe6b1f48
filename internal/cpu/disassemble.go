package cpu

import "fmt"

// Line is one disassembled instruction, anchored to the address it starts
// at, for the debug TUI's scrolling listing.
type Line struct {
	Addr uint16
	Text string
}

// Disassemble decodes every instruction between start and stop (inclusive of
// start, exclusive once the cursor passes stop) using bus for operand bytes.
// It never executes anything — cursor advance is purely operand-length based
// on the addressing mode, mirroring Tick's own PC increments.
func Disassemble(bus Bus, start, stop uint16) []Line {
	var lines []Line
	addr := uint32(start)

	var table [256]instruction
	(&CPU{}).buildTableInto(&table)

	for addr <= uint32(stop) {
		lineAddr := uint16(addr)
		opcode := bus.Read(uint16(addr))
		addr++

		inst := table[opcode]
		text := inst.name + " "

		switch inst.mode {
		case IMP:
			text += ""
		case IMM:
			lo := bus.Read(uint16(addr))
			addr++
			text += fmt.Sprintf("#$%02X", lo)
		case ZP0:
			lo := bus.Read(uint16(addr))
			addr++
			text += fmt.Sprintf("$%02X", lo)
		case ZPX:
			lo := bus.Read(uint16(addr))
			addr++
			text += fmt.Sprintf("$%02X,X", lo)
		case ZPY:
			lo := bus.Read(uint16(addr))
			addr++
			text += fmt.Sprintf("$%02X,Y", lo)
		case IZX:
			lo := bus.Read(uint16(addr))
			addr++
			text += fmt.Sprintf("($%02X,X)", lo)
		case IZY:
			lo := bus.Read(uint16(addr))
			addr++
			text += fmt.Sprintf("($%02X),Y", lo)
		case ABS:
			lo := uint16(bus.Read(uint16(addr)))
			addr++
			hi := uint16(bus.Read(uint16(addr)))
			addr++
			text += fmt.Sprintf("$%04X", hi<<8|lo)
		case ABX:
			lo := uint16(bus.Read(uint16(addr)))
			addr++
			hi := uint16(bus.Read(uint16(addr)))
			addr++
			text += fmt.Sprintf("$%04X,X", hi<<8|lo)
		case ABY:
			lo := uint16(bus.Read(uint16(addr)))
			addr++
			hi := uint16(bus.Read(uint16(addr)))
			addr++
			text += fmt.Sprintf("$%04X,Y", hi<<8|lo)
		case IND:
			lo := uint16(bus.Read(uint16(addr)))
			addr++
			hi := uint16(bus.Read(uint16(addr)))
			addr++
			text += fmt.Sprintf("($%04X)", hi<<8|lo)
		case REL:
			rel := bus.Read(uint16(addr))
			addr++
			target := lineAddr + 2
			if rel&0x80 != 0 {
				target += uint16(rel) | 0xFF00
			} else {
				target += uint16(rel)
			}
			text += fmt.Sprintf("$%02X [$%04X]", rel, target)
		}

		text += fmt.Sprintf(" {%s}", modeNames[inst.mode])
		lines = append(lines, Line{Addr: lineAddr, Text: text})
	}

	return lines
}

// buildTableInto exposes the opcode table to Disassemble without requiring a
// live, reset CPU — disassembly never executes operation functions.
func (c *CPU) buildTableInto(dst *[256]instruction) {
	c.buildTable()
	*dst = c.table
}
