// Package debug exposes the disassembler and CPU-state printer required by
// the core's debug surface, both as plain functions and through a
// bubbletea terminal UI.
package debug

import (
	"fmt"
	"strings"

	"nescore/internal/bus"
	"nescore/internal/cpu"
)

// Listing renders count instructions starting at addr, one per line, in the
// form produced by cpu.Disassemble.
func Listing(b *bus.Bus, addr uint16, count int) string {
	lines := cpu.Disassemble(b, addr, addr+uint16(count*3))
	if len(lines) > count {
		lines = lines[:count]
	}
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = fmt.Sprintf("%04X: %s", l.Addr, l.Text)
	}
	return strings.Join(parts, "\n")
}

// StatePrinter renders the CPU register/flag line used by both the TUI and
// any plain-text debug output.
func StatePrinter(b *bus.Bus) string {
	return b.CPU.String()
}

// StackDump renders the top n bytes of the hardware stack, most recently
// pushed first.
func StackDump(b *bus.Bus, n int) string {
	var sb strings.Builder
	sp := b.CPU.SP
	for i := 0; i < n; i++ {
		addr := uint16(0x0100) + uint16(sp) + 1 + uint16(i)
		if addr > 0x01FF {
			break
		}
		fmt.Fprintf(&sb, "%02X ", b.Read(addr))
	}
	return sb.String()
}
