package debug

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nescore/internal/bus"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	pcLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
)

// TUI is a bubbletea.Model wrapping a *bus.Bus: a disassembly window
// centered on PC, the register/flags line, and the last three stack bytes.
// Keys: s single-steps one instruction, f runs until the current frame
// completes, r resets the bus, q quits.
type TUI struct {
	Bus     *bus.Bus
	err     error
	quitted bool
}

// NewTUI creates a debugger model over an already-reset bus.
func NewTUI(b *bus.Bus) TUI { return TUI{Bus: b} }

// Init implements tea.Model.
func (m TUI) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quitted = true
		return m, tea.Quit
	case "s":
		// Finish the in-flight instruction (or reset delay), then tick until
		// the CPU has fetched and executed the next one.
		for !m.Bus.CPU.Complete() {
			m.Bus.Tick()
		}
		for m.Bus.CPU.Complete() {
			m.Bus.Tick()
		}
	case "f":
		m.Bus.PPU.ClearFrameComplete()
		for !m.Bus.PPU.FrameComplete() {
			m.Bus.Tick()
		}
	case "r":
		m.Bus.Reset()
	}
	return m, nil
}

// View implements tea.Model.
func (m TUI) View() string {
	if m.quitted {
		return ""
	}
	disasm := boxStyle.Render(headerStyle.Render("disassembly") + "\n" +
		Listing(m.Bus, centeredStart(m.Bus.CPU.PC), 16))
	state := boxStyle.Render(headerStyle.Render("registers") + "\n" +
		pcLineStyle.Render(StatePrinter(m.Bus)) + "\n\n" +
		headerStyle.Render("stack") + "\n" + StackDump(m.Bus, 3))
	footer := "s: step  f: frame  r: reset  q: quit"
	if m.err != nil {
		footer = fmt.Sprintf("error: %v  |  %s", m.err, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, disasm, state),
		footer,
	)
}

// centeredStart picks a disassembly window start a few bytes behind pc so
// the current instruction lands comfortably inside the listing.
func centeredStart(pc uint16) uint16 {
	if pc < 0x10 {
		return 0
	}
	return pc - 0x10
}
