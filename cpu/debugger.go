package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sixtyfive02/mem"
)

// bus is the subset of *mem.Bus the debugger needs; declared here instead of
// imported as a type so the debugger can be pointed at anything with the
// same two methods (a test fake, say) without mem growing an interface it
// otherwise has no use for.
type bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

var _ bus = (*mem.Bus)(nil)

// model drives the CPU one tick at a time, performing the bus transaction
// each tick requests exactly the way a real host loop would -- reading from
// the device map on a read cycle, writing to it on a write cycle -- before
// feeding the resulting Pins back in on the next tick.
type model struct {
	cpu *CPU
	bus bus

	pins   Pins
	cycles uint64
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.step()
		}
	}
	return m, nil
}

func (m *model) step() {
	m.prevPC = m.cpu.PC
	out := m.cpu.Tick(m.pins)
	if out.RW == Read {
		out.Data = m.bus.Read(out.Address)
	} else {
		m.bus.Write(out.Address, out.Data)
	}
	m.pins = out
	m.pins.Res = false // release the reset line after the first sample
	m.cycles++
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.bus.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	sr := m.cpu.Status()
	var flags string
	for _, bit := range []byte{flagN, flagV, flagX, flagB, flagD, flagI, flagZ, flagC} {
		if sr&bit != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
cycle: %d
PC: %04x (was %04x)
 M: %02x
AC: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		m.cycles, m.cpu.PC, m.prevPC, m.cpu.M, m.cpu.AC, m.cpu.X, m.cpu.Y, m.cpu.SP,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}
	base := m.cpu.PC &^ 0xF
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(uint16(int(base)+i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	opcode := m.bus.Read(m.cpu.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		fmt.Sprintf("next: %s", Opcodes[opcode].Mnemonic),
		spew.Sdump(m.cpu),
	)
}

// Debug starts an interactive TUI inspector against an already-assembled
// bus; the caller is responsible for having loaded whatever program it wants
// to step through into that bus's RAM/ROM before calling this.
func Debug(c *CPU, b bus) error {
	_, err := tea.NewProgram(model{cpu: c, bus: b, pins: NewPins()}).Run()
	return err
}
