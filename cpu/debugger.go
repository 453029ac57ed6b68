package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu    *Cpu
	offset uint16 // only for drawing the page table
	prevPC uint16
	fault  *Fault
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			if f := m.cpu.Step(nil); f != nil {
				m.fault = f
				return m, tea.Quit
			}
			if m.cpu.Halted {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte page as a line. The current PC is
// highlighted.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.peek(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.Flags.Negative,
		m.cpu.Flags.Overflow,
		m.cpu.Flags.Unused,
		m.cpu.Flags.Break,
		m.cpu.Flags.Decimal,
		m.cpu.Flags.Interrupt,
		m.cpu.Flags.Zero,
		m.cpu.Flags.Carry,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		m.cpu.PC,
		m.prevPC,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.SP,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	pageStart := m.cpu.PC &^ 0x0F
	offsets := []int{
		0, 16, 32, 48, 64,
		int(m.offset),
		int(pageStart),
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	opByte := m.cpu.peek(m.cpu.PC)
	op := Opcodes[opByte]

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		Trace(m.cpu),
		spew.Sdump(op),
	)
}

// Debug starts an interactive TUI that steps one instruction per keypress.
// If program is non-nil it is first loaded at offset via LoadProgram
// (the hand-assembled $0600 convention); otherwise the Cpu is debugged as
// already configured -- e.g. a cartridge already mounted on its Bus, with
// PC left at whatever Reset already resolved from the real reset vector.
func (c *Cpu) Debug(program []byte, offset uint16) {
	if program != nil {
		c.LoadProgram(program, offset)
	}

	m, err := tea.NewProgram(model{cpu: c, offset: c.PC}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.fault != nil {
		fmt.Println("Fault:", x.fault)
	}
}
