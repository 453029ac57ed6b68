// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES.
package cpu

import (
	"gones/mem"
)

// The Cpu has no memory of its own besides its registers; it drives memory
// through a Bus it does not own.
//
// https://www.nesdev.org/wiki/CPU_registers
//
// 7654 3210
// NV1B DIZC
type Cpu struct {
	Bus *mem.Bus

	A  byte // Accumulator
	X  byte
	Y  byte
	SP byte // offset into the $0100 stack page
	PC uint16

	Flags Flags

	// Halted is true once BRK or a fatal Fault has stopped the run. It is
	// terminal: Step refuses to execute further once set.
	Halted bool

	// Cycles is the running total of elapsed cycles, including any extra
	// cycle from a taken branch or a page-crossing indexed read. Not used to gate
	// timing -- Step executes a whole instruction per call -- but exposed
	// for callers that want to account for them (e.g. a future PPU sync).
	Cycles uint64

	// absAddr, curMode and pageCrossed are scratch state set by Step and
	// resolve() for the instruction currently executing, consumed by the
	// handler and by Step's extra-cycle accounting.
	absAddr     uint16
	curMode     AddressingMode
	pageCrossed bool
}

// NewCpu constructs a Cpu over bus and immediately resets it.
func NewCpu(bus *mem.Bus) *Cpu {
	c := &Cpu{Bus: bus}
	c.Reset()
	return c
}

// Read8 and Write8 forward to the Bus, converting a mem.Fault into a
// cpu.Fault stamped with the current PC.
func (c *Cpu) Read8(addr uint16) (byte, *Fault) {
	b, f := c.Bus.Read8(addr)
	if f != nil {
		return 0, busFault(f, c.PC)
	}
	return b, nil
}

func (c *Cpu) Write8(addr uint16, data byte) *Fault {
	if f := c.Bus.Write8(addr, data); f != nil {
		return busFault(f, c.PC)
	}
	return nil
}

func (c *Cpu) Read16(addr uint16) (uint16, *Fault) {
	w, f := c.Bus.Read16(addr)
	if f != nil {
		return 0, busFault(f, c.PC)
	}
	return w, nil
}

func (c *Cpu) Write16(addr uint16, data uint16) *Fault {
	if f := c.Bus.Write16(addr, data); f != nil {
		return busFault(f, c.PC)
	}
	return nil
}

// push and pull drive the $0100-page hardware stack. Push decrements SP
// after the write; pull increments SP before the read. Both wrap at 8 bits.
func (c *Cpu) push(b byte) *Fault {
	f := c.Write8(0x0100|uint16(c.SP), b)
	c.SP--
	return f
}

func (c *Cpu) pull() (byte, *Fault) {
	c.SP++
	return c.Read8(0x0100 | uint16(c.SP))
}

func (c *Cpu) pushWord(w uint16) *Fault {
	if f := c.push(byte(w >> 8)); f != nil {
		return f
	}
	return c.push(byte(w))
}

func (c *Cpu) pullWord() (uint16, *Fault) {
	lo, f := c.pull()
	if f != nil {
		return 0, f
	}
	hi, f := c.pull()
	if f != nil {
		return 0, f
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Reset reinitializes registers and loads PC from the reset vector at
// $FFFC. RAM and ROM are left untouched.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Flags = Flags{Unused: true, Interrupt: true}
	c.Halted = false
	c.Cycles = 0

	pc, f := c.Read16(0xFFFC)
	if f != nil {
		// The reset vector lives in the PRG-ROM window. If it cannot be
		// read, halt rather than run from garbage.
		c.Halted = true
		return
	}
	c.PC = pc
}

// LoadProgram writes program into RAM at addr and rewrites the reset vector
// to point at it -- the hand-assembled test-program convention: programs
// live at $0600 and $FFFC is steered there instead of wherever the
// cartridge's own vector points.
func (c *Cpu) LoadProgram(program []byte, addr uint16) {
	for i, b := range program {
		c.Bus.Write8(addr+uint16(i), b)
	}
	c.Bus.SetResetVector(addr)
	c.Reset()
}

// fetchOpcode reads the byte at PC and looks it up in Opcodes. An unknown
// byte is a fatal decode Fault.
func (c *Cpu) fetchOpcode() (Opcode, *Fault) {
	b, f := c.Read8(c.PC)
	if f != nil {
		return Opcode{}, f
	}
	op, known := Opcodes[b]
	if !known {
		return Opcode{}, decodeFault(b, c.PC)
	}
	return op, nil
}

// Step executes exactly one instruction: observer hook, fetch, resolve
// operand address, dispatch, advance PC (unless the handler already moved
// it), account cycles. It returns a non-nil Fault when a fatal condition
// (unknown opcode, illegal bus access) has Halted the run in this step.
// BRK also sets Halted, but returns nil.
func (c *Cpu) Step(observer func(*Cpu)) *Fault {
	if c.Halted {
		return nil
	}
	if observer != nil {
		observer(c)
	}

	op, f := c.fetchOpcode()
	if f != nil {
		c.Halted = true
		return f
	}

	startPC := c.PC
	c.pageCrossed = false
	c.curMode = op.AddressingMode
	c.resolve(op.AddressingMode)

	if f := op.Instruction(c); f != nil {
		c.Halted = true
		return f
	}

	// A handler that redirected control flow (branch taken, JMP, JSR,
	// RTS, RTI) has already moved PC; only advance by length when PC is
	// still where fetch left it.
	moved := c.PC != startPC
	if !moved {
		c.PC += uint16(op.Length)
	}

	c.Cycles += uint64(op.Cycles)
	if c.pageCrossed {
		switch op.Name {
		case "STA", "ASL", "LSR", "ROL", "ROR", "INC", "DEC":
			// stores and read-modify-write: indexing cost is in the base count
		default:
			c.Cycles++
		}
	}
	if op.AddressingMode == Relative && moved {
		c.Cycles++ // branch taken
	}

	if op.Name == "BRK" {
		c.Halted = true
	}
	return nil
}

// Run drives Step in a loop, invoking observer before every instruction,
// until the Cpu halts or a Fault terminates the run.
func (c *Cpu) Run(observer func(*Cpu)) *Fault {
	for !c.Halted {
		if f := c.Step(observer); f != nil {
			return f
		}
	}
	return nil
}

// nmi and irq push PC and P and vector through $FFFA/$FFFE. Interrupt
// delivery is out of scope for the run loop (Run/Step never call these),
// but they are kept -- and exercised by tests -- as the plumbing a future
// PPU vblank signal or mapper IRQ would hook into.
func (c *Cpu) nmi() *Fault {
	if f := c.pushWord(c.PC); f != nil {
		return f
	}
	if f := c.push(c.Flags.pushed()); f != nil {
		return f
	}
	c.Flags.Interrupt = true
	vec, f := c.Read16(0xFFFA)
	if f != nil {
		return f
	}
	c.PC = vec
	c.Cycles += 7
	return nil
}

func (c *Cpu) irq() *Fault {
	if c.Flags.Interrupt {
		return nil
	}
	if f := c.pushWord(c.PC); f != nil {
		return f
	}
	if f := c.push(c.Flags.pushed()); f != nil {
		return f
	}
	c.Flags.Interrupt = true
	vec, f := c.Read16(0xFFFE)
	if f != nil {
		return f
	}
	c.PC = vec
	c.Cycles += 7
	return nil
}
