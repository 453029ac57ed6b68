package cpu

import (
	"fmt"
	"strings"
)

// Trace renders a single nestest-style line describing the instruction
// about to execute on c: PC, raw opcode bytes, mnemonic and a mode-specific
// operand rendering (including, for memory-addressing modes, the resolved
// effective address and the value currently there), followed by the
// register snapshot. Column widths match nestest's log format so that a
// captured run can be byte-diffed against a reference trace.
//
// Trace never mutates c and never faults: unreadable addresses (e.g. the
// PPU stub) render as 00 rather than aborting the trace.
func Trace(c *Cpu) string {
	opByte := c.peek(c.PC)
	op, known := Opcodes[opByte]
	if !known {
		return fmt.Sprintf("%04X  %02X        ???", c.PC, opByte)
	}

	raw := make([]byte, op.Length)
	for i := range raw {
		raw[i] = c.peek(c.PC + uint16(i))
	}

	return fmt.Sprintf("%04X  %-8s  %-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X",
		c.PC, traceBytes(raw), traceDisasm(c, op),
		c.A, c.X, c.Y, c.Flags.Byte(), c.SP)
}

// peek reads a byte for display purposes only; a faulting address (the PPU
// stub) reads as 0 rather than propagating an error into the tracer.
func (c *Cpu) peek(addr uint16) byte {
	b, f := c.Bus.Read8(addr)
	if f != nil {
		return 0
	}
	return b
}

func (c *Cpu) peek16(addr uint16) uint16 {
	lo := c.peek(addr)
	hi := c.peek(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// traceBytes renders up to 3 raw instruction bytes as "XX XX XX", with
// absent trailing bytes rendered as blank groups.
func traceBytes(raw []byte) string {
	groups := make([]string, 3)
	for i := range groups {
		if i < len(raw) {
			groups[i] = fmt.Sprintf("%02X", raw[i])
		} else {
			groups[i] = "  "
		}
	}
	return strings.Join(groups, " ")
}

// traceDisasm renders the mnemonic and its mode-specific operand, including
// effective-address annotations for memory-addressing modes. Trace is meant
// to be called from the observer hook, which runs before resolve() for this
// instruction, so it recomputes addressing locally instead of reading
// c.absAddr.
func traceDisasm(c *Cpu, op Opcode) string {
	pc := c.PC
	switch op.AddressingMode {
	case Implied:
		return op.Name

	case Accumulator:
		return op.Name + " A"

	case Immediate:
		return fmt.Sprintf("%s #$%02X", op.Name, c.peek(pc+1))

	case ZeroPage:
		zp := c.peek(pc + 1)
		return fmt.Sprintf("%s $%02X = %02X", op.Name, zp, c.peek(uint16(zp)))

	case ZeroPageX:
		zp := c.peek(pc + 1)
		eff := uint16(zp + c.X)
		return fmt.Sprintf("%s $%02X,X @ %02X = %02X", op.Name, zp, byte(eff), c.peek(eff))

	case ZeroPageY:
		zp := c.peek(pc + 1)
		eff := uint16(zp + c.Y)
		return fmt.Sprintf("%s $%02X,Y @ %02X = %02X", op.Name, zp, byte(eff), c.peek(eff))

	case Absolute:
		addr := c.peek16(pc + 1)
		if op.Name == "JMP" || op.Name == "JSR" {
			return fmt.Sprintf("%s $%04X", op.Name, addr)
		}
		return fmt.Sprintf("%s $%04X = %02X", op.Name, addr, c.peek(addr))

	case AbsoluteX:
		base := c.peek16(pc + 1)
		eff := base + uint16(c.X)
		return fmt.Sprintf("%s $%04X,X @ %04X = %02X", op.Name, base, eff, c.peek(eff))

	case AbsoluteY:
		base := c.peek16(pc + 1)
		eff := base + uint16(c.Y)
		return fmt.Sprintf("%s $%04X,Y @ %04X = %02X", op.Name, base, eff, c.peek(eff))

	case Indirect:
		ptr := c.peek16(pc + 1)
		return fmt.Sprintf("%s ($%04X) = %04X", op.Name, ptr, c.peek16(ptr))

	case IndirectX:
		zp := c.peek(pc + 1)
		p := zp + c.X
		addr := uint16(c.peek(uint16(p+1)))<<8 | uint16(c.peek(uint16(p)))
		return fmt.Sprintf("%s ($%02X,X) @ %02X = %04X = %02X", op.Name, zp, p, addr, c.peek(addr))

	case IndirectY:
		// Rendered consistently with the carried-forward addressing bug:
		// the "base" address is the pointer dereferenced with no offset;
		// the "effective" address is ptr+Y dereferenced, matching what
		// resolve() actually computes for execution.
		zp := c.peek(pc + 1)
		base := c.peek16(uint16(zp))
		p := zp + c.Y
		eff := uint16(c.peek(uint16(p+1)))<<8 | uint16(c.peek(uint16(p)))
		return fmt.Sprintf("%s ($%02X),Y = %04X @ %04X = %02X", op.Name, zp, base, eff, c.peek(eff))

	case Relative:
		off := c.peek(pc + 1)
		target := pc + 2 + uint16(int8(off))
		return fmt.Sprintf("%s $%04X", op.Name, target)
	}
	return op.Name
}
