package cpu

// resolve computes the effective address for mode, advancing PC past the
// operand bytes, and stashes the result in c.absAddr. An AbsoluteX/AbsoluteY
// address that crosses a page from its base sets c.pageCrossed, which Step
// turns into an extra cycle for read instructions. IndirectY never sets it:
// Y is added to the pointer, not to a base address.
//
// Instruction handlers never read the operand bytes themselves; they read
// or write c.absAddr (or, for Accumulator/Implied, the Accumulator/nothing
// at all).
func (c *Cpu) resolve(mode AddressingMode) {
	switch mode {
	case Implied:
		// nothing to fetch

	case Accumulator:
		// the operand is the Accumulator itself; handlers check the mode

	case Immediate:
		c.absAddr = c.PC + 1

	case ZeroPage:
		b, _ := c.Read8(c.PC + 1)
		c.absAddr = uint16(b)

	case ZeroPageX:
		b, _ := c.Read8(c.PC + 1)
		c.absAddr = uint16(b + c.X)

	case ZeroPageY:
		b, _ := c.Read8(c.PC + 1)
		c.absAddr = uint16(b + c.Y)

	case Absolute:
		w, _ := c.Read16(c.PC + 1)
		c.absAddr = w

	case AbsoluteX:
		base, _ := c.Read16(c.PC + 1)
		c.absAddr = base + uint16(c.X)
		c.pageCrossed = samePage(base, c.absAddr) == false

	case AbsoluteY:
		base, _ := c.Read16(c.PC + 1)
		c.absAddr = base + uint16(c.Y)
		c.pageCrossed = samePage(base, c.absAddr) == false

	case Indirect:
		// JMP (ind) only. Unlike the authentic 6502, the pointer fetch
		// does not reproduce the low-byte page-wrap bug; see the
		// non-goal in spec.md.
		ptr, _ := c.Read16(c.PC + 1)
		w, _ := c.Read16(ptr)
		c.absAddr = w

	case IndirectX:
		zp, _ := c.Read8(c.PC + 1)
		ptr := zp + c.X // zero-page wrap
		lo, _ := c.Read8(uint16(ptr))
		hi, _ := c.Read8(uint16(ptr + 1))
		c.absAddr = uint16(hi)<<8 | uint16(lo)

	case IndirectY:
		// Known carried-forward behavior: Y is added to the zero-page
		// pointer before dereferencing, the same way IndirectX adds X,
		// rather than to the final dereferenced address. This matches
		// the upstream source this core is modeled on; it is not the
		// textbook (Indirect),Y rule and is deliberately not "fixed".
		zp, _ := c.Read8(c.PC + 1)
		ptr := zp + c.Y
		lo, _ := c.Read8(uint16(ptr))
		hi, _ := c.Read8(uint16(ptr + 1))
		c.absAddr = uint16(hi)<<8 | uint16(lo)

	case Relative:
		off, _ := c.Read8(c.PC + 1)
		base := c.PC + 2 // relative to the byte following the branch
		c.absAddr = base + uint16(int8(off))
	}
}

func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}
