package cpu

// Handler signatures: all function signatures correspond 1:1 to a mnemonic
// from https://www.nesdev.org/obelisk-6502-guide/reference.html. Each is
// wired into Opcodes (opcodes.go) once per legal addressing-mode variant.
//
// A handler reads its operand via c.operand() and, for read-modify-write
// instructions, writes back via c.storeOperand(). Accumulator-mode variants
// (ASL/LSR/ROL/ROR) are distinguished by c.curMode, set by Step before the
// handler runs.

// operand fetches the byte the current instruction operates on: the
// Accumulator itself in Accumulator mode, otherwise the byte at c.absAddr.
func (c *Cpu) operand() (byte, *Fault) {
	if c.curMode == Accumulator {
		return c.A, nil
	}
	return c.Read8(c.absAddr)
}

// storeOperand writes back a read-modify-write result to wherever operand
// came from.
func (c *Cpu) storeOperand(b byte) *Fault {
	if c.curMode == Accumulator {
		c.A = b
		return nil
	}
	return c.Write8(c.absAddr, b)
}

// branch moves PC to the Relative-mode target when taken is true. The
// instruction's own length is added on top of this by Step's generic
// PC-advance logic only when PC was left untouched -- so a handler that
// calls branch has already opted out of that by moving PC here.
func (c *Cpu) branch(taken bool) {
	if taken {
		c.PC = c.absAddr
	}
}

// ADC - Add with Carry
func (c *Cpu) adc() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	return c.addWithCarry(m)
}

// addWithCarry implements the r = A + M + C formula shared by ADC, and by
// SBC via a bitwise-inverted operand.
func (c *Cpu) addWithCarry(m byte) *Fault {
	var carryIn uint16
	if c.Flags.Carry {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(m) + carryIn

	c.Flags.Overflow = (uint16(c.A)^sum)&(uint16(m)^sum)&0x80 != 0
	c.Flags.Carry = sum > 0xFF
	c.A = byte(sum)
	c.Flags.setZN(c.A)
	return nil
}

// AND - Logical AND
func (c *Cpu) and() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.A &= m
	c.Flags.setZN(c.A)
	return nil
}

// ASL - Arithmetic Shift Left
func (c *Cpu) asl() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.Flags.Carry = m&0x80 != 0
	m <<= 1
	c.Flags.setZN(m)
	return c.storeOperand(m)
}

// BCC - Branch if Carry Clear
func (c *Cpu) bcc() *Fault { c.branch(!c.Flags.Carry); return nil }

// BCS - Branch if Carry Set
func (c *Cpu) bcs() *Fault { c.branch(c.Flags.Carry); return nil }

// BEQ - Branch if Equal
func (c *Cpu) beq() *Fault { c.branch(c.Flags.Zero); return nil }

// BIT - Bit Test
func (c *Cpu) bit() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.Flags.Zero = c.A&m == 0
	c.Flags.Negative = m&0x80 != 0
	c.Flags.Overflow = m&0x40 != 0
	return nil
}

// BMI - Branch if Minus
func (c *Cpu) bmi() *Fault { c.branch(c.Flags.Negative); return nil }

// BNE - Branch if Not Equal
func (c *Cpu) bne() *Fault { c.branch(!c.Flags.Zero); return nil }

// BPL - Branch if Positive
func (c *Cpu) bpl() *Fault { c.branch(!c.Flags.Negative); return nil }

// BRK - Force Interrupt. Current policy: halt the run rather than push
// PC/P and vector through $FFFE (spec non-goal: interrupt delivery).
func (c *Cpu) brk() *Fault { return nil }

// BVC - Branch if Overflow Clear
func (c *Cpu) bvc() *Fault { c.branch(!c.Flags.Overflow); return nil }

// BVS - Branch if Overflow Set
func (c *Cpu) bvs() *Fault { c.branch(c.Flags.Overflow); return nil }

// CLC - Clear Carry Flag
func (c *Cpu) clc() *Fault { c.Flags.Carry = false; return nil }

// CLD - Clear Decimal Mode
func (c *Cpu) cld() *Fault { c.Flags.Decimal = false; return nil }

// CLI - Clear Interrupt Disable
func (c *Cpu) cli() *Fault { c.Flags.Interrupt = false; return nil }

// CLV - Clear Overflow Flag
func (c *Cpu) clv() *Fault { c.Flags.Overflow = false; return nil }

// compare is the shared CMP/CPX/CPY rule: reg - operand, discarding the
// result but setting C/Z/N as if it had been computed.
func (c *Cpu) compare(reg byte) *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.Flags.Carry = reg >= m
	c.Flags.setZN(reg - m)
	return nil
}

// CMP - Compare
func (c *Cpu) cmp() *Fault { return c.compare(c.A) }

// CPX - Compare X Register
func (c *Cpu) cpx() *Fault { return c.compare(c.X) }

// CPY - Compare Y Register
func (c *Cpu) cpy() *Fault { return c.compare(c.Y) }

// DEC - Decrement Memory. Flags are set from the post-decrement value.
func (c *Cpu) dec() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	m--
	c.Flags.setZN(m)
	return c.storeOperand(m)
}

// DEX - Decrement X Register
func (c *Cpu) dex() *Fault {
	c.X--
	c.Flags.setZN(c.X)
	return nil
}

// DEY - Decrement Y Register
func (c *Cpu) dey() *Fault {
	c.Y--
	c.Flags.setZN(c.Y)
	return nil
}

// EOR - Exclusive OR
func (c *Cpu) eor() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.A ^= m
	c.Flags.setZN(c.A)
	return nil
}

// INC - Increment Memory. Flags are set from the post-increment value.
func (c *Cpu) inc() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	m++
	c.Flags.setZN(m)
	return c.storeOperand(m)
}

// INX - Increment X Register
func (c *Cpu) inx() *Fault {
	c.X++
	c.Flags.setZN(c.X)
	return nil
}

// INY - Increment Y Register
func (c *Cpu) iny() *Fault {
	c.Y++
	c.Flags.setZN(c.Y)
	return nil
}

// JMP - Jump
func (c *Cpu) jmp() *Fault {
	c.PC = c.absAddr
	return nil
}

// JSR - Jump to Subroutine. Pushes the address of the last byte of the JSR
// instruction (PC + length - 1 == PC + 2, since PC still points at the
// opcode byte and JSR is 3 bytes long), high byte first.
func (c *Cpu) jsr() *Fault {
	if f := c.pushWord(c.PC + 2); f != nil {
		return f
	}
	c.PC = c.absAddr
	return nil
}

// LDA - Load Accumulator
func (c *Cpu) lda() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.A = m
	c.Flags.setZN(c.A)
	return nil
}

// LDX - Load X Register
func (c *Cpu) ldx() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.X = m
	c.Flags.setZN(c.X)
	return nil
}

// LDY - Load Y Register
func (c *Cpu) ldy() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.Y = m
	c.Flags.setZN(c.Y)
	return nil
}

// LSR - Logical Shift Right
func (c *Cpu) lsr() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.Flags.Carry = m&0x01 != 0
	m >>= 1
	c.Flags.setZN(m)
	return c.storeOperand(m)
}

// NOP - No Operation
func (c *Cpu) nop() *Fault { return nil }

// ORA - Logical Inclusive OR
func (c *Cpu) ora() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	c.A |= m
	c.Flags.setZN(c.A)
	return nil
}

// PHA - Push Accumulator
func (c *Cpu) pha() *Fault { return c.push(c.A) }

// PHP - Push Processor Status, with B and the unused bit forced to 1.
func (c *Cpu) php() *Fault { return c.push(c.Flags.pushed()) }

// PLA - Pull Accumulator
func (c *Cpu) pla() *Fault {
	b, f := c.pull()
	if f != nil {
		return f
	}
	c.A = b
	c.Flags.setZN(c.A)
	return nil
}

// PLP - Pull Processor Status
func (c *Cpu) plp() *Fault {
	b, f := c.pull()
	if f != nil {
		return f
	}
	c.Flags.setFromPulled(b)
	return nil
}

// ROL - Rotate Left
func (c *Cpu) rol() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	oldCarry := c.Flags.Carry
	c.Flags.Carry = m&0x80 != 0
	m <<= 1
	if oldCarry {
		m |= 0x01
	}
	c.Flags.setZN(m)
	return c.storeOperand(m)
}

// ROR - Rotate Right
func (c *Cpu) ror() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	oldCarry := c.Flags.Carry
	c.Flags.Carry = m&0x01 != 0
	m >>= 1
	if oldCarry {
		m |= 0x80
	}
	c.Flags.setZN(m)
	return c.storeOperand(m)
}

// RTI - Return from Interrupt
func (c *Cpu) rti() *Fault {
	b, f := c.pull()
	if f != nil {
		return f
	}
	c.Flags.setFromPulled(b)
	pc, f := c.pullWord()
	if f != nil {
		return f
	}
	c.PC = pc
	return nil
}

// RTS - Return from Subroutine
func (c *Cpu) rts() *Fault {
	pc, f := c.pullWord()
	if f != nil {
		return f
	}
	c.PC = pc + 1
	return nil
}

// SBC - Subtract with Carry, implemented as ADC with the operand inverted.
func (c *Cpu) sbc() *Fault {
	m, f := c.operand()
	if f != nil {
		return f
	}
	return c.addWithCarry(^m)
}

// SEC - Set Carry Flag
func (c *Cpu) sec() *Fault { c.Flags.Carry = true; return nil }

// SED - Set Decimal Flag
func (c *Cpu) sed() *Fault { c.Flags.Decimal = true; return nil }

// SEI - Set Interrupt Disable
func (c *Cpu) sei() *Fault { c.Flags.Interrupt = true; return nil }

// STA - Store Accumulator
func (c *Cpu) sta() *Fault { return c.Write8(c.absAddr, c.A) }

// STX - Store X Register
func (c *Cpu) stx() *Fault { return c.Write8(c.absAddr, c.X) }

// STY - Store Y Register
func (c *Cpu) sty() *Fault { return c.Write8(c.absAddr, c.Y) }

// TAX - Transfer Accumulator to X
func (c *Cpu) tax() *Fault {
	c.X = c.A
	c.Flags.setZN(c.X)
	return nil
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) tay() *Fault {
	c.Y = c.A
	c.Flags.setZN(c.Y)
	return nil
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) tsx() *Fault {
	c.X = c.SP
	c.Flags.setZN(c.X)
	return nil
}

// TXA - Transfer X to Accumulator
func (c *Cpu) txa() *Fault {
	c.A = c.X
	c.Flags.setZN(c.A)
	return nil
}

// TXS - Transfer X to Stack Pointer. Unlike TSX, this does not touch Z/N.
func (c *Cpu) txs() *Fault { c.SP = c.X; return nil }

// TYA - Transfer Y to Accumulator
func (c *Cpu) tya() *Fault {
	c.A = c.Y
	c.Flags.setZN(c.A)
	return nil
}
