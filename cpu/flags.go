package cpu

import "gones/mask"

// Flags are the eight bits of the 6502 status (P) register.
//
// 7654 3210
// NV1B DIZC
//
// Unused is bit 5 and is always 1 in any byte actually pushed to or pulled
// from the stack; Break (bit 4) is only meaningful in a pushed copy -- it is
// not a real flip-flop on the chip.
type Flags struct {
	Negative  bool // N, bit 7
	Overflow  bool // V, bit 6
	Unused    bool // bit 5, always 1 when materialized as a byte
	Break     bool // B, bit 4
	Decimal   bool // D, bit 3; unused by the NES CPU, carried for fidelity
	Interrupt bool // I, bit 2
	Zero      bool // Z, bit 1
	Carry     bool // C, bit 0
}

// byte positions in mask's 1-indexed-from-MSB scheme line up exactly with
// the N V _ B D I Z C bit order above: I1 is bit 7, I8 is bit 0.
const (
	posNegative  = mask.I1
	posOverflow  = mask.I2
	posUnused    = mask.I3
	posBreak     = mask.I4
	posDecimal   = mask.I5
	posInterrupt = mask.I6
	posZero      = mask.I7
	posCarry     = mask.I8
)

// Byte packs the flags into the P-register form. mask.Set only ever turns a
// bit on, which is exactly what's needed here: b starts at zero, so an unset
// flag is already correctly represented by doing nothing.
func (f Flags) Byte() byte {
	var b byte
	if f.Negative {
		b = mask.Set(b, posNegative, 1)
	}
	if f.Overflow {
		b = mask.Set(b, posOverflow, 1)
	}
	if f.Unused {
		b = mask.Set(b, posUnused, 1)
	}
	if f.Break {
		b = mask.Set(b, posBreak, 1)
	}
	if f.Decimal {
		b = mask.Set(b, posDecimal, 1)
	}
	if f.Interrupt {
		b = mask.Set(b, posInterrupt, 1)
	}
	if f.Zero {
		b = mask.Set(b, posZero, 1)
	}
	if f.Carry {
		b = mask.Set(b, posCarry, 1)
	}
	return b
}

// SetByte unpacks a P-register byte into f.
func (f *Flags) SetByte(b byte) {
	f.Negative = mask.IsSet(b, posNegative)
	f.Overflow = mask.IsSet(b, posOverflow)
	f.Unused = mask.IsSet(b, posUnused)
	f.Break = mask.IsSet(b, posBreak)
	f.Decimal = mask.IsSet(b, posDecimal)
	f.Interrupt = mask.IsSet(b, posInterrupt)
	f.Zero = mask.IsSet(b, posZero)
	f.Carry = mask.IsSet(b, posCarry)
}

// pushed is the byte representation used when PHP (and the nmi/irq helpers)
// push P to the stack:
// B and the unused bit are forced to 1, per the standard 6502 "pushed P"
// form.
func (f Flags) pushed() byte {
	pushable := f
	pushable.Break = true
	pushable.Unused = true
	return pushable.Byte()
}

// setFromPulled unpacks a byte pulled from the stack (PLP/RTI): the unused
// bit is forced to 1 and B is cleared, since B is never a real register bit.
func (f *Flags) setFromPulled(b byte) {
	f.SetByte(b)
	f.Unused = true
	f.Break = false
}

// setZN sets Zero and Negative from a byte result, the rule shared by every
// load, transfer, arithmetic, logical, inc/dec, shift/rotate, and
// accumulator-targeted pull.
func (f *Flags) setZN(result byte) {
	f.Zero = result == 0
	f.Negative = result&0x80 != 0
}
