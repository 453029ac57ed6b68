package cpu

// An AddressingMode tells the Cpu where to find the operand for a given
// instruction. There are 13 possible modes; see resolve() in addressing.go.
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand; also covers BRK
	Accumulator                       // operand is the Accumulator itself
	Immediate                         // operand is the byte at PC+1
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect  // JMP only
	IndirectX // (Indirect,X)
	IndirectY // (Indirect),Y
	Relative  // branches only
)

// handlerFunc executes one instruction. It reads/writes registers and
// memory through c, and returns a non-nil Fault if the instruction's memory
// access was illegal (e.g. a store into PRG-ROM). With the sole exception of
// instructions that redirect control flow (JMP, JSR, RTS, RTI, and a taken
// branch), handlers never touch c.PC directly -- Step advances it by
// op.Length once the handler returns.
type handlerFunc func(c *Cpu) *Fault

// An Opcode is the static descriptor for one of the 256 possible opcode
// byte values: its mnemonic, instruction length in bytes (opcode plus
// operand), base cycle count,
// addressing mode, and the handler that executes it.
type Opcode struct {
	Name           string
	Length         byte
	Cycles         byte
	AddressingMode AddressingMode
	Instruction    handlerFunc
}

// Opcodes is the single source of truth mapping an opcode byte to its
// descriptor. The execution engine never hard-codes a mnemonic's length or
// addressing mode outside this table. Unrecognized bytes (including every
// undocumented/illegal opcode) are simply absent -- a lookup miss is a fatal
// decode fault, per spec.
var Opcodes = map[byte]Opcode{
	0x69: {Name: "ADC", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).adc},
	0x65: {Name: "ADC", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).adc},
	0x75: {Name: "ADC", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).adc},
	0x6D: {Name: "ADC", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).adc},
	0x7D: {Name: "ADC", Length: 3, Cycles: 4, AddressingMode: AbsoluteX, Instruction: (*Cpu).adc},
	0x79: {Name: "ADC", Length: 3, Cycles: 4, AddressingMode: AbsoluteY, Instruction: (*Cpu).adc},
	0x61: {Name: "ADC", Length: 2, Cycles: 6, AddressingMode: IndirectX, Instruction: (*Cpu).adc},
	0x71: {Name: "ADC", Length: 2, Cycles: 5, AddressingMode: IndirectY, Instruction: (*Cpu).adc},

	0x29: {Name: "AND", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).and},
	0x25: {Name: "AND", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).and},
	0x35: {Name: "AND", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).and},
	0x2D: {Name: "AND", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).and},
	0x3D: {Name: "AND", Length: 3, Cycles: 4, AddressingMode: AbsoluteX, Instruction: (*Cpu).and},
	0x39: {Name: "AND", Length: 3, Cycles: 4, AddressingMode: AbsoluteY, Instruction: (*Cpu).and},
	0x21: {Name: "AND", Length: 2, Cycles: 6, AddressingMode: IndirectX, Instruction: (*Cpu).and},
	0x31: {Name: "AND", Length: 2, Cycles: 5, AddressingMode: IndirectY, Instruction: (*Cpu).and},

	0x0A: {Name: "ASL", Length: 1, Cycles: 2, AddressingMode: Accumulator, Instruction: (*Cpu).asl},
	0x06: {Name: "ASL", Length: 2, Cycles: 5, AddressingMode: ZeroPage, Instruction: (*Cpu).asl},
	0x16: {Name: "ASL", Length: 2, Cycles: 6, AddressingMode: ZeroPageX, Instruction: (*Cpu).asl},
	0x0E: {Name: "ASL", Length: 3, Cycles: 6, AddressingMode: Absolute, Instruction: (*Cpu).asl},
	0x1E: {Name: "ASL", Length: 3, Cycles: 7, AddressingMode: AbsoluteX, Instruction: (*Cpu).asl},

	0x90: {Name: "BCC", Length: 2, Cycles: 2, AddressingMode: Relative, Instruction: (*Cpu).bcc},
	0xB0: {Name: "BCS", Length: 2, Cycles: 2, AddressingMode: Relative, Instruction: (*Cpu).bcs},
	0xF0: {Name: "BEQ", Length: 2, Cycles: 2, AddressingMode: Relative, Instruction: (*Cpu).beq},

	0x24: {Name: "BIT", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).bit},
	0x2C: {Name: "BIT", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).bit},

	0x30: {Name: "BMI", Length: 2, Cycles: 2, AddressingMode: Relative, Instruction: (*Cpu).bmi},
	0xD0: {Name: "BNE", Length: 2, Cycles: 2, AddressingMode: Relative, Instruction: (*Cpu).bne},
	0x10: {Name: "BPL", Length: 2, Cycles: 2, AddressingMode: Relative, Instruction: (*Cpu).bpl},

	0x00: {Name: "BRK", Length: 1, Cycles: 7, AddressingMode: Implied, Instruction: (*Cpu).brk},

	0x50: {Name: "BVC", Length: 2, Cycles: 2, AddressingMode: Relative, Instruction: (*Cpu).bvc},
	0x70: {Name: "BVS", Length: 2, Cycles: 2, AddressingMode: Relative, Instruction: (*Cpu).bvs},

	0x18: {Name: "CLC", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).clc},
	0xD8: {Name: "CLD", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).cld},
	0x58: {Name: "CLI", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).cli},
	0xB8: {Name: "CLV", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).clv},

	0xC9: {Name: "CMP", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).cmp},
	0xC5: {Name: "CMP", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).cmp},
	0xD5: {Name: "CMP", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).cmp},
	0xCD: {Name: "CMP", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).cmp},
	0xDD: {Name: "CMP", Length: 3, Cycles: 4, AddressingMode: AbsoluteX, Instruction: (*Cpu).cmp},
	0xD9: {Name: "CMP", Length: 3, Cycles: 4, AddressingMode: AbsoluteY, Instruction: (*Cpu).cmp},
	0xC1: {Name: "CMP", Length: 2, Cycles: 6, AddressingMode: IndirectX, Instruction: (*Cpu).cmp},
	0xD1: {Name: "CMP", Length: 2, Cycles: 5, AddressingMode: IndirectY, Instruction: (*Cpu).cmp},

	0xE0: {Name: "CPX", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).cpx},
	0xE4: {Name: "CPX", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).cpx},
	0xEC: {Name: "CPX", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).cpx},

	0xC0: {Name: "CPY", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).cpy},
	0xC4: {Name: "CPY", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).cpy},
	0xCC: {Name: "CPY", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).cpy},

	0xC6: {Name: "DEC", Length: 2, Cycles: 5, AddressingMode: ZeroPage, Instruction: (*Cpu).dec},
	0xD6: {Name: "DEC", Length: 2, Cycles: 6, AddressingMode: ZeroPageX, Instruction: (*Cpu).dec},
	0xCE: {Name: "DEC", Length: 3, Cycles: 6, AddressingMode: Absolute, Instruction: (*Cpu).dec},
	0xDE: {Name: "DEC", Length: 3, Cycles: 7, AddressingMode: AbsoluteX, Instruction: (*Cpu).dec},

	0xCA: {Name: "DEX", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).dex},
	0x88: {Name: "DEY", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).dey},

	0x49: {Name: "EOR", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).eor},
	0x45: {Name: "EOR", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).eor},
	0x55: {Name: "EOR", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).eor},
	0x4D: {Name: "EOR", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).eor},
	0x5D: {Name: "EOR", Length: 3, Cycles: 4, AddressingMode: AbsoluteX, Instruction: (*Cpu).eor},
	0x59: {Name: "EOR", Length: 3, Cycles: 4, AddressingMode: AbsoluteY, Instruction: (*Cpu).eor},
	0x41: {Name: "EOR", Length: 2, Cycles: 6, AddressingMode: IndirectX, Instruction: (*Cpu).eor},
	0x51: {Name: "EOR", Length: 2, Cycles: 5, AddressingMode: IndirectY, Instruction: (*Cpu).eor},

	0xE6: {Name: "INC", Length: 2, Cycles: 5, AddressingMode: ZeroPage, Instruction: (*Cpu).inc},
	0xF6: {Name: "INC", Length: 2, Cycles: 6, AddressingMode: ZeroPageX, Instruction: (*Cpu).inc},
	0xEE: {Name: "INC", Length: 3, Cycles: 6, AddressingMode: Absolute, Instruction: (*Cpu).inc},
	0xFE: {Name: "INC", Length: 3, Cycles: 7, AddressingMode: AbsoluteX, Instruction: (*Cpu).inc},

	0xE8: {Name: "INX", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).inx},
	0xC8: {Name: "INY", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).iny},

	0x4C: {Name: "JMP", Length: 3, Cycles: 3, AddressingMode: Absolute, Instruction: (*Cpu).jmp},
	0x6C: {Name: "JMP", Length: 3, Cycles: 5, AddressingMode: Indirect, Instruction: (*Cpu).jmp},

	0x20: {Name: "JSR", Length: 3, Cycles: 6, AddressingMode: Absolute, Instruction: (*Cpu).jsr},

	0xA9: {Name: "LDA", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).lda},
	0xA5: {Name: "LDA", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).lda},
	0xB5: {Name: "LDA", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).lda},
	0xAD: {Name: "LDA", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).lda},
	0xBD: {Name: "LDA", Length: 3, Cycles: 4, AddressingMode: AbsoluteX, Instruction: (*Cpu).lda},
	0xB9: {Name: "LDA", Length: 3, Cycles: 4, AddressingMode: AbsoluteY, Instruction: (*Cpu).lda},
	0xA1: {Name: "LDA", Length: 2, Cycles: 6, AddressingMode: IndirectX, Instruction: (*Cpu).lda},
	0xB1: {Name: "LDA", Length: 2, Cycles: 5, AddressingMode: IndirectY, Instruction: (*Cpu).lda},

	0xA2: {Name: "LDX", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).ldx},
	0xA6: {Name: "LDX", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).ldx},
	0xB6: {Name: "LDX", Length: 2, Cycles: 4, AddressingMode: ZeroPageY, Instruction: (*Cpu).ldx},
	0xAE: {Name: "LDX", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).ldx},
	0xBE: {Name: "LDX", Length: 3, Cycles: 4, AddressingMode: AbsoluteY, Instruction: (*Cpu).ldx},

	0xA0: {Name: "LDY", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).ldy},
	0xA4: {Name: "LDY", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).ldy},
	0xB4: {Name: "LDY", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).ldy},
	0xAC: {Name: "LDY", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).ldy},
	0xBC: {Name: "LDY", Length: 3, Cycles: 4, AddressingMode: AbsoluteX, Instruction: (*Cpu).ldy},

	0x4A: {Name: "LSR", Length: 1, Cycles: 2, AddressingMode: Accumulator, Instruction: (*Cpu).lsr},
	0x46: {Name: "LSR", Length: 2, Cycles: 5, AddressingMode: ZeroPage, Instruction: (*Cpu).lsr},
	0x56: {Name: "LSR", Length: 2, Cycles: 6, AddressingMode: ZeroPageX, Instruction: (*Cpu).lsr},
	0x4E: {Name: "LSR", Length: 3, Cycles: 6, AddressingMode: Absolute, Instruction: (*Cpu).lsr},
	0x5E: {Name: "LSR", Length: 3, Cycles: 7, AddressingMode: AbsoluteX, Instruction: (*Cpu).lsr},

	0xEA: {Name: "NOP", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).nop},

	0x09: {Name: "ORA", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).ora},
	0x05: {Name: "ORA", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).ora},
	0x15: {Name: "ORA", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).ora},
	0x0D: {Name: "ORA", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).ora},
	0x1D: {Name: "ORA", Length: 3, Cycles: 4, AddressingMode: AbsoluteX, Instruction: (*Cpu).ora},
	0x19: {Name: "ORA", Length: 3, Cycles: 4, AddressingMode: AbsoluteY, Instruction: (*Cpu).ora},
	0x01: {Name: "ORA", Length: 2, Cycles: 6, AddressingMode: IndirectX, Instruction: (*Cpu).ora},
	0x11: {Name: "ORA", Length: 2, Cycles: 5, AddressingMode: IndirectY, Instruction: (*Cpu).ora},

	0x48: {Name: "PHA", Length: 1, Cycles: 3, AddressingMode: Implied, Instruction: (*Cpu).pha},
	0x08: {Name: "PHP", Length: 1, Cycles: 3, AddressingMode: Implied, Instruction: (*Cpu).php},
	0x68: {Name: "PLA", Length: 1, Cycles: 4, AddressingMode: Implied, Instruction: (*Cpu).pla},
	0x28: {Name: "PLP", Length: 1, Cycles: 4, AddressingMode: Implied, Instruction: (*Cpu).plp},

	0x2A: {Name: "ROL", Length: 1, Cycles: 2, AddressingMode: Accumulator, Instruction: (*Cpu).rol},
	0x26: {Name: "ROL", Length: 2, Cycles: 5, AddressingMode: ZeroPage, Instruction: (*Cpu).rol},
	0x36: {Name: "ROL", Length: 2, Cycles: 6, AddressingMode: ZeroPageX, Instruction: (*Cpu).rol},
	0x2E: {Name: "ROL", Length: 3, Cycles: 6, AddressingMode: Absolute, Instruction: (*Cpu).rol},
	0x3E: {Name: "ROL", Length: 3, Cycles: 7, AddressingMode: AbsoluteX, Instruction: (*Cpu).rol},

	0x6A: {Name: "ROR", Length: 1, Cycles: 2, AddressingMode: Accumulator, Instruction: (*Cpu).ror},
	0x66: {Name: "ROR", Length: 2, Cycles: 5, AddressingMode: ZeroPage, Instruction: (*Cpu).ror},
	0x76: {Name: "ROR", Length: 2, Cycles: 6, AddressingMode: ZeroPageX, Instruction: (*Cpu).ror},
	0x6E: {Name: "ROR", Length: 3, Cycles: 6, AddressingMode: Absolute, Instruction: (*Cpu).ror},
	0x7E: {Name: "ROR", Length: 3, Cycles: 7, AddressingMode: AbsoluteX, Instruction: (*Cpu).ror},

	0x40: {Name: "RTI", Length: 1, Cycles: 6, AddressingMode: Implied, Instruction: (*Cpu).rti},
	0x60: {Name: "RTS", Length: 1, Cycles: 6, AddressingMode: Implied, Instruction: (*Cpu).rts},

	0xE9: {Name: "SBC", Length: 2, Cycles: 2, AddressingMode: Immediate, Instruction: (*Cpu).sbc},
	0xE5: {Name: "SBC", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).sbc},
	0xF5: {Name: "SBC", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).sbc},
	0xED: {Name: "SBC", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).sbc},
	0xFD: {Name: "SBC", Length: 3, Cycles: 4, AddressingMode: AbsoluteX, Instruction: (*Cpu).sbc},
	0xF9: {Name: "SBC", Length: 3, Cycles: 4, AddressingMode: AbsoluteY, Instruction: (*Cpu).sbc},
	0xE1: {Name: "SBC", Length: 2, Cycles: 6, AddressingMode: IndirectX, Instruction: (*Cpu).sbc},
	0xF1: {Name: "SBC", Length: 2, Cycles: 5, AddressingMode: IndirectY, Instruction: (*Cpu).sbc},

	0x38: {Name: "SEC", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).sec},
	0xF8: {Name: "SED", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).sed},
	0x78: {Name: "SEI", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).sei},

	0x85: {Name: "STA", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).sta},
	0x95: {Name: "STA", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).sta},
	0x8D: {Name: "STA", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).sta},
	0x9D: {Name: "STA", Length: 3, Cycles: 5, AddressingMode: AbsoluteX, Instruction: (*Cpu).sta},
	0x99: {Name: "STA", Length: 3, Cycles: 5, AddressingMode: AbsoluteY, Instruction: (*Cpu).sta},
	0x81: {Name: "STA", Length: 2, Cycles: 6, AddressingMode: IndirectX, Instruction: (*Cpu).sta},
	0x91: {Name: "STA", Length: 2, Cycles: 6, AddressingMode: IndirectY, Instruction: (*Cpu).sta},

	0x86: {Name: "STX", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).stx},
	0x96: {Name: "STX", Length: 2, Cycles: 4, AddressingMode: ZeroPageY, Instruction: (*Cpu).stx},
	0x8E: {Name: "STX", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).stx},

	0x84: {Name: "STY", Length: 2, Cycles: 3, AddressingMode: ZeroPage, Instruction: (*Cpu).sty},
	0x94: {Name: "STY", Length: 2, Cycles: 4, AddressingMode: ZeroPageX, Instruction: (*Cpu).sty},
	0x8C: {Name: "STY", Length: 3, Cycles: 4, AddressingMode: Absolute, Instruction: (*Cpu).sty},

	0xAA: {Name: "TAX", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).tax},
	0xA8: {Name: "TAY", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).tay},
	0xBA: {Name: "TSX", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).tsx},
	0x8A: {Name: "TXA", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).txa},
	0x9A: {Name: "TXS", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).txs},
	0x98: {Name: "TYA", Length: 1, Cycles: 2, AddressingMode: Implied, Instruction: (*Cpu).tya},
}
