package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTableCoversDocumentedMnemonics(t *testing.T) {
	want := []string{
		"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
		"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
		"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
		"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
		"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
		"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	}
	seen := map[string]bool{}
	for _, op := range Opcodes {
		seen[op.Name] = true
	}
	assert.Len(t, seen, len(want))
	for _, name := range want {
		assert.True(t, seen[name], "missing mnemonic %s", name)
	}
}

func TestOpcodeLengthsMatchAddressingMode(t *testing.T) {
	for b, op := range Opcodes {
		switch op.AddressingMode {
		case Implied, Accumulator:
			assert.Equal(t, byte(1), op.Length, "opcode %02X (%s)", b, op.Name)
		case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
			assert.Equal(t, byte(2), op.Length, "opcode %02X (%s)", b, op.Name)
		case Absolute, AbsoluteX, AbsoluteY, Indirect:
			assert.Equal(t, byte(3), op.Length, "opcode %02X (%s)", b, op.Name)
		}
	}
}

func TestLDAHasAllDocumentedModes(t *testing.T) {
	modes := map[AddressingMode]bool{}
	for _, op := range Opcodes {
		if op.Name == "LDA" {
			modes[op.AddressingMode] = true
		}
	}
	for _, m := range []AddressingMode{Immediate, ZeroPage, ZeroPageX, Absolute, AbsoluteX, AbsoluteY, IndirectX, IndirectY} {
		assert.True(t, modes[m], "LDA missing mode %v", m)
	}
}
