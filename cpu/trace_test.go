package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gones/cartridge"
	"gones/mem"
)

func newTraceCpu(t *testing.T) *Cpu {
	t.Helper()
	raw := make([]byte, 16+16*1024)
	copy(raw[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	raw[4] = 1
	rom, err := cartridge.Decode(raw)
	assert.NoError(t, err)
	return NewCpu(mem.NewBus(rom))
}

func TestTraceImmediate(t *testing.T) {
	c := newTraceCpu(t)
	c.Bus.Write8(0x0600, 0xA9) // LDA #$42
	c.Bus.Write8(0x0601, 0x42)
	c.PC = 0x0600
	assert.Contains(t, Trace(c), "LDA #$42")
}

func TestTraceZeroPageShowsValue(t *testing.T) {
	c := newTraceCpu(t)
	c.Bus.Write8(0x0600, 0xA5) // LDA $10
	c.Bus.Write8(0x0601, 0x10)
	c.Bus.Write8(0x0010, 0x99)
	c.PC = 0x0600
	assert.Contains(t, Trace(c), "LDA $10 = 99")
}

func TestTraceIndirectYShowsBugConsistentAddresses(t *testing.T) {
	c := newTraceCpu(t)
	c.Bus.Write8(0x0600, 0xB1) // LDA ($33),Y
	c.Bus.Write8(0x0601, 0x33)
	c.Bus.Write8(0x0034, 0x00) // pointer at $33+Y = $34: the effective address
	c.Bus.Write8(0x0035, 0x04)
	c.Y = 1
	c.Bus.Write8(0x0400, 0xAA)
	c.PC = 0x0600
	line := Trace(c)
	assert.Contains(t, line, "($33),Y")
	// base: word at $33/$34 = $0000; effective: word at $34/$35 = $0400
	assert.Contains(t, line, "($33),Y = 0000 @ 0400 = AA")
}

func TestUnknownOpcodeTraceDoesNotPanic(t *testing.T) {
	c := newTraceCpu(t)
	c.Bus.Write8(0x0600, 0x02) // unrecognized byte
	c.PC = 0x0600
	assert.NotPanics(t, func() { Trace(c) })
}
