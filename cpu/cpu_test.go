package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gones/cartridge"
	"gones/mem"
)

// newTestCpu builds a Cpu over a freshly decoded mapper-0 ROM with prgSize
// bytes of PRG-ROM (fill byte 0, i.e. BRK, so any untouched PRG byte halts
// the run rather than running off into garbage).
func newTestCpu(t *testing.T, prgSize int) *Cpu {
	t.Helper()
	raw := make([]byte, 16+prgSize)
	copy(raw[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	raw[4] = byte(prgSize / (16 * 1024))
	rom, err := cartridge.Decode(raw)
	assert.NoError(t, err)
	return NewCpu(mem.NewBus(rom))
}

func runProgram(t *testing.T, c *Cpu, program []byte) {
	t.Helper()
	c.LoadProgram(program, 0x0600)
	f := c.Run(nil)
	assert.Nil(t, f, "unexpected fault running program")
	assert.True(t, c.Halted)
}

func TestLDA_TAX_INX(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	runProgram(t, c, []byte{0xA9, 0xC0, 0xAA, 0xE8, 0x00})
	assert.Equal(t, byte(0xC0), c.A)
	assert.Equal(t, byte(0xC1), c.X)
}

func TestADC_CarryAndOverflow(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	c.LoadProgram([]byte{0x69, 0x50, 0x00}, 0x0600)
	c.A = 0x50
	f := c.Run(nil)
	assert.Nil(t, f)
	assert.Equal(t, byte(0xA0), c.A)
	assert.False(t, c.Flags.Carry)
	assert.True(t, c.Flags.Overflow)
	assert.True(t, c.Flags.Negative)
	assert.False(t, c.Flags.Zero)
}

func TestBranchTakenOffset(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	c.LoadProgram([]byte{0xB0, 0x10, 0x00}, 0x0600)
	c.Flags.Carry = true
	start := c.PC
	f := c.Run(nil)
	assert.Nil(t, f)
	assert.Equal(t, start+2+16+1, c.PC)
}

func TestBIT_CopiesOverflowAndNegativeFromMemory(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	c.LoadProgram([]byte{0x24, 0xC0, 0x00}, 0x0600)
	c.A = 0x01
	c.Bus.Write8(0x00C0, 0x41)
	f := c.Run(nil)
	assert.Nil(t, f)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
	assert.True(t, c.Flags.Overflow)
}

func TestJSR_RTS_RoundTrip(t *testing.T) {
	prgSize := 32 * 1024
	raw := make([]byte, 16+prgSize)
	copy(raw[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	raw[4] = byte(prgSize / (16 * 1024))
	raw[16+(0xC601-0x8000)] = 0x60 // RTS baked into PRG-ROM content directly
	rom, err := cartridge.Decode(raw)
	assert.NoError(t, err)
	c := NewCpu(mem.NewBus(rom))
	c.LoadProgram([]byte{0x20, 0x01, 0xC6, 0x00}, 0x0600)

	initialSP := c.SP
	f := c.Run(nil)
	assert.Nil(t, f)
	assert.Equal(t, initialSP, c.SP)
	assert.Equal(t, uint16(0x0604), c.PC) // one past the trailing BRK at $0603
}

func TestTracerKnownState(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	bytes := []byte{0xA2, 0x01, 0xCA, 0x88, 0xCD, 0xF5, 0xC5, 0xB0, 0x04}
	for i, b := range bytes {
		c.Bus.Write8(0x0064+uint16(i), b)
	}
	c.A, c.X, c.Y, c.SP = 1, 2, 3, 0xFD
	c.Flags.SetByte(0x24)
	c.PC = 0x0064

	got := Trace(c)
	want := "0064  A2 01     LDX #$01                        A:01 X:02 Y:03 P:24 SP:FD"
	assert.Equal(t, want, got)
}

func TestZeroAndNegativeFlagsUniversal(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	c.LoadProgram([]byte{0xA9, 0x00, 0x00}, 0x0600) // LDA #$00
	c.Run(nil)
	assert.True(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)

	c = newTestCpu(t, 16*1024)
	c.LoadProgram([]byte{0xA9, 0x80, 0x00}, 0x0600) // LDA #$80
	c.Run(nil)
	assert.False(t, c.Flags.Zero)
	assert.True(t, c.Flags.Negative)
}

func TestADC_SBC_Identity(t *testing.T) {
	// CLC; ADC #m; SEC; SBC #m restores A exactly -- the conventional
	// 6502 idiom for "add M then undo it", which only holds with carry
	// clear going into the add and carry set going into the subtract.
	c := newTestCpu(t, 16*1024)
	c.A = 0x42
	c.Flags.Carry = false
	assert.Nil(t, c.addWithCarry(0x13))
	c.Flags.Carry = true
	assert.Nil(t, c.addWithCarry(^byte(0x13)))
	assert.Equal(t, byte(0x42), c.A)
}

func TestPHA_PLA_RoundTrip(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	c.LoadProgram([]byte{0xA9, 0x37, 0x48, 0xA9, 0x00, 0x68, 0x00}, 0x0600)
	c.Run(nil)
	assert.Equal(t, byte(0x37), c.A)
	assert.False(t, c.Flags.Zero)
}

func TestTXS_TSX_RoundTrip(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	c.LoadProgram([]byte{0xA2, 0x77, 0x9A, 0xA2, 0x00, 0xBA, 0x00}, 0x0600)
	c.Run(nil)
	assert.Equal(t, byte(0x77), c.X)
	assert.Equal(t, byte(0x77), c.SP)
}

func TestBusMirroringRoundTrip(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	assert.Nil(t, c.Write8(0x0042, 0xAB))
	for _, alias := range []uint16{0x0042, 0x0842, 0x1042, 0x1842} {
		b, f := c.Read8(alias)
		assert.Nil(t, f)
		assert.Equal(t, byte(0xAB), b)
	}
}

func TestPRGMirroringFor16KiBCart(t *testing.T) {
	prgSize := 16 * 1024
	raw := make([]byte, 16+prgSize)
	copy(raw[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	raw[4] = byte(prgSize / (16 * 1024))
	raw[16+0x10] = 42 // arbitrary PRG offset k=0x10
	rom, err := cartridge.Decode(raw)
	assert.NoError(t, err)
	c := NewCpu(mem.NewBus(rom))
	lo, _ := c.Read8(0x8010)
	hi, _ := c.Read8(0xC010)
	assert.Equal(t, lo, hi)
}

func TestUnknownOpcodeFaults(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	c.LoadProgram([]byte{0x02}, 0x0600) // undocumented/illegal opcode
	f := c.Run(nil)
	assert.NotNil(t, f)
	assert.True(t, c.Halted)
}

func TestIllegalPRGWriteFaults(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	f := c.Write8(0x8000, 0xFF)
	assert.NotNil(t, f)
}

func TestPPUStubAccessFaults(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	_, f := c.Read8(0x2000)
	assert.NotNil(t, f)
}

func TestNmiPushesStateAndVectors(t *testing.T) {
	raw := make([]byte, 16+16*1024)
	copy(raw[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	raw[4] = 1
	raw[16+(0xFFFA-0xC000)] = 0x00 // NMI vector -> $0700
	raw[16+(0xFFFB-0xC000)] = 0x07
	rom, err := cartridge.Decode(raw)
	assert.NoError(t, err)
	c := NewCpu(mem.NewBus(rom))
	c.PC = 0x1234
	c.Flags.Carry = true
	initialSP := c.SP

	f := c.nmi()
	assert.Nil(t, f)
	assert.Equal(t, uint16(0x0700), c.PC)
	assert.Equal(t, initialSP-3, c.SP)
	assert.True(t, c.Flags.Interrupt)

	pulledFlags, f := c.pull()
	assert.Nil(t, f)
	assert.True(t, pulledFlags&0x01 != 0) // Carry bit survived onto the stack
	pulledPC, f := c.pullWord()
	assert.Nil(t, f)
	assert.Equal(t, uint16(0x1234), pulledPC)
}

func TestIrqSkippedWhenInterruptDisableSet(t *testing.T) {
	c := newTestCpu(t, 16*1024)
	c.Flags.Interrupt = true
	startPC, startSP := c.PC, c.SP
	f := c.irq()
	assert.Nil(t, f)
	assert.Equal(t, startPC, c.PC)
	assert.Equal(t, startSP, c.SP)
}

func TestIrqVectorsWhenInterruptsEnabled(t *testing.T) {
	raw := make([]byte, 16+16*1024)
	copy(raw[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	raw[4] = 1
	raw[16+(0xFFFE-0xC000)] = 0x50 // IRQ/BRK vector -> $0750
	raw[16+(0xFFFF-0xC000)] = 0x07
	rom, err := cartridge.Decode(raw)
	assert.NoError(t, err)
	c := NewCpu(mem.NewBus(rom))
	c.PC = 0x1234
	c.Flags.Interrupt = false

	f := c.irq()
	assert.Nil(t, f)
	assert.Equal(t, uint16(0x0750), c.PC)
	assert.True(t, c.Flags.Interrupt)
}

func TestIndirectYAddsOffsetToPointerBug(t *testing.T) {
	// Known carried-forward behavior (see spec's design notes): Y is added
	// to the zero-page pointer before dereferencing, exactly like
	// IndirectX adds X, rather than to the address the pointer resolves
	// to. This pins that behavior so it isn't "fixed" by accident.
	c := newTestCpu(t, 16*1024)
	// operand zp = $10, Y = 1, so the bug reads the pointer from $11/$12
	// (zp+Y), not from $10/$11 offset by Y afterward.
	c.Bus.Write8(0x0011, 0x00)
	c.Bus.Write8(0x0012, 0x03)
	c.Bus.Write8(0x0300, 0x99)
	c.LoadProgram([]byte{0xB1, 0x10, 0x00}, 0x0600) // LDA ($10),Y
	c.Y = 1
	f := c.Run(nil)
	assert.Nil(t, f)
	assert.Equal(t, byte(0x99), c.A)
}
