package cpu

import (
	"fmt"

	"gones/mem"
)

// A Fault is a fatal condition encountered mid-run: an unrecognized opcode,
// or an illegal bus access (PRG-ROM write, PPU-stub access) bubbled up from
// mem.Bus. Run/Step return a Fault instead of panicking; the caller decides
// how to report it.
type Fault struct {
	Category string
	Addr     uint16
	Byte     byte // meaningful only for decode faults
	PC       uint16
}

func (f *Fault) Error() string {
	if f.Category == "unknown opcode" {
		return fmt.Sprintf("cpu: unknown opcode $%02X at PC=$%04X", f.Byte, f.PC)
	}
	return fmt.Sprintf("cpu: %s at $%04X (PC=$%04X)", f.Category, f.Addr, f.PC)
}

func decodeFault(b byte, pc uint16) *Fault {
	return &Fault{Category: "unknown opcode", Byte: b, PC: pc}
}

func busFault(f *mem.Fault, pc uint16) *Fault {
	return &Fault{Category: f.Category, Addr: f.Addr, PC: pc}
}
