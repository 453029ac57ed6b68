// Command gones is the thinnest possible driver over the emulator core: it
// loads either a cartridge image or a hand-assembled test program, then
// either prints a nestest-style trace of every instruction until the Cpu
// halts, or hands control to the interactive Bubble Tea debugger.
//
// It is deliberately not the host shell: no windowing, no input, no PPU
// frame presentation.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"gones/cartridge"
	"gones/cpu"
	"gones/mem"
)

func main() {
	var (
		romPath     = flag.String("rom", "", "path to an iNES (.nes) cartridge image")
		program     = flag.String("program", "", "hex-encoded bytes of a test program, loaded at $0600")
		interactive = flag.Bool("interactive", false, "launch the interactive step debugger")
		dumpHeader  = flag.Bool("dump-header", false, "print the decoded cartridge header and exit")
	)
	flag.Parse()

	if *romPath == "" && *program == "" {
		fmt.Fprintln(os.Stderr, "gones: one of -rom or -program is required")
		flag.Usage()
		os.Exit(2)
	}

	bus, err := buildBus(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gones: %s\n", err)
		os.Exit(1)
	}

	if *dumpHeader {
		rom, _ := cartridge.Decode(mustReadFile(*romPath))
		fmt.Println(rom)
		return
	}

	c := cpu.NewCpu(bus)

	if *program != "" {
		bytes, err := parseHexProgram(*program)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gones: -program: %s\n", err)
			os.Exit(1)
		}
		c.LoadProgram(bytes, 0x0600)
	}

	if *interactive {
		// The program, if any, was already loaded above; Debug leaves an
		// already-mounted cartridge's reset vector untouched.
		c.Debug(nil, 0)
		return
	}

	fault := c.Run(func(c *cpu.Cpu) {
		fmt.Println(cpu.Trace(c))
	})
	if fault != nil {
		fmt.Fprintf(os.Stderr, "gones: %s\n", fault)
		os.Exit(1)
	}
}

func buildBus(romPath string) (*mem.Bus, error) {
	if romPath == "" {
		return mem.NewBus(nil), nil
	}
	raw, err := os.ReadFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", romPath, err)
	}
	rom, err := cartridge.Decode(raw)
	if err != nil {
		return nil, err
	}
	return mem.NewBus(rom), nil
}

func mustReadFile(path string) []byte {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gones: %s\n", err)
		os.Exit(1)
	}
	return raw
}

// parseHexProgram accepts whitespace-separated hex byte pairs ("A9 C0 AA")
// or one contiguous hex string ("A9C0AA").
func parseHexProgram(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	return hex.DecodeString(s)
}
