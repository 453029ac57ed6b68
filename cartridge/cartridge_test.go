package cartridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildHeader assembles a minimal iNES image: a 16-byte header followed by
// prgPages*16KiB of PRG and chrPages*8KiB of CHR, each filled with fill.
func buildHeader(flags6, flags7 byte, prgPages, chrPages int, trainer bool, fill byte) []byte {
	h := make([]byte, 16)
	copy(h[0:4], iNESMagic[:])
	h[4] = byte(prgPages)
	h[5] = byte(chrPages)
	h[6] = flags6
	h[7] = flags7

	var buf []byte
	buf = append(buf, h...)
	if trainer {
		buf = append(buf, make([]byte, trainerLen)...)
	}
	prg := make([]byte, prgPages*prgPageSize)
	for i := range prg {
		prg[i] = fill
	}
	chr := make([]byte, chrPages*chrPageSize)
	for i := range chr {
		chr[i] = fill
	}
	buf = append(buf, prg...)
	buf = append(buf, chr...)
	return buf
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	raw := buildHeader(0, 0, 1, 1, false, 0)
	raw[0] = 'X'
	_, err := Decode(raw)
	assert.True(t, errors.Is(err, ErrBadMagic))
}

func TestDecodeRejectsNESv2(t *testing.T) {
	raw := buildHeader(0, 0b0000_1000, 1, 1, false, 0)
	_, err := Decode(raw)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestDecodeRejectsNonZeroMapper(t *testing.T) {
	raw := buildHeader(0b0001_0000, 0, 1, 1, false, 0)
	_, err := Decode(raw)
	assert.True(t, errors.Is(err, ErrUnsupportedMapper))
}

func TestDecodeMirroring(t *testing.T) {
	horizontal, err := Decode(buildHeader(0b0000_0000, 0, 1, 1, false, 0))
	assert.NoError(t, err)
	assert.Equal(t, Horizontal, horizontal.Mirroring())

	vertical, err := Decode(buildHeader(0b0000_0001, 0, 1, 1, false, 0))
	assert.NoError(t, err)
	assert.Equal(t, Vertical, vertical.Mirroring())

	four, err := Decode(buildHeader(0b0000_1001, 0, 1, 1, false, 0))
	assert.NoError(t, err)
	assert.Equal(t, FourScreen, four.Mirroring())
}

func TestDecodeSkipsTrainer(t *testing.T) {
	raw := buildHeader(0b0000_0100, 0, 1, 0, true, 0xAB)
	rom, err := Decode(raw)
	assert.NoError(t, err)
	assert.Len(t, rom.PRG(), prgPageSize)
	assert.Equal(t, byte(0xAB), rom.PRG()[0])
}

func TestDecodePRGCHRSizeAndMapper(t *testing.T) {
	raw := buildHeader(0, 0, 2, 1, false, 0x11)
	rom, err := Decode(raw)
	assert.NoError(t, err)
	assert.Len(t, rom.PRG(), 2*prgPageSize)
	assert.Len(t, rom.CHR(), chrPageSize)
	assert.Equal(t, byte(0), rom.Mapper())
}

func TestDecodeTruncatedPRGFails(t *testing.T) {
	raw := buildHeader(0, 0, 2, 1, false, 0)
	raw = raw[:len(raw)-prgPageSize] // truncate as if PRG were short
	_, err := Decode(raw)
	assert.Error(t, err)
}
