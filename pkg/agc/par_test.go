package agc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParityAlarmInjection exercises the literal scenario: a word
// written to erasable memory with a parity bit that disagrees with
// its data sets PALM the next time that word is read.
func TestParityAlarmInjection(t *testing.T) {
	a := NewAGC()
	a.Mem.WriteBypassParity(0o100, 0o100, true) // oddParityBit(0o100) == 0, forced to 1
	assert.False(t, a.Par.PALM)

	a.Adr.S.Write(0o100)
	a.Mem.G15.Write(boolBit(a.Mem.ReadParity(a.Adr.cadr())))
	a.Mem.G.Write(a.Mem.Read(a.Adr.cadr()))
	a.checkParity()

	assert.True(t, a.Par.PALM)
}

// TestParityOkOnCorrectlyWrittenWord confirms an ordinary Write, which
// computes its own correct parity bit, never trips PALM on readback.
func TestParityOkOnCorrectlyWrittenWord(t *testing.T) {
	a := NewAGC()
	a.Mem.Write(0o100, 0o100)

	a.Adr.S.Write(0o100)
	a.Mem.G15.Write(boolBit(a.Mem.ReadParity(a.Adr.cadr())))
	a.Mem.G.Write(a.Mem.Read(a.Adr.cadr()))
	a.checkParity()

	assert.False(t, a.Par.PALM)
}

func boolBit(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
