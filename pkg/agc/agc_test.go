package agc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instr(op Opcode, addr uint16) uint16 {
	return uint16(op)<<10 | (addr & 0x3FF)
}

func TestStepExecutesADAndAdvancesPC(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpAD, 10)},
		{Addr: 10, Value: 5},
	})
	a.Crg.A.Write(3)

	a.Step()

	assert.EqualValues(t, 8, a.Crg.A.Read())
	assert.EqualValues(t, 1, a.Crg.Z.Read())
}

func TestStepExecutesSUSubtracts(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpSU, 10)},
		{Addr: 10, Value: 3},
	})
	a.Crg.A.Write(8)

	a.Step()

	assert.EqualValues(t, 5, a.Crg.A.Read())
}

func TestStepExecutesCSComplements(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpCS, 10)},
		{Addr: 10, Value: 0o17777},
	})

	a.Step()

	assert.EqualValues(t, onesComplement15(0o17777), a.Crg.A.Read())
}

func TestStepExecutesTC(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpTC, 100)},
	})

	a.Step()

	// TC k leaves Z at k+1: the jump lands on k, and the normal
	// one-instruction advance every subsequence's ZSKIP applies still
	// runs on top of it.
	assert.EqualValues(t, 101, a.Crg.Z.Read())
}

func TestStepExecutesXCHSwapsAccumulatorAndMemory(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpXCH, 10)},
		{Addr: 10, Value: 0o77},
	})
	a.Crg.A.Write(0o22)

	a.Step()

	assert.EqualValues(t, 0o77, a.Crg.A.Read())
	assert.EqualValues(t, 0o22, a.Mem.Read(10))
}

func TestStepExecutesCCSPositiveSkipsOne(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpCCS, 10)},
		{Addr: 10, Value: 5},
	})

	a.Step()

	assert.EqualValues(t, 1, a.Crg.Z.Read())
	assert.EqualValues(t, 5, a.Crg.A.Read())
}

func TestStepExecutesCCSNegativeSkipsThree(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpCCS, 10)},
		{Addr: 10, Value: onesComplement15(5)},
	})

	a.Step()

	assert.EqualValues(t, 3, a.Crg.Z.Read())
}

func TestStepExecutesTSSkipsOneOnOverflow(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpAD, 10)},
		{Addr: 10, Value: 0x3FFF},
		{Addr: 1, Value: instr(OpTS, 11)},
	})
	a.Crg.A.Write(0x3FFF) // AD overflows: 0x3FFF + 0x3FFF

	a.Step() // AD at 0, overflow latched, Z -> 1
	require.True(t, a.Alu.LastOverflow)

	a.Step() // TS at 1 stores the overflowed A and skips Z to 3
	assert.EqualValues(t, 3, a.Crg.Z.Read())
	assert.EqualValues(t, a.Crg.A.Read(), a.Mem.Read(11))
}

func TestStepExecutesINDEXThenConsumesAddend(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpINDEX, 20)},
		{Addr: 1, Value: instr(OpAD, 10)},
		{Addr: 15, Value: 42},
		{Addr: 20, Value: 5},
	})
	a.Step() // INDEX 20 loads IndexV from word 20 (5), IndexOn=true
	assert.True(t, a.Adr.IndexOn)
	assert.EqualValues(t, 5, a.Adr.IndexV)

	a.Step() // AD 10, indexed by 5 -> operand at 15
	assert.EqualValues(t, 42, a.Crg.A.Read())
	assert.False(t, a.Adr.IndexOn)
}

func TestStepGrantsInterruptBeforeFetchingNextInstruction(t *testing.T) {
	a := NewAGC()
	a.Install([]Word{
		{Addr: 0, Value: instr(OpTC, 1)},
	})
	a.Int.Raise(3)

	// The interrupt is pending and Subseq is already SubFETCH, so the
	// very first Step() call grants it instead of fetching address 0.
	a.Step()

	assert.EqualValues(t, 3, a.Int.Active)
	assert.EqualValues(t, uint16(0x400+3*4), a.Crg.Z.Read())
}

func TestResetReturnsToFetchAndClearsRegisters(t *testing.T) {
	a := NewAGC()
	a.Crg.A.Write(0x1234)
	a.Reset()
	assert.EqualValues(t, 0, a.Crg.A.Read())
	assert.Equal(t, SubFETCH, a.Seq.Subseq)
}
