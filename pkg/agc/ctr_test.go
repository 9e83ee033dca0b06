package agc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterGrantsIncrement(t *testing.T) {
	a := NewAGC()
	a.Ctr.RequestUp(2)
	a.grantCounter()
	assert.EqualValues(t, 1, a.Ctr.Cells[2].Read())
	assert.False(t, a.Ctr.PcUp[2])
}

func TestCounterOverflowChainsIntoNextCell(t *testing.T) {
	a := NewAGC()
	a.Ctr.Cells[CtrTIME1].Write(0x7FFF)
	a.Ctr.Cells[CtrTIME2].Write(0)
	a.Ctr.RequestUp(CtrTIME1)
	a.grantCounter()
	assert.EqualValues(t, 0, a.Ctr.Cells[CtrTIME1].Read())
	assert.EqualValues(t, 1, a.Ctr.Cells[CtrTIME2].Read())
	assert.True(t, a.Ctr.Overflow[CtrTIME1])
}

func TestCounterFloorsAtZero(t *testing.T) {
	a := NewAGC()
	a.Ctr.RequestDn(3)
	a.grantCounter()
	assert.EqualValues(t, 0, a.Ctr.Cells[3].Read())
	assert.True(t, a.Ctr.Overflow[3])
}

func TestCounterGrantsLowestIndexFirst(t *testing.T) {
	a := NewAGC()
	a.Ctr.RequestUp(4)
	a.Ctr.RequestUp(1)
	a.grantCounter()
	assert.EqualValues(t, 1, a.Ctr.Cells[1].Read())
	assert.EqualValues(t, 0, a.Ctr.Cells[4].Read())
	assert.True(t, a.Ctr.PcUp[4])
}
