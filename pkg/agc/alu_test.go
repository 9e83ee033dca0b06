package agc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd15EndAroundCarry(t *testing.T) {
	sum, overflow := add15(0x7FFF, 1, false)
	assert.EqualValues(t, 1, sum)
	assert.False(t, overflow)
}

func TestAdd15Overflow(t *testing.T) {
	_, overflow := add15(0x3FFF, 0x3FFF, false)
	assert.True(t, overflow)
}

func TestAdd15NoOverflowOnMixedSigns(t *testing.T) {
	_, overflow := add15(0x4001, 0x0001, false)
	assert.False(t, overflow)
}

func TestOnesComplementDistinctZeros(t *testing.T) {
	assert.EqualValues(t, 0x7FFF, onesComplement15(0))
	assert.EqualValues(t, 0, onesComplement15(0x7FFF))
}

func TestSumALUUsesCarryIn(t *testing.T) {
	a := NewAGC()
	a.Alu.X.Write(5)
	a.Alu.Y.Write(3)
	a.Alu.CI = true
	sum, _ := a.sumALU()
	assert.EqualValues(t, 9, sum)
}

func TestMaskALU(t *testing.T) {
	a := NewAGC()
	a.Alu.X.Write(0x0F0F)
	a.Alu.Y.Write(0x00FF)
	assert.EqualValues(t, 0x000F, a.maskALU())
}
