package agc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemReadWriteErasable(t *testing.T) {
	m := newMem()
	m.Write(5, 0x1234)
	assert.EqualValues(t, 0x1234&0x7FFF, m.Read(5))
}

func TestMemWriteIgnoresFixedRegion(t *testing.T) {
	m := newMem()
	addr := uint16(erasableWords + 10)
	m.Write(addr, 0x7FFF)
	assert.EqualValues(t, 0, m.Read(addr))
}

func TestMemLoadRawWritesFixed(t *testing.T) {
	m := newMem()
	addr := uint16(erasableWords + 10)
	m.LoadRaw(addr, 0x7FFF)
	assert.EqualValues(t, 0x7FFF, m.Read(addr))
	assert.EqualValues(t, 0, m.Read(5))
}

func TestMemWriteMasksSignBitRange(t *testing.T) {
	m := newMem()
	m.Write(0, 0xFFFF)
	assert.EqualValues(t, 0x7FFF, m.Read(0))
}

func TestMemOutOfRangeReadsZero(t *testing.T) {
	m := newMem()
	assert.EqualValues(t, 0, m.Read(erasableWords+fixedWords+100))
}
