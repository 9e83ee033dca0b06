package agc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSclAdvanceWraps(t *testing.T) {
	s := newScl()
	s.SCL.Write(0x3FFF)
	s.advance()
	assert.EqualValues(t, 0, s.SCL.Read())
}

func TestSclAdvanceLatchesF10OnRisingEdge(t *testing.T) {
	s := newScl()
	s.SCL.Write((1 << 10) - 1)
	f10, f13, f17 := s.advance()
	assert.True(t, f10)
	assert.False(t, f13)
	assert.False(t, f17)
	assert.True(t, s.F10)

	// Already high: the next tick's advance should not report another edge.
	f10, _, _ = s.advance()
	assert.False(t, f10)
}

func TestSclAdvanceLatchesF17OnRisingEdge(t *testing.T) {
	s := newScl()
	s.SCL.Write((1 << 13) - 1)
	_, _, f17 := s.advance()
	assert.True(t, f17)
	assert.True(t, s.F17)
}

func TestToggleF13AndF17FlipIndependentOfDivider(t *testing.T) {
	s := newScl()
	assert.False(t, s.F13)
	s.ToggleF13()
	assert.True(t, s.F13)
	s.ToggleF17()
	assert.True(t, s.F17)
}
