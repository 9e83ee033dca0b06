package agc

// Scl is the scaler: a free-running counter clocked once per memory
// cycle (once per TP12, and only while SCL_ENAB is set) whose high
// bits are tapped to drive the counter/interrupt subsystem's timed
// pulses, the way the original's F-number taps do. F10/F13/F17 are
// latched levels rather than bits read fresh off SCL every tick, so
// the manual debug toggles can kick them independent of the divider.
type Scl struct {
	SCL Register

	F10, F13, F17 bool
}

func newScl() Scl {
	return Scl{SCL: NewRegister("SCL", 14)}
}

// advance ticks the scaler by one, wrapping at 14 bits, updates the
// F10/F13/F17 latches from SCL's current bit pattern, and reports
// which ones just rose so the caller drives their stimuli once per
// edge rather than once per tick they're held high.
func (s *Scl) advance() (f10Rose, f13Rose, f17Rose bool) {
	s.SCL.Write(s.SCL.Read() + 1)
	v := s.SCL.Read()
	f10, f13, f17 := v&(1<<10) != 0, v&(1<<12) != 0, v&(1<<13) != 0
	f10Rose, f13Rose, f17Rose = f10 && !s.F10, f13 && !s.F13, f17 && !s.F17
	s.F10, s.F13, s.F17 = f10, f13, f17
	return
}

// ToggleF13 and ToggleF17 are the manual debug keys ('x' and 'z' on
// the original front panel) that flip F13/F17 independent of the
// free-running divider, for exercising their stimuli without waiting
// out the scaler.
func (s *Scl) ToggleF13() { s.F13 = !s.F13 }
func (s *Scl) ToggleF17() { s.F17 = !s.F17 }

// ToggleF13 and ToggleF17 are the AGC-level exports the monitor's
// manual debug keys call.
func (a *AGC) ToggleF13() { a.Scl.ToggleF13() }
func (a *AGC) ToggleF17() { a.Scl.ToggleF17() }
