package agc

// TPState enumerates the timing pulse generator's states: the twelve
// timing pulses of a memory cycle plus the three non-timing pseudo
// states.
type TPState int

const (
	PWRON TPState = iota
	STBY
	WAIT
	TP1
	TP2
	TP3
	TP4
	TP5
	TP6
	TP7
	TP8
	TP9
	TP10
	TP11
	TP12
)

var tpStateNames = [...]string{
	"PWRON", "STBY", "WAIT",
	"TP1", "TP2", "TP3", "TP4", "TP5", "TP6",
	"TP7", "TP8", "TP9", "TP10", "TP11", "TP12",
}

func (s TPState) String() string {
	if int(s) < len(tpStateNames) {
		return tpStateNames[s]
	}
	return "?"
}

// TPG holds the timing pulse generator's state register SG.
type TPG struct {
	SG Register // holds the current TPState
}

func newTPG() TPG {
	return TPG{SG: NewRegister("SG", 4)}
}

func (t *TPG) state() TPState { return TPState(t.SG.Read()) }
func (t *TPG) setState(s TPState) { t.SG.Write(uint16(s)) }

// advanceTPG implements doexecWP_TPG: the timing-pulse transition
// table. Tick runs it once at the start of every tick, before the new
// state's pulses are dispatched, so it always follows the previous
// tick's committed pulse work.
func (a *AGC) advanceTPG() {
	switch a.Tpg.state() {
	case PWRON:
		if !a.Mon.PURST {
			a.Tpg.setState(WAIT)
		}
	case WAIT:
		if a.Mon.SA && a.quiescent() {
			a.Tpg.setState(STBY)
		} else if a.Mon.RUN && a.clockRequested() {
			a.Tpg.setState(TP1)
		}
	case STBY:
		if a.Mon.PURST {
			a.Tpg.setState(WAIT)
		}
	case TP12:
		if a.Mon.RUN {
			a.Tpg.setState(TP1)
		} else {
			a.Tpg.setState(WAIT)
		}
	default: // TP1..TP11
		a.Tpg.setState(a.Tpg.state() + 1)
	}
}

// clockRequested reports whether a clocking request (fast clock, single
// step, or single-clock strobe) is pending for WAIT to leave its state.
func (a *AGC) clockRequested() bool {
	return a.Mon.FCLK || a.Mon.singleClockPending || (a.Mon.STEP && !a.Mon.INST)
}

// quiescent reports the "entry conditions" for STBY: no instruction in
// flight and not in the middle of a counter/interrupt sequence.
func (a *AGC) quiescent() bool {
	return a.Seq.SNI.Bool() && a.Tpg.state() == WAIT
}
