package agc

// MonitorInputs are the host-driven switches and straps the timing
// pulse generator and sequencer consult every tick: the front-panel
// controls a monitor program exposes.
type MonitorInputs struct {
	PURST bool // power-up reset strap; held high keeps the machine at PWRON
	SA    bool // STANDBY ALLOWED switch
	RUN   bool // RUN/STOP switch
	FCLK  bool // FAST clocking mode: advance every call to Tick
	STEP  bool // single-instruction step mode
	INST  bool // step granularity: STEP counts as a clock request only while INST is false

	SCL_ENAB bool // scaler run/stop; while false no counter increments or timekeeping interrupts arise

	singleClockPending bool // MANUAL mode: one TP requested by the monitor
}

// AGC is the whole machine. Sub-structs group registers the way the
// original's namespaces did: Tpg/Seq drive sequencing,
// Crg/Alu/Adr/Mem/Par implement the data path, Scl/Ctr/Int model the
// timed and asynchronous event sources, and Dsky is the operator
// interface.
type AGC struct {
	Mon MonitorInputs

	Tpg  TPG
	Seq  Seq
	Crg  Crg
	Alu  Alu
	Adr  Adr
	Mem  Mem
	Par  Par
	Scl  Scl
	Ctr  Ctr
	Int  Int
	Dsky Dsky

	ReadBus  Bus
	WriteBus Bus
}

// NewAGC builds a machine at power-off: every register zero, PURST
// already released (false), so the first Tick call leaves PWRON for
// WAIT immediately; a caller modeling a held-down reset button sets
// Mon.PURST true before ticking and clears it to release the machine,
// mirroring a cold power-up sequence.
func NewAGC() *AGC {
	a := &AGC{
		Tpg:  newTPG(),
		Seq:  newSeq(),
		Crg:  newCrg(),
		Alu:  newAlu(),
		Adr:  newAdr(),
		Mem:  newMem(),
		Par:  newPar(),
		Scl:  newScl(),
		Ctr:  newCtr(),
		Int:  newInt(),
		Dsky: newDsky(),
	}
	a.Seq.Subseq = SubFETCH
	return a
}

// Reset implements GENRST: it puts the timing pulse generator in WAIT,
// rebuilds the sequencer, central, ALU, address, scaler, counter and
// interrupt registers at zero, clears both buses, and returns the
// sequencer to FETCH. Memory (including G and G15), the parity module
// (P and PALM) and the DSKY registers are left as they are. The
// monitor's "reset" command routes through this.
func (a *AGC) Reset() {
	a.Tpg.setState(WAIT)
	a.Seq = newSeq()
	a.Seq.Subseq = SubFETCH
	a.Crg = newCrg()
	a.Alu = newAlu()
	a.Adr = newAdr()
	a.Scl = newScl()
	a.Ctr = newCtr()
	a.Int = newInt()
	a.ReadBus.Clear()
	a.WriteBus.Clear()
}

// RequestClock implements MANUAL mode's single-clock strobe: it lets
// the timing pulse generator leave WAIT on the next Tick, which clears
// the request again, so one strobe plus one Tick is one timing pulse,
// the way the monitor's "clock" command uses it.
func (a *AGC) RequestClock() { a.Mon.singleClockPending = true }

// Step runs Tick repeatedly until the TP12 of a non-FETCH subsequence
// has run (SNI set, Subseq handed back to FETCH), i.e. until one whole
// instruction (its FETCH cycle and its execution cycle) has retired. It
// is the monitor's single-instruction-step primitive.
func (a *AGC) Step() {
	savedRun, savedFCLK := a.Mon.RUN, a.Mon.FCLK
	a.Mon.RUN, a.Mon.FCLK = true, true
	defer func() { a.Mon.RUN, a.Mon.FCLK = savedRun, savedFCLK }()
	for {
		subBefore := a.Seq.Subseq
		a.Tick()
		if a.Tpg.state() == TP12 && subBefore != SubFETCH {
			return
		}
	}
}

// ObservableState is the read-only snapshot the monitor and tests
// consult.
type ObservableState struct {
	TP           string
	SQ, Subseq   string
	A, Q, Z, LP  uint16
	S, BNK       uint16
	ControlPulse string
	PALM         bool
	INHINT       bool
	Display      DisplayState
}

func (a *AGC) Observe() ObservableState {
	return ObservableState{
		TP:           a.Tpg.state().String(),
		SQ:           a.Seq.opcode().String(),
		Subseq:       a.Seq.Subseq.String(),
		A:            a.Crg.A.Read(),
		Q:            a.Crg.Q.Read(),
		Z:            a.Crg.Z.Read(),
		LP:           a.Crg.LP.Read(),
		S:            a.Adr.S.Read(),
		BNK:          a.Adr.BNK.Read(),
		ControlPulse: a.Seq.controlPulses(),
		PALM:         a.Par.PALM,
		INHINT:       a.Int.INHINT,
		Display:      a.Dsky.Decode(),
	}
}
