package agc

// Seq is the sequencer: the current instruction, its stage, branch
// outcomes, and the control pulse list consulted for the current tick.
type Seq struct {
	SQ      Register // 4-bit opcode
	STA     Register // 3-bit stage
	STB     Register // 3-bit stage
	SNI     Register // select-next-instruction flip-flop
	BR1     Register // branch flag 1
	BR2     Register // branch flag 2
	LOOPCTR Register // MP/DV multi-cycle loop counter

	Subseq     Subseq
	nextSubseq Subseq // decoded at FETCH's TP8, installed at FETCH's TP12
	CP         []Pulse // glbl_cp[]: this tick's control pulse list
	skip       int      // instructions for ZSKIP to advance Z by; CLRSNI resets it to 1 each cycle
}

func newSeq() Seq {
	return Seq{
		SQ:      NewRegister("SQ", 4),
		STA:     NewRegister("STA", 3),
		STB:     NewRegister("STB", 3),
		SNI:     NewRegister("SNI", 1),
		BR1:     NewRegister("BR1", 1),
		BR2:     NewRegister("BR2", 1),
		LOOPCTR: NewRegister("LOOPCTR", 3),
	}
}

func (s *Seq) opcode() Opcode { return Opcode(s.SQ.Read()) }

// stage packs STA/STB as STA + 2*STB, used only for display/debugging.
func (s *Seq) stage() int { return int(s.STA.Read()) + 2*int(s.STB.Read()) }

// controlPulses renders the current pulse list as the original's
// SEQ::getControlPulses() did, space-separated pulse names, for the
// observable-state surface.
func (s *Seq) controlPulses() string {
	out := ""
	for i, p := range s.CP {
		if p == NoPulse {
			break
		}
		if i > 0 {
			out += " "
		}
		out += p.String()
	}
	return out
}
