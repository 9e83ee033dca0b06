package agc

// ruptCount is the number of interrupt request lines this simulator models.
const ruptCount = 5

// Int is the interrupt subsystem: the request priority cell RPCELL,
// the per-source pending flags Rupt, and the two inhibit latches.
// INHINT blocks a new interrupt from being taken at all; INHINT1 is
// the one-shot inhibit an interrupt entry itself raises so the
// interrupt's own first instruction cannot be re-interrupted before
// RESUME clears it.
type Int struct {
	Rupt     [ruptCount]bool
	INHINT   bool
	INHINT1  bool
	Active   int    // index of the interrupt currently in service, -1 if none
	SavedZ   uint16 // ZRUPT
	SavedBR1 uint16
	SavedBR2 uint16
	SavedA   uint16 // ARUPT
	SavedB   uint16 // BRUPT
	SavedQ   uint16 // QRUPT
}

func newInt() Int { return Int{Active: -1} }

// Raise sets a source's pending flag; the monitor's interrupt command
// and the counter/scaler subsystems that model timed interrupts both
// go through this.
func (ic *Int) Raise(i int) {
	if i >= 0 && i < ruptCount {
		ic.Rupt[i] = true
	}
}

// pending reports the lowest-indexed requested interrupt, or -1.
func (ic *Int) pending() int {
	for i := 0; i < ruptCount; i++ {
		if ic.Rupt[i] {
			return i
		}
	}
	return -1
}

// grantInterrupt implements WPINT: at FETCH's boundary, if nothing is
// already in service and neither inhibit is set, the lowest pending
// interrupt is taken. Taking one saves Z/BR1/BR2 and the ZRUPT/ARUPT/
// BRUPT/QRUPT quartet (Z, A, B, Q), clears the request, sets INHINT1,
// and redirects the sequencer into the RUPT0 subsequence instead of
// FETCH's normal decode; RESUME restores the state a granted
// interrupt saved.
func (a *AGC) grantInterrupt() bool {
	if a.Int.Active != -1 || a.Int.INHINT || a.Int.INHINT1 {
		return false
	}
	i := a.Int.pending()
	if i == -1 {
		return false
	}
	a.Int.Rupt[i] = false
	a.Int.Active = i
	a.Int.SavedZ = a.Crg.Z.Read()
	a.Int.SavedBR1 = a.Seq.BR1.Read()
	a.Int.SavedBR2 = a.Seq.BR2.Read()
	a.Int.SavedA = a.Crg.A.Read()
	a.Int.SavedB = a.Alu.B.Read()
	a.Int.SavedQ = a.Crg.Q.Read()
	a.Int.INHINT1 = true
	a.Seq.Subseq = SubRUPT0
	return true
}

// resume implements the RESUME extracode: it restores Z/BR1/BR2 and
// A/B/Q from the active interrupt's saved state, clears INHINT1, and
// returns control to FETCH.
func (a *AGC) resume() {
	a.Crg.Z.Write(a.Int.SavedZ)
	a.Seq.BR1.Write(a.Int.SavedBR1)
	a.Seq.BR2.Write(a.Int.SavedBR2)
	a.Crg.A.Write(a.Int.SavedA)
	a.Alu.B.Write(a.Int.SavedB)
	a.Crg.Q.Write(a.Int.SavedQ)
	a.Int.INHINT1 = false
	a.Int.Active = -1
	a.Seq.Subseq = SubFETCH
}
