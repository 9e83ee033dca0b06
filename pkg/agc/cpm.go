package agc

// cpmKey identifies one cell of the control pulse matrix: which
// subsequence is running, which timing pulse this tick is on, and the
// two branch flags. No subsequence here has a branch-dependent cell:
// every entry is installed under all four BR1/BR2 combinations by
// cpmSet.
type cpmKey struct {
	Sub Subseq
	TP  TPState
	BR1 bool
	BR2 bool
}

var cpm = map[cpmKey][]Pulse{}

// cpmSet installs one (subsequence, TP) entry under all four BR1/BR2
// combinations, the common case of a branch-independent cell.
func cpmSet(sub Subseq, tp TPState, pulses ...Pulse) {
	for _, br1 := range []bool{false, true} {
		for _, br2 := range []bool{false, true} {
			cpm[cpmKey{sub, tp, br1, br2}] = pulses
		}
	}
}

func init() {
	// FETCH: common to every instruction. Address setup, memory read,
	// decode, address-field load. The PC advance is each execution
	// subsequence's own ZSKIP at TP12.
	cpmSet(SubFETCH, TP1, CLRSNI, RZ, WS)
	cpmSet(SubFETCH, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubFETCH, TP8, NISQ)
	cpmSet(SubFETCH, TP9, WSADR)
	cpmSet(SubFETCH, TP12, SETSNI)

	cpmSet(SubTC0, TP1, CLRSNI)
	cpmSet(SubTC0, TP9, RS, WZ)
	cpmSet(SubTC0, TP12, ZSKIP, SETSNI)

	cpmSet(SubCCS0, TP1, CLRSNI)
	cpmSet(SubCCS0, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubCCS0, TP8, WAABS, CCSDECIDE)
	cpmSet(SubCCS0, TP12, ZSKIP, SETSNI)

	cpmSet(SubINDEX0, TP1, CLRSNI)
	cpmSet(SubINDEX0, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubINDEX0, TP8, WIDX)
	cpmSet(SubINDEX0, TP12, ZSKIP, SETSNI)

	cpmSet(SubXCH0, TP1, CLRSNI)
	cpmSet(SubXCH0, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubXCH0, TP8, WXCHG)
	cpmSet(SubXCH0, TP12, ZSKIP, SETSNI)

	cpmSet(SubCS0, TP1, CLRSNI)
	cpmSet(SubCS0, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubCS0, TP8, ZEROX, RYN, CIclr, WALU, WA)
	cpmSet(SubCS0, TP12, ZSKIP, SETSNI)

	cpmSet(SubTS0, TP1, CLRSNI)
	cpmSet(SubTS0, TP9, RA, WMEM)
	cpmSet(SubTS0, TP12, ZSKIP, SETSNI)

	cpmSet(SubAD0, TP1, CLRSNI)
	cpmSet(SubAD0, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubAD0, TP8, RX, RY, CIclr, WALU, WA)
	cpmSet(SubAD0, TP12, ZSKIP, SETSNI)

	cpmSet(SubMASK0, TP1, CLRSNI)
	cpmSet(SubMASK0, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubMASK0, TP8, RX, RY, WALUAND, WA)
	cpmSet(SubMASK0, TP12, ZSKIP, SETSNI)

	cpmSet(SubSU0, TP1, CLRSNI)
	cpmSet(SubSU0, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubSU0, TP8, RX, RYN, CIclr, WALU, WA)
	cpmSet(SubSU0, TP12, ZSKIP, SETSNI)

	cpmSet(SubMP1, TP1, CLRSNI, SETLOOPCTR)
	cpmSet(SubMP1, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubMP1, TP8, WMPY)
	cpmSet(SubMP1, TP9, DECLOOPCTR)
	cpmSet(SubMP1, TP12, ZSKIP, SETSNI)

	cpmSet(SubDV1, TP1, CLRSNI, SETLOOPCTR)
	cpmSet(SubDV1, TP5, RMEM, WG, WG15, TP)
	cpmSet(SubDV1, TP8, WDIV)
	cpmSet(SubDV1, TP9, DECLOOPCTR)
	cpmSet(SubDV1, TP12, ZSKIP, SETSNI)

	cpmSet(SubRESUME0, TP1, CLRSNI)
	cpmSet(SubRESUME0, TP8, WRESUME)
	cpmSet(SubRESUME0, TP12, SETSNI)

	cpmSet(SubRUPT0, TP1, CLRSNI)
	cpmSet(SubRUPT0, TP9, WRUPTVEC)
	cpmSet(SubRUPT0, TP12, SETSNI)
}

// lookupCP returns this tick's control pulse list, empty if the
// current (subsequence, TP) cell has nothing scheduled (most TPs in
// most subsequences are idle; Block I's actual matrix is equally
// sparse).
func lookupCP(sub Subseq, tp TPState, br1, br2 bool) []Pulse {
	return cpm[cpmKey{sub, tp, br1, br2}]
}
