package agc

// Adr is the address path: S selects a location within the currently
// addressed bank, BNK selects the bank. INDEX's deferred addend is
// also kept here since it is consumed the next time WSADR fires.
type Adr struct {
	S       Register
	BNK     Register
	IndexOn bool
	IndexV  uint16
}

func newAdr() Adr {
	return Adr{
		S:   NewRegister("S", 10),
		BNK: NewRegister("BNK", 5),
	}
}

// cadr packs S and BNK into the flat address the Memory module indexes
// by: CADR = (BNK<<10)|S.
func (r *Adr) cadr() uint16 { return uint16(r.BNK.Read())<<10 | r.S.Read() }

// loadAddressField implements WSADR: S takes the low ten bits of the
// instruction word just fetched into G, plus any addend INDEX left
// pending from the previous instruction. The addend is consumed
// exactly once.
func (a *AGC) loadAddressField() {
	field := a.Mem.G.Read() & 0x3FF
	if a.Adr.IndexOn {
		sum, _ := add15(field, a.Adr.IndexV, false)
		field = sum & 0x3FF
		a.Adr.IndexOn = false
	}
	a.Adr.S.Write(field)
}
