package agc

// Channel addresses: Block I exposes the DSKY as memory-mapped
// channels rather than dedicated opcodes, so any instruction that
// reads or writes these locations reads or writes the DSKY instead of
// core.
const (
	chIn0 = 0x3F0 + iota
	chIn1
	chIn2
	chIn3
	chOut1
	chOut2
	chOut3
	chOut4
)

// isChannelAddr reports whether CADR names a DSKY channel rather than
// core memory; channel traffic has no stored parity bit to check.
func isChannelAddr(cadr uint16) bool { return cadr >= chIn0 && cadr <= chOut4 }

// channelRead and channelWrite intercept CADR before it reaches core
// memory. ok is false for any address outside the channel range, in
// which case the caller falls through to ordinary memory access.
func (a *AGC) channelRead(cadr uint16) (v uint16, ok bool) {
	switch cadr {
	case chIn0:
		return a.Dsky.In[0].Read(), true
	case chIn1:
		return a.Dsky.In[1].Read(), true
	case chIn2:
		return a.Dsky.In[2].Read(), true
	case chIn3:
		return a.Dsky.In[3].Read(), true
	case chOut1:
		return a.Dsky.Out[0].Read(), true
	case chOut2:
		return a.Dsky.Out[1].Read(), true
	case chOut3:
		return a.Dsky.Out[2].Read(), true
	case chOut4:
		return a.Dsky.Out[3].Read(), true
	}
	return 0, false
}

func (a *AGC) channelWrite(cadr, v uint16) bool {
	switch cadr {
	case chOut1:
		a.Dsky.Out[0].Write(v)
	case chOut2:
		a.Dsky.Out[1].Write(v)
	case chOut3:
		a.Dsky.Out[2].Write(v)
	case chOut4:
		a.Dsky.Out[3].Write(v)
	default:
		return false
	}
	return true
}

// KeyIn is one of KBD's 5-bit keycodes, the translated form a host
// key-symbol becomes before it reaches IN1. The numbering is this
// simulator's own, not a historical Block I encoder table.
type KeyIn uint16

const (
	Key0 KeyIn = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyPlus
	KeyMinus
	KeyClear
	KeyVerb
	KeyNoun
	KeyKeyRelease
	KeyErrorReset
	KeyEnter
)

// keySymbols maps KBD's host-facing key-symbol names to their 5-bit
// code, a translation table instead of passing an operator's raw
// number straight through.
var keySymbols = map[string]KeyIn{
	"0": Key0, "1": Key1, "2": Key2, "3": Key3, "4": Key4,
	"5": Key5, "6": Key6, "7": Key7, "8": Key8, "9": Key9,
	"+": KeyPlus, "-": KeyMinus, "−": KeyMinus,
	"CLEAR":       KeyClear,
	"VERB":        KeyVerb,
	"NOUN":        KeyNoun,
	"KEY_RELEASE": KeyKeyRelease,
	"ERROR_RESET": KeyErrorReset,
	"ENTER":       KeyEnter,
}

// ParseKeySymbol translates a host key-symbol name into its KeyIn
// code. Digit symbols also accept a bare numeral.
func ParseKeySymbol(sym string) (KeyIn, bool) {
	k, ok := keySymbols[sym]
	return k, ok
}

// keyStrobeBit marks IN1's latched code as a fresh, unacknowledged
// keypress; reading IN1 leaves it set, and ReleaseKey (the KEY_RELEASE
// key-symbol) clears it.
const keyStrobeBit = 1 << 5

// Dsky is the display/keyboard interface: the four input lines a
// keypress drives and the four output registers the program loads to
// drive the seven-segment displays.
type Dsky struct {
	In  [4]Register
	Out [4]Register

	Key      int // last keycode latched by a keypress, -1 if none pending
	KeyReady bool
}

func newDsky() Dsky {
	d := Dsky{Key: -1}
	for i := range d.In {
		d.In[i] = NewRegister("IN", 15)
	}
	for i := range d.Out {
		d.Out[i] = NewRegister("OUT", 15)
	}
	return d
}

// PressKey latches a translated keycode onto IN1 with its strobe bit
// set, the register KBD's encoder matrix drove, and raises KeyReady
// for whatever subsequence services DSKY input. Pressing KEY_RELEASE
// itself clears KeyReady instead of latching a code, mirroring a
// physical key release rather than a keypress.
func (d *Dsky) PressKey(key KeyIn) {
	if key == KeyKeyRelease {
		d.ReleaseKey()
		return
	}
	d.Key = int(key)
	d.KeyReady = true
	d.In[1].Write(uint16(key)&0x1F | keyStrobeBit)
}

// ReleaseKey clears the pending keypress and its strobe, the
// KEY_RELEASE key-symbol's effect.
func (d *Dsky) ReleaseKey() {
	d.Key = -1
	d.KeyReady = false
	d.In[1].Write(0)
}

// dskyScan implements F10's periodic keyboard poll: while a key
// remains unacknowledged, each scan re-asserts its strobe on IN1 so a
// program that missed one poll still sees it on the next.
func (a *AGC) dskyScan() {
	if a.Dsky.KeyReady {
		a.Dsky.In[1].Write(uint16(a.Dsky.Key)&0x1F | keyStrobeBit)
	}
}

// sevenSegment decodes one BCD-ish digit value (0-9, else blank) into
// the seven-segment bit pattern the original's digit driver tables
// used, segment A as bit 0 through segment G as bit 6.
func sevenSegment(digit uint16) uint16 {
	patterns := [10]uint16{
		0x3F, 0x06, 0x5B, 0x4F, 0x66,
		0x6D, 0x7D, 0x07, 0x7F, 0x6F,
	}
	if digit < 10 {
		return patterns[digit]
	}
	return 0
}

// OUT1 status bits: software sets these by writing OUT1 directly,
// they are not computed by any hardware status logic here.
const (
	out1CompActy   = 1 << 0
	out1UplinkActy = 1 << 2
	out1KeyRel     = 1 << 4
	out1OperErr    = 1 << 6
	out1ProgAlm    = 1 << 8
)

// DisplayState is what Decode renders OUT1-4 into for the monitor's
// observable-state surface: MD (mode/program), VD (verb), ND (noun),
// and R1-R3 (the three data registers), each value split into decimal
// digits (sevenSegment is not applied; it converts one digit to its
// segment pattern on request). The R1-R3 sign bits are bit 14 of
// OUT2-OUT4, and the flash bit is bit 14 of OUT1.
type DisplayState struct {
	MD, VD, ND     [2]uint16
	R1, R2, R3     [5]uint16
	SignR1, SignR2 bool
	SignR3         bool
	Flash          bool

	CompActy   bool
	UplinkActy bool
	KeyRel     bool
	OperErr    bool
	ProgAlm    bool
}

func digits(v uint16, n int) []uint16 {
	out := make([]uint16, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = v % 10
		v /= 10
	}
	return out
}

func (d *Dsky) Decode() DisplayState {
	var st DisplayState
	md := digits(d.Out[0].Read()&0x7F, 2)
	st.MD[0], st.MD[1] = md[0], md[1]
	vn := d.Out[0].Read() >> 7
	v := digits(vn&0x7F, 2)
	n := digits((vn>>7)&0x7F, 2)
	st.VD[0], st.VD[1] = v[0], v[1]
	st.ND[0], st.ND[1] = n[0], n[1]

	r1 := digits(d.Out[1].Read()&0x7FFF, 5)
	copy(st.R1[:], r1)
	r2 := digits(d.Out[2].Read()&0x7FFF, 5)
	copy(st.R2[:], r2)
	r3 := digits(d.Out[3].Read()&0x7FFF, 5)
	copy(st.R3[:], r3)

	st.SignR1 = d.Out[1].Read()&0x4000 != 0
	st.SignR2 = d.Out[2].Read()&0x4000 != 0
	st.SignR3 = d.Out[3].Read()&0x4000 != 0
	st.Flash = d.Out[0].Read()&0x4000 != 0

	out1 := d.Out[0].Read()
	st.CompActy = out1&out1CompActy != 0
	st.UplinkActy = out1&out1UplinkActy != 0
	st.KeyRel = out1&out1KeyRel != 0
	st.OperErr = out1&out1OperErr != 0
	st.ProgAlm = out1&out1ProgAlm != 0
	return st
}
