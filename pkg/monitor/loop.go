package monitor

import (
	"fmt"
	"io"

	"github.com/retrocompute/agcsim/pkg/agc"
)

// ClockMode selects how the driver loop advances the machine's clock
// between command lines.
type ClockMode int

const (
	ModeHalt ClockMode = iota
	ModeManual
	ModeFast
	ModeStandby
)

func (m ClockMode) String() string {
	switch m {
	case ModeHalt:
		return "HALT"
	case ModeManual:
		return "MANUAL"
	case ModeFast:
		return "FAST"
	case ModeStandby:
		return "STANDBY"
	}
	return "?"
}

// Breakpoint is a single address breakpoint the monitor's "break"
// command installs: the loop halts clocking back to ModeHalt at TP1
// of a FETCH whose address (CADR) equals Addr, not on intermediate
// addresses mid-instruction. A breakpoint set on the current PC does
// not fire immediately: it arms once Z leaves the address and fires
// only on a later fetch from it.
type Breakpoint struct {
	Addr    uint16
	Enabled bool
	armed   bool
}

// Loop is the batching driver: one Tick per pass in MANUAL mode or a
// burst of Batch ticks in FAST mode, plus a non-blocking check of
// pending input, interleaving host I/O with
// device work the way pkg/host's process loop does, generalized from
// a serial downloader's command loop to this simulator's clocking
// loop.
type Loop struct {
	AGC   *agc.AGC
	Mode  ClockMode
	Break Breakpoint
	Out   io.Writer
	Batch int // ticks run per pass in FAST mode before the next command line is read

	dispatch *Dispatcher
}

func NewLoop(a *agc.AGC, out io.Writer) *Loop {
	l := &Loop{AGC: a, Mode: ModeHalt, Out: out, Batch: 100}
	l.dispatch = NewDispatcher(l)
	return l
}

// Run drives the loop until in is exhausted (EOF), reading one command
// line at a time and, between lines, clocking the machine according to
// Mode. FAST mode runs a bounded burst of ticks per pass rather than
// running to completion, so a pending command line is never starved.
func (l *Loop) Run(in *Input) {
	for {
		line := in.Get()
		switch line {
		case "":
		case "EOF":
			return
		default:
			l.dispatch.Dispatch(line)
		}
		l.clock(l.Batch)
	}
}

func (l *Loop) clock(fastBurst int) {
	switch l.Mode {
	case ModeHalt, ModeStandby:
		return
	case ModeManual:
		l.AGC.Mon.RUN = true
		l.AGC.Mon.FCLK = false
		l.AGC.RequestClock()
		l.AGC.Tick()
	case ModeFast:
		l.AGC.Mon.RUN = true
		l.AGC.Mon.FCLK = true
		for i := 0; i < fastBurst; i++ {
			l.AGC.Tick()
			if l.checkBreak() {
				l.Mode = ModeHalt
				fmt.Fprintf(l.Out, "break at Z=%05o\n", l.AGC.Crg.Z.Read())
				return
			}
		}
	}
}

// checkBreak implements the breakpoint's arm/fire pair: armed goes
// true the first tick Z differs from Addr, and once armed the
// breakpoint fires on the TP1 tick of FETCH when CADR equals Addr, so
// setting a breakpoint on the current PC does not trigger until
// execution has actually left and come back.
func (l *Loop) checkBreak() bool {
	if !l.Break.Enabled {
		return false
	}
	z := l.AGC.Crg.Z.Read()
	if !l.Break.armed {
		if z != l.Break.Addr {
			l.Break.armed = true
		}
		return false
	}
	st := l.AGC.Observe()
	return st.TP == "TP1" && st.Subseq == "FETCH" && (st.BNK<<10|st.S) == l.Break.Addr
}
