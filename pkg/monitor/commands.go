package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retrocompute/agcsim/pkg/agc"
)

type handler func(l *Loop, args []string) error

type command struct {
	short   string
	long    string
	help    string
	handler handler
}

// Dispatcher is the monitor's table-driven command processor: each
// input line's first word is matched against the short or long name,
// the rest split as space-separated arguments (grounded on the
// teacher's pkg/host/handlers.go command table, generalized from
// downloader protocol commands to this simulator's monitor commands).
type Dispatcher struct {
	loop     *Loop
	commands []command
}

func NewDispatcher(l *Loop) *Dispatcher {
	d := &Dispatcher{loop: l}
	d.commands = []command{
		{"h", "help", "list commands", cmdHelp},
		{"rs", "reset", "reset the machine", cmdReset},
		{"md", "mode", "mode halt|manual|fast|standby", cmdMode},
		{"cl", "clock", "strobe one timing pulse in manual mode", cmdClock},
		{"st", "step", "single-step one instruction", cmdStep},
		{"ld", "load", "load FILE.obj into memory", cmdLoad},
		{"dp", "dump", "dump memory to FILE.obj", cmdDump},
		{"br", "break", "break ADDR (octal); break off to disable", cmdBreak},
		{"pi", "pinc", "request counter N increment", cmdPinc},
		{"mi", "minc", "request counter N decrement", cmdMinc},
		{"ri", "rupt", "raise interrupt N", cmdRupt},
		{"cp", "clrpalm", "clear the parity alarm", cmdClrPalm},
		{"ky", "key", "press DSKY key SYMBOL (0-9,+,-,CLEAR,VERB,NOUN,KEY_RELEASE,ERROR_RESET,ENTER)", cmdKey},
		{"ob", "observe", "print observable state", cmdObserve},
	}
	return d
}

// Dispatch parses and runs one input line. Unknown commands and
// handler errors are reported to Out rather than returned, the same
// way pkg/host's process() loop treats them: a bad command line should
// not kill the monitor.
func (d *Dispatcher) Dispatch(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	word, args := fields[0], fields[1:]
	for _, c := range d.commands {
		if word == c.short || word == c.long {
			if err := c.handler(d.loop, args); err != nil {
				fmt.Fprintf(d.loop.Out, "error: %v\n", err)
			}
			return
		}
	}
	fmt.Fprintf(d.loop.Out, "unknown command %q (try \"help\")\n", word)
}

func cmdHelp(l *Loop, _ []string) error {
	d := l.dispatch
	for _, c := range d.commands {
		fmt.Fprintf(l.Out, "%-4s %-10s %s\n", c.short, c.long, c.help)
	}
	return nil
}

func cmdReset(l *Loop, _ []string) error {
	l.AGC.Reset()
	l.Mode = ModeHalt
	return nil
}

func cmdMode(l *Loop, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mode halt|manual|fast|standby")
	}
	switch strings.ToLower(args[0]) {
	case "halt":
		l.Mode = ModeHalt
		l.AGC.Mon.RUN, l.AGC.Mon.FCLK = false, false
	case "manual":
		l.Mode = ModeManual
		l.AGC.Mon.FCLK = false
	case "fast":
		l.Mode = ModeFast
	case "standby":
		l.Mode = ModeStandby
		l.AGC.Mon.SA = true
	default:
		return fmt.Errorf("unknown mode %q", args[0])
	}
	return nil
}

func cmdClock(l *Loop, _ []string) error {
	if l.Mode != ModeManual {
		return fmt.Errorf("clock requires manual mode")
	}
	l.AGC.RequestClock()
	l.AGC.Tick()
	return nil
}

func cmdStep(l *Loop, _ []string) error {
	l.AGC.Mon.STEP = true
	l.AGC.Step()
	return nil
}

func cmdLoad(l *Loop, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load FILE")
	}
	return loadFile(l, args[0])
}

func cmdDump(l *Loop, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: dump FILE")
	}
	return dumpFile(l, args[0])
}

func cmdBreak(l *Loop, args []string) error {
	if len(args) == 1 && strings.ToLower(args[0]) == "off" {
		l.Break.Enabled = false
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: break ADDR|off")
	}
	addr, err := strconv.ParseUint(args[0], 8, 16)
	if err != nil {
		return err
	}
	l.Break = Breakpoint{Addr: uint16(addr), Enabled: true}
	return nil
}

func parseIndex(args []string, max int) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: N 0-%d", max-1)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= max {
		return 0, fmt.Errorf("index out of range: %q", args[0])
	}
	return n, nil
}

func cmdPinc(l *Loop, args []string) error {
	n, err := parseIndex(args, 7)
	if err != nil {
		return err
	}
	l.AGC.Ctr.RequestUp(n)
	return nil
}

func cmdMinc(l *Loop, args []string) error {
	n, err := parseIndex(args, 7)
	if err != nil {
		return err
	}
	l.AGC.Ctr.RequestDn(n)
	return nil
}

func cmdRupt(l *Loop, args []string) error {
	n, err := parseIndex(args, 5)
	if err != nil {
		return err
	}
	l.AGC.Int.Raise(n)
	return nil
}

func cmdClrPalm(l *Loop, _ []string) error {
	l.AGC.ClearPALM()
	return nil
}

func cmdKey(l *Loop, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: key SYMBOL (0-9, +, -, CLEAR, VERB, NOUN, KEY_RELEASE, ERROR_RESET, ENTER)")
	}
	key, ok := agc.ParseKeySymbol(strings.ToUpper(args[0]))
	if !ok {
		return fmt.Errorf("unknown key symbol: %q", args[0])
	}
	l.AGC.Dsky.PressKey(key)
	return nil
}

func cmdObserve(l *Loop, _ []string) error {
	st := l.AGC.Observe()
	fmt.Fprintf(l.Out, "TP=%-4s SQ=%-8s A=%05o Q=%05o Z=%05o LP=%05o S=%05o PALM=%v INHINT=%v CP=%s\n",
		st.TP, st.SQ, st.A, st.Q, st.Z, st.LP, st.S, st.PALM, st.INHINT, st.ControlPulse)
	return nil
}
