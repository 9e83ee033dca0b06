package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Input is a nonblocking stdin line reader: a background goroutine
// feeds a channel, and get returns "" rather than blocking when no
// line is ready within the poll window, so the driver loop's clocking
// never stalls waiting on a human (grounded on pkg/host/input.go).
type Input struct {
	lines        chan string
	interactive  bool
	promptNeeded bool
	prompt       string
}

// NewInput starts the reader goroutine against r. Pass os.Stdin in
// production; tests pass a strings.Reader or io.Pipe end.
func NewInput(r io.Reader, prompt string) *Input {
	interactive := false
	if f, ok := r.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	in := &Input{
		lines:        make(chan string),
		interactive:  interactive,
		promptNeeded: interactive,
		prompt:       prompt,
	}
	go in.reader(r)
	return in
}

func (in *Input) reader(r io.Reader) {
	reader := bufio.NewReader(r)
	for {
		s, err := reader.ReadString('\n')
		if err != nil {
			in.lines <- "EOF"
			close(in.lines)
			return
		}
		in.lines <- s
	}
}

func (in *Input) promptIfNeeded() {
	if in.promptNeeded {
		fmt.Print(in.prompt)
		in.promptNeeded = false
	}
}

// Get returns the next complete line, or "" if none has arrived within
// the poll window. "EOF" is returned once, verbatim, when the input
// source closes.
func (in *Input) Get() string {
	in.promptIfNeeded()
	select {
	case line, ok := <-in.lines:
		if !ok {
			return ""
		}
		in.promptNeeded = in.interactive
		return line
	case <-time.After(20 * time.Millisecond):
		return ""
	}
}
