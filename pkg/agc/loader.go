package agc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Word is one assembled memory word, the loader's unit of work.
type Word struct {
	Addr  uint16
	Value uint16
}

// LoadObject parses the line-oriented object format this simulator
// reads programs from: each non-blank, non-comment line is a 5-digit
// octal address, whitespace, a 5-digit octal value, and an optional
// ';'-introduced comment. A line may also carry only a label-style
// comment and nothing else, which is skipped. The format mirrors the
// address/value pairs a listing file's left two columns show, grounded
// on the line-oriented lexer in pkg/asm/lexer.go, adapted from token
// scanning to whole-line parsing since this format needs no symbol
// table.
func LoadObject(r io.Reader) ([]Word, error) {
	var words []Word
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if semi := strings.IndexByte(line, ';'); semi >= 0 {
			line = line[:semi]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("loader: line %d: want ADDR VALUE, got %q", lineNo, line)
		}
		addr, err := strconv.ParseUint(fields[0], 8, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "loader: line %d: bad address %q", lineNo, fields[0])
		}
		val, err := strconv.ParseUint(fields[1], 8, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "loader: line %d: bad value %q", lineNo, fields[1])
		}
		words = append(words, Word{Addr: uint16(addr), Value: uint16(val) & 0x7FFF})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "loader: read")
	}
	return words, nil
}

// Install writes a parsed program into memory via LoadRaw, bypassing
// the fixed-region run-mode write guard the way a freshly burned rope
// bypasses it: an install can write rope, but a running program cannot.
func (a *AGC) Install(words []Word) {
	for _, w := range words {
		a.Mem.LoadRaw(w.Addr, w.Value)
	}
}

// DumpObject renders memory back to the loader's line format, the
// direction that round-trips with LoadObject. It writes only nonzero
// words, in ascending address order, since a
// full memory dump would be mostly noise.
func DumpObject(w io.Writer, a *AGC) error {
	for addr := 0; addr < erasableWords; addr++ {
		if v := a.Mem.Erasable[addr]; v != 0 {
			if _, err := fmt.Fprintf(w, "%05o %05o\n", addr, v); err != nil {
				return err
			}
		}
	}
	for i, v := range a.Mem.Fixed {
		if v != 0 {
			if _, err := fmt.Fprintf(w, "%05o %05o\n", i+erasableWords, v); err != nil {
				return err
			}
		}
	}
	return nil
}
