package monitor

import (
	"fmt"
	"os"

	"github.com/retrocompute/agcsim/pkg/agc"
)

func loadFile(l *Loop, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	words, err := agc.LoadObject(f)
	if err != nil {
		return err
	}
	l.AGC.Install(words)
	fmt.Fprintf(l.Out, "loaded %d words from %s\n", len(words), path)
	return nil
}

func dumpFile(l *Loop, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := agc.DumpObject(f, l.AGC); err != nil {
		return err
	}
	fmt.Fprintf(l.Out, "dumped to %s\n", path)
	return nil
}
