package agc

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenarioWord struct {
	Addr  uint16 `yaml:"addr"`
	Value uint16 `yaml:"value"`
}

type scenario struct {
	Name    string          `yaml:"name"`
	Program []scenarioWord  `yaml:"program"`
	Setup   map[string]uint16 `yaml:"setup"`
	Steps   int             `yaml:"steps"`
	Want    map[string]uint16 `yaml:"want"`
}

func (a *AGC) applySetup(setup map[string]uint16) {
	for reg, v := range setup {
		switch reg {
		case "a":
			a.Crg.A.Write(v)
		case "q":
			a.Crg.Q.Write(v)
		case "z":
			a.Crg.Z.Write(v)
		case "lp":
			a.Crg.LP.Write(v)
		}
	}
}

func (a *AGC) observedRegister(reg string) uint16 {
	switch reg {
	case "a":
		return a.Crg.A.Read()
	case "q":
		return a.Crg.Q.Read()
	case "z":
		return a.Crg.Z.Read()
	case "lp":
		return a.Crg.LP.Read()
	}
	return 0
}

// TestScenarios drives the golden fixtures under testdata/scenarios
// end to end, one machine per scenario: load the program, apply any
// initial register setup, step the requested number of instructions,
// then check every named register the fixture asserts on, expressing
// execution-level assertions as data instead of Go code.
func TestScenarios(t *testing.T) {
	entries, err := os.ReadDir("../../testdata/scenarios")
	require.NoError(t, err)

	for _, entry := range entries {
		data, err := os.ReadFile("../../testdata/scenarios/" + entry.Name())
		require.NoError(t, err)

		var scenarios []scenario
		require.NoError(t, yaml.Unmarshal(data, &scenarios))

		for _, sc := range scenarios {
			sc := sc
			t.Run(sc.Name, func(t *testing.T) {
				a := NewAGC()
				words := make([]Word, len(sc.Program))
				for i, w := range sc.Program {
					words[i] = Word{Addr: w.Addr, Value: w.Value}
				}
				a.Install(words)
				a.applySetup(sc.Setup)

				for i := 0; i < sc.Steps; i++ {
					a.Step()
				}

				for reg, want := range sc.Want {
					require.EqualValues(t, want, a.observedRegister(reg), "register %s", reg)
				}
			})
		}
	}
}
