package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrocompute/agcsim/pkg/agc"
	"github.com/retrocompute/agcsim/pkg/monitor"
)

var (
	runFast    bool
	runRun     bool
	runFclk    bool
	runSA      bool
	runSclEnab bool
	runInst    bool
	runBatch   int
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run objFile",
	Short: "Load an object file and drive it with the interactive monitor",
	Long: `Run loads an object file's address/value pairs into memory,
powers the machine up, and hands control to the monitor's command loop
reading from standard input. Use -fast to start already clocking
instead of halted; -run, -fclk, -sa, -scl-enab, and -inst set the
corresponding monitor switch before the first command line is read.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		words, err := agc.LoadObject(f)
		if err != nil {
			return err
		}

		a := agc.NewAGC()
		a.Install(words)
		a.Mon.RUN = runRun
		a.Mon.FCLK = runFclk
		a.Mon.SA = runSA
		a.Mon.SCL_ENAB = runSclEnab
		a.Mon.INST = runInst

		loop := monitor.NewLoop(a, os.Stdout)
		loop.Batch = runBatch
		if runFast {
			loop.Mode = monitor.ModeFast
		}
		loop.Run(monitor.NewInput(os.Stdin, "agcsim> "))

		st := a.Observe()
		fmt.Printf("final: TP=%-4s SQ=%-8s A=%05o Q=%05o Z=%05o LP=%05o S=%05o PALM=%v INHINT=%v\n",
			st.TP, st.SQ, st.A, st.Q, st.Z, st.LP, st.S, st.PALM, st.INHINT)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runFast, "fast", false, "start in FAST clocking mode instead of HALT")
	runCmd.Flags().BoolVar(&runRun, "run", false, "set the RUN monitor switch before the first command line")
	runCmd.Flags().BoolVar(&runFclk, "fclk", false, "set the FCLK monitor switch before the first command line")
	runCmd.Flags().BoolVar(&runSA, "sa", false, "set the STANDBY ALLOWED monitor switch before the first command line")
	runCmd.Flags().BoolVar(&runSclEnab, "scl-enab", true, "set the SCL_ENAB monitor switch before the first command line")
	runCmd.Flags().BoolVar(&runInst, "inst", false, "set the INST monitor switch before the first command line")
	runCmd.Flags().IntVar(&runBatch, "batch", 100, "ticks run per pass in FAST mode before the next command line is read")
}
