package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "agcsim",
	Short: "A cycle-accurate Apollo Guidance Computer Block I simulator",
	Long: `agcsim simulates the Block I AGC's central processor at the
timing-pulse and control-pulse level: every tick dispatches the same
four-sweep read/ALU/write sequence the hardware's control pulse matrix
drove. Subcommands load object files, run programs, and drive an
interactive monitor for stepping and inspecting machine state.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
