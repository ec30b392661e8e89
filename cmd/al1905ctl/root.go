// Command al1905ctl decodes, forges, replays, and interactively
// explores IEEE 1905.1/1a CMDUs and LLDPDUs on the wire.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netlayer/ieee1905al/pkg/logging"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "al1905ctl",
	Short: "IEEE 1905.1/1a CMDU/TLV engine control and inspection tool",
	Long: `al1905ctl decodes and forges IEEE 1905.1/1a CMDUs and TLVs,
replays recorded capture sessions back onto an interface, and offers an
interactive explorer over a live reassembly registry.`,
	Version:           version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitColors(!noColor)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	rootCmd.SetVersionTemplate(fmt.Sprintf("al1905ctl %s\n", version))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
