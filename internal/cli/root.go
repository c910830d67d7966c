package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag is the global --config override, shared by all commands.
var configFlag string

// rootCmd is the base command for gaugectl.
var rootCmd = &cobra.Command{
	Use:   "gaugectl",
	Short: "Drive analog panel gauges from live host metrics",
	Long: `gaugectl samples CPU, network, disk, and memory activity and streams
actuation commands to a four-channel analog gauge controller over a
serial link.

Run 'gaugectl init' once to create a config file, then 'gaugectl drive'
to start the meters.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
