package cmd

import (
	"github.com/spf13/cobra"

	"vizcast/internal/logger"
)

var (
	verbose    bool
	configPath string
	log        = logger.New()
)

var rootCmd = &cobra.Command{
	Use:   "vizcast",
	Short: "Vizcast - control SmartCast TVs and speakers",
	Long: `Vizcast is a command-line client for SmartCast televisions and sound bars.
It handles pairing, remote key emulation, inputs, settings and app launching,
and can run as a small HTTP bridge for smart home platforms.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetSilentMode(false)
			logger.SetLevel("debug")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "device config file (default ~/.vizcast.yaml)")
}
