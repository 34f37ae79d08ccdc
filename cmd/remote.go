package cmd

import (
	"github.com/spf13/cobra"

	"vizcast/cmd/cli"
	"vizcast/internal/logger"
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Start the interactive remote",
	Long: `Launch a terminal remote control for the target device. Arrow keys
navigate, enter confirms, +/- adjust volume; press q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Log lines would tear the TUI.
		logger.SetSilentMode(true)

		device, err := targetDevice()
		if err != nil {
			return err
		}
		return cli.StartRemote(device)
	},
}

func init() {
	registerDeviceFlags(remoteCmd)
	rootCmd.AddCommand(remoteCmd)
}
