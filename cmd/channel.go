package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var channelSteps int

var channelCmd = &cobra.Command{
	Use:   "channel [up|down|prev]",
	Short: "Change tuner channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		switch args[0] {
		case "up":
			return reportCommand(device.ChannelUp(channelSteps))
		case "down":
			return reportCommand(device.ChannelDown(channelSteps))
		case "prev":
			return reportCommand(device.ChannelPrev())
		default:
			return fmt.Errorf("unknown channel action: %s", args[0])
		}
	},
}

func init() {
	registerDeviceFlags(channelCmd)
	channelCmd.Flags().IntVarP(&channelSteps, "steps", "n", 1, "number of channel steps")
	rootCmd.AddCommand(channelCmd)
}
