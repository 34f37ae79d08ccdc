package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var powerCmd = &cobra.Command{
	Use:   "power [on|off|toggle|status]",
	Short: "Control or query device power",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		switch args[0] {
		case "on":
			return reportCommand(device.PowerOn())
		case "off":
			return reportCommand(device.PowerOff())
		case "toggle":
			return reportCommand(device.PowerToggle())
		case "status":
			state, err := device.PowerState()
			if err != nil {
				return err
			}
			if state == nil {
				return fmt.Errorf("device did not answer")
			}
			if *state {
				fmt.Println("on")
			} else {
				fmt.Println("off")
			}
			return nil
		default:
			return fmt.Errorf("unknown power action: %s", args[0])
		}
	},
}

func init() {
	registerDeviceFlags(powerCmd)
	rootCmd.AddCommand(powerCmd)
}
