package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var volumeSteps int

var volumeCmd = &cobra.Command{
	Use:   "volume [up|down|get]",
	Short: "Adjust or query volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		switch args[0] {
		case "up":
			return reportCommand(device.VolumeUp(volumeSteps))
		case "down":
			return reportCommand(device.VolumeDown(volumeSteps))
		case "get":
			volume, err := device.CurrentVolume()
			if err != nil {
				return err
			}
			if volume == nil {
				return fmt.Errorf("device did not answer")
			}
			fmt.Printf("%d/%d\n", *volume, device.MaxVolume())
			return nil
		default:
			return fmt.Errorf("unknown volume action: %s", args[0])
		}
	},
}

var muteCmd = &cobra.Command{
	Use:   "mute [on|off|toggle|status]",
	Short: "Control or query mute",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		switch args[0] {
		case "on":
			return reportCommand(device.MuteOn())
		case "off":
			return reportCommand(device.MuteOff())
		case "toggle":
			return reportCommand(device.MuteToggle())
		case "status":
			muted, err := device.IsMuted()
			if err != nil {
				return err
			}
			if muted == nil {
				return fmt.Errorf("device did not answer")
			}
			if *muted {
				fmt.Println("muted")
			} else {
				fmt.Println("unmuted")
			}
			return nil
		default:
			return fmt.Errorf("unknown mute action: %s", args[0])
		}
	},
}

func init() {
	registerDeviceFlags(volumeCmd)
	registerDeviceFlags(muteCmd)
	volumeCmd.Flags().IntVarP(&volumeSteps, "steps", "n", 1, "number of volume steps")
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(muteCmd)
}
