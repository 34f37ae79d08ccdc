package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device information",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		info, err := device.DeviceInfo()
		if err != nil {
			return err
		}
		if info == nil {
			return fmt.Errorf("device did not answer")
		}
		printJSON(info)
		return nil
	},
}

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Manage saved devices",
}

var deviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		devices, err := store.ListDevices()
		if err != nil {
			return err
		}
		if len(devices) == 0 {
			fmt.Println("No saved devices")
			return nil
		}
		for _, d := range devices {
			paired := " "
			if d.AuthToken != "" {
				paired = "*"
			}
			fmt.Printf("%s %s\t%s\t%s\n", paired, d.Name, d.Class, d.Host)
		}
		return nil
	},
}

var deviceRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a saved device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newStore().RemoveDevice(args[0])
	},
}

func init() {
	registerDeviceFlags(infoCmd)
	deviceCmd.AddCommand(deviceListCmd)
	deviceCmd.AddCommand(deviceRemoveCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(deviceCmd)
}
