package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vizcast/internal/discovery"
)

var discoverTimeout time.Duration

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find SmartCast devices on the local network",
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := discovery.Discover(discovery.ServiceType, discoverTimeout)
		if err != nil {
			return err
		}
		if len(devices) == 0 {
			fmt.Println("No devices found")
			return nil
		}

		for _, d := range devices {
			fmt.Printf("%s\t%s\n", d.IP, d.Location)
		}
		return nil
	},
}

func init() {
	discoverCmd.Flags().DurationVar(&discoverTimeout, "timeout", 4*time.Second, "how long to collect responses")
	rootCmd.AddCommand(discoverCmd)
}
