package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key [name...]",
	Short: "Send remote key presses",
	Long: `Send one or more remote key presses to the device. Multiple names are
sent as a single batch. Use 'key list' to see the names the target device
class supports.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		if len(args) == 1 && strings.EqualFold(args[0], "list") {
			for _, name := range device.KeyList() {
				fmt.Println(name)
			}
			return nil
		}

		names := make([]string, len(args))
		for i, a := range args {
			names[i] = strings.ToUpper(a)
		}

		log.Debug().Strs("keys", names).Str("host", device.Host()).Msg("Sending key presses")
		return reportCommand(device.Keys(names...))
	},
}

func init() {
	registerDeviceFlags(keyCmd)
	rootCmd.AddCommand(keyCmd)
}
