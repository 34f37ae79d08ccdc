package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"vizcast/internal/cli"
	"vizcast/internal/smartcast"
)

var (
	pairDeviceID  string
	pairChallenge int
	pairToken     int
	pairSaveName  string
)

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Pair with a SmartCast device",
	Long: `Pair with a SmartCast device to obtain an auth token.

Pairing is a three step exchange: 'start' makes the device display a PIN,
'finish' submits the PIN and returns the token, and 'cancel' dismisses the
PIN screen. The same --id must be used for start and finish. Speakers
display no PIN; finish with any value.`,
}

var pairStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin pairing and make the device show a PIN",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := pairTarget()
		if err != nil {
			return err
		}

		challenge, err := device.StartPair()
		if err != nil {
			return err
		}
		if challenge == nil {
			return fmt.Errorf("device did not answer")
		}

		fmt.Printf("Pairing started. Finish with:\n")
		fmt.Printf("  vizcast pair finish --host %s --class %s --id %s --challenge %d --pair-token %d <pin>\n",
			device.Host(), device.Class(), pairDeviceID, challenge.ChallengeType, challenge.Token)
		return nil
	},
}

var pairFinishCmd = &cobra.Command{
	Use:   "finish [pin]",
	Short: "Submit the on-screen PIN and obtain the auth token",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := pairTarget()
		if err != nil {
			return err
		}

		pin := ""
		if len(args) > 0 {
			pin = args[0]
		}

		creds, err := device.Pair(pairChallenge, pairToken, pin)
		if err != nil {
			return err
		}
		if creds == nil {
			return fmt.Errorf("pairing failed: device did not answer or rejected the PIN")
		}

		fmt.Printf("Auth token: %s\n", creds.AuthToken)

		if pairSaveName != "" {
			store := newStore()
			entry := cli.DeviceEntry{
				Name:      pairSaveName,
				Host:      device.Host(),
				Class:     string(device.Class()),
				DeviceID:  pairDeviceID,
				AuthToken: creds.AuthToken,
			}
			if err := store.SaveDevice(entry); err != nil {
				return err
			}
			fmt.Printf("Saved as '%s'\n", pairSaveName)
		}
		return nil
	},
}

var pairCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel an in-flight pairing and dismiss the PIN screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := pairTarget()
		if err != nil {
			return err
		}
		ok, err := device.CancelPair()
		return reportCommand(ok, err)
	},
}

// pairTarget builds the client with the pairing device id instead of the
// saved one, so start and finish agree on DEVICE_ID.
func pairTarget() (*smartcast.Device, error) {
	host := deviceHost
	if host == "" {
		return nil, fmt.Errorf("no device host: pass --host")
	}
	class := deviceClass
	if class == "" {
		class = "tv"
	}
	parsed, err := smartcast.ParseDeviceClass(class)
	if err != nil {
		return nil, err
	}
	return smartcast.New(pairDeviceID, host, "vizcast", parsed)
}

func init() {
	registerDeviceFlags(pairCmd)
	pairCmd.PersistentFlags().StringVar(&pairDeviceID, "id", uuid.NewString(), "client device id presented to the device")

	pairFinishCmd.Flags().IntVar(&pairChallenge, "challenge", 1, "challenge type from pair start")
	pairFinishCmd.Flags().IntVar(&pairToken, "pair-token", 0, "pairing request token from pair start")
	pairFinishCmd.Flags().StringVar(&pairSaveName, "save", "", "save the paired device under this name")
	pairFinishCmd.MarkFlagRequired("pair-token")

	pairCmd.AddCommand(pairStartCmd)
	pairCmd.AddCommand(pairFinishCmd)
	pairCmd.AddCommand(pairCancelCmd)
	rootCmd.AddCommand(pairCmd)
}
