package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vizcast/internal/cli"
	"vizcast/internal/smartcast"
)

// Device target flags shared by every device-facing command. A saved
// --device entry supplies host/class/token; explicit flags override it.
var (
	deviceName    string
	deviceHost    string
	deviceClass   string
	deviceToken   string
	deviceTimeout time.Duration
)

// registerDeviceFlags attaches the shared target flags to a command group.
func registerDeviceFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&deviceName, "device", "D", "", "saved device name from the config file")
	cmd.PersistentFlags().StringVarP(&deviceHost, "host", "H", "", "device host address (ip or ip:port)")
	cmd.PersistentFlags().StringVarP(&deviceClass, "class", "C", "", "device class: tv or speaker (default tv)")
	cmd.PersistentFlags().StringVarP(&deviceToken, "token", "t", "", "pairing auth token")
	cmd.PersistentFlags().DurationVar(&deviceTimeout, "timeout", smartcast.DefaultTimeout, "per-request timeout")
}

func newStore() *cli.Store {
	path := configPath
	if path == "" {
		path = cli.DefaultConfigPath()
	}
	return cli.NewStore(path)
}

// targetDevice resolves the flags into a control client.
func targetDevice() (*smartcast.Device, error) {
	host := deviceHost
	class := deviceClass
	token := deviceToken
	id := "vizcast"

	if deviceName != "" {
		entry, err := newStore().GetDevice(deviceName)
		if err != nil {
			return nil, err
		}
		if host == "" {
			host = entry.Host
		}
		if class == "" {
			class = entry.Class
		}
		if token == "" {
			token = entry.AuthToken
		}
		if entry.DeviceID != "" {
			id = entry.DeviceID
		}
	}

	if host == "" {
		return nil, fmt.Errorf("no device host: pass --host or --device")
	}
	if class == "" {
		class = "tv"
	}

	parsed, err := smartcast.ParseDeviceClass(class)
	if err != nil {
		return nil, err
	}
	return smartcast.New(id, host, "vizcast", parsed,
		smartcast.WithAuthToken(token),
		smartcast.WithTimeout(deviceTimeout))
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(data))
}

// reportCommand prints the outcome of a fire-and-forget device command.
func reportCommand(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("device did not answer")
	}
	fmt.Println("OK")
	return nil
}
