package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vizcast/internal/appcatalog"
)

var appCountry string

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Query and launch apps",
}

var appCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the running app",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		name, err := device.CurrentApp(appcatalog.New().Apps())
		if err != nil {
			return err
		}
		fmt.Println(name)
		return nil
	},
}

var appLaunchCmd = &cobra.Command{
	Use:   "launch [name]",
	Short: "Launch an app by catalog name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}
		return reportCommand(device.LaunchApp(args[0], appcatalog.New().Apps()))
	},
}

var appListCmd = &cobra.Command{
	Use:   "list",
	Short: "List launchable apps from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range appcatalog.New().Names(appCountry) {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	registerDeviceFlags(appCmd)
	appListCmd.Flags().StringVar(&appCountry, "country", "all", "filter apps by country code")
	appCmd.AddCommand(appCurrentCmd)
	appCmd.AddCommand(appLaunchCmd)
	appCmd.AddCommand(appListCmd)
	rootCmd.AddCommand(appCmd)
}
