package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingType string

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Read and change device settings",
	Long: `Read and change device settings, grouped by type ('audio', 'picture',
'timers', ...). Use 'setting types' to list the groups the device exposes.`,
}

var settingTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the setting groups the device exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		types, err := device.SettingTypes()
		if err != nil {
			return err
		}
		if types == nil {
			return fmt.Errorf("device did not answer")
		}
		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	},
}

var settingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings of a type with current values",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		settings, err := device.AllSettings(settingType)
		if err != nil {
			return err
		}
		if settings == nil {
			return fmt.Errorf("device did not answer")
		}
		printJSON(settings)
		return nil
	},
}

var settingGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Read one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		value, err := device.Setting(settingType, args[0])
		if err != nil {
			return err
		}
		if value == nil {
			return fmt.Errorf("setting %q not found (or device did not answer)", args[0])
		}
		fmt.Println(value)
		return nil
	},
}

var settingSetCmd = &cobra.Command{
	Use:   "set [name] [value]",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		// Numeric values go over the wire as numbers, anything else as a
		// string choice.
		var value any = args[1]
		if n, err := strconv.Atoi(args[1]); err == nil {
			value = n
		}

		return reportCommand(device.SetSetting(settingType, args[0], value))
	},
}

var settingOptionsCmd = &cobra.Command{
	Use:   "options [name]",
	Short: "Show the valid range or choices for one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		opts, err := device.SettingOptions(settingType, args[0])
		if err != nil {
			return err
		}
		if opts == nil {
			return fmt.Errorf("setting %q not found (or device did not answer)", args[0])
		}
		printJSON(opts)
		return nil
	},
}

func init() {
	registerDeviceFlags(settingCmd)
	settingCmd.PersistentFlags().StringVarP(&settingType, "type", "T", "audio", "setting type (group)")
	settingCmd.AddCommand(settingTypesCmd)
	settingCmd.AddCommand(settingListCmd)
	settingCmd.AddCommand(settingGetCmd)
	settingCmd.AddCommand(settingSetCmd)
	settingCmd.AddCommand(settingOptionsCmd)
	rootCmd.AddCommand(settingCmd)
}
