package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Manage device inputs",
}

var inputListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available inputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		inputs, err := device.Inputs()
		if err != nil {
			return err
		}
		if inputs == nil {
			return fmt.Errorf("device did not answer")
		}

		for _, in := range inputs {
			if in.MetaData != "" && in.MetaData != in.MetaName {
				fmt.Printf("%s (%s)\n", in.MetaName, in.MetaData)
				continue
			}
			fmt.Println(in.MetaName)
		}
		return nil
	},
}

var inputGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the active input",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}

		input, err := device.CurrentInput()
		if err != nil {
			return err
		}
		if input == nil {
			return fmt.Errorf("device did not answer")
		}
		fmt.Println(input.MetaName)
		return nil
	},
}

var inputSetCmd = &cobra.Command{
	Use:   "set [name]",
	Short: "Switch to the named input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}
		return reportCommand(device.SetInput(args[0]))
	},
}

var inputNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Cycle to the next input",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := targetDevice()
		if err != nil {
			return err
		}
		return reportCommand(device.NextInput())
	},
}

func init() {
	registerDeviceFlags(inputCmd)
	inputCmd.AddCommand(inputListCmd)
	inputCmd.AddCommand(inputGetCmd)
	inputCmd.AddCommand(inputSetCmd)
	inputCmd.AddCommand(inputNextCmd)
	rootCmd.AddCommand(inputCmd)
}
