package cmd

import (
	"github.com/spf13/cobra"

	"vizcast/internal/bridge"
	"vizcast/internal/logger"
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Run the HTTP bridge for smart home platforms",
	Long: `Run a small REST API in front of one or more SmartCast devices so smart
home platforms can poll and drive them. Configuration comes from the
environment (VIZCAST_BIND_ADDR, VIZCAST_AUTH_TOKEN, ...), with .env support.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The bridge is a daemon; it always logs.
		logger.SetSilentMode(false)

		cfg, err := bridge.LoadConfig()
		if err != nil {
			return err
		}

		server, err := bridge.NewServer(cfg)
		if err != nil {
			return err
		}
		return server.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(bridgeCmd)
}
