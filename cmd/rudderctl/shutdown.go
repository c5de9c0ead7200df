// Shutdown command for the rudderctl CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rudder-desktop/rudderctl/internal/client"
)

var shutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Shut down the background service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := connectionInfo()
		if err != nil {
			return err
		}
		payload, err := client.New(info).Put(cmd.Context(), "/v1/shutdown", nil)
		if err != nil {
			return err
		}
		if len(payload) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Shutting down the background service.")
		return nil
	},
}
