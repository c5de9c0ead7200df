// Version command for the rudderctl CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rudder-desktop/rudderctl/pkg/rudderctl"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rudderctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "rudderctl", rudderctl.Version)
	},
}
