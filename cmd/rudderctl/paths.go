// Paths command for the rudderctl CLI.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rudder-desktop/rudderctl/internal/paths"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the directories the application uses, as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := paths.Resolve(paths.CurrentPlatform())
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
