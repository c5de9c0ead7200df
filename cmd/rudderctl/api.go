// API command for the rudderctl CLI.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rudder-desktop/rudderctl/internal/client"
)

var (
	apiMethod string
	apiBody   string
)

var apiCmd = &cobra.Command{
	Use:   "api ENDPOINT",
	Short: "Run an API call against the background service",
	Long: `Runs a single HTTP request against the background service's API using the
resolved connection settings, and prints the raw response body. The endpoint
must be absolute, e.g. 'rudderctl api /v1/settings'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := connectionInfo()
		if err != nil {
			return err
		}
		var body io.Reader
		if apiBody != "" {
			body = strings.NewReader(apiBody)
		}
		payload, err := client.New(info).Do(cmd.Context(), strings.ToUpper(apiMethod), args[0], body)
		if len(payload) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		}
		return err
	},
}

func init() {
	apiCmd.Flags().StringVarP(&apiMethod, "method", "X", "GET", "HTTP method to use")
	apiCmd.Flags().StringVarP(&apiBody, "body", "b", "", "request body")
}
