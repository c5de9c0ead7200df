// Root command for the rudderctl CLI.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rudder-desktop/rudderctl/internal/config"
)

// Global flag values. The connection flags mirror config.Overrides; their
// origin does not matter to the resolver, only whether they were set.
var (
	flagConfigPath string
	flagHost       string
	flagPort       string
	flagUser       string
	flagPassword   string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rudderctl",
	Short: "Control a locally-running Rudder Desktop",
	Long: `rudderctl talks to the HTTP API of the Rudder Desktop background service.
Connection settings come from command-line overrides, then the rd-engine.json
file the service writes on startup, then built-in defaults.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config-path", "", "config file (default: rd-engine.json in the application home)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "overrides the user setting in the config file")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "default is 127.0.0.1; most useful for WSL")
	rootCmd.PersistentFlags().StringVar(&flagPort, "port", "", "overrides the port setting in the config file")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "overrides the password setting in the config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(shutdownCmd)
}

// connectionInfo resolves the connection descriptor from the global flags.
func connectionInfo() (*config.ConnectionInfo, error) {
	r := &config.Resolver{
		Overrides: config.Overrides{
			ConnectionInfo: config.ConnectionInfo{
				Host:     flagHost,
				Port:     flagPort,
				User:     flagUser,
				Password: flagPassword,
			},
			ConfigPath: flagConfigPath,
		},
	}
	return r.Resolve()
}
