// Package main provides the rudderctl CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/rudder-desktop/rudderctl/internal/config"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, config.ErrServiceNotRunning) {
			color.New(color.FgYellow).Fprintln(os.Stderr,
				"Either run 'rudderctl start' or start Rudder Desktop, then try again.")
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
	os.Exit(exitSuccess)
}
