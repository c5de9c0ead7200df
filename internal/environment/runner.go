package environment

import (
	"bytes"
	"os/exec"
)

// CommandRunner executes an external command and returns its standard output.
// Resolution logic only ever goes through this type, so tests can supply a
// fake instead of spawning real processes.
type CommandRunner func(name string, args ...string) ([]byte, error)

// runCommand is the CommandRunner used outside of tests. Standard error is
// discarded: cmd.exe prints warnings when started from a directory that has
// no Windows view, and those must not end up in the captured output.
func runCommand(name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
