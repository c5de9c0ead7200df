// Package main provides build targets for the rudderctl project using Mage.
//
// Usage:
//
//	mage build     Compile the rudderctl binary to bin/
//	mage test      Run all tests
//	mage lint      Run golangci-lint
//	mage install   Install rudderctl to GOPATH/bin
//	mage clean     Remove build artifacts

//go:build mage

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName  = "rudderctl"
	binaryDir   = "bin"
	cmdDir      = "./cmd/rudderctl"
	versionPath = "github.com/rudder-desktop/rudderctl/pkg/rudderctl.Version"
)

// version derives the build version from git, falling back to "dev" outside
// a checkout.
func version() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

// Build compiles the rudderctl binary to bin/ with the version stamped in.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	ldflags := "-X " + versionPath + "=" + version()
	return sh.RunV("go", "build", "-v", "-ldflags", ldflags, "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// CI runs the full verification pipeline.
func CI() {
	mg.SerialDeps(Lint, Test, Build)
}

// Install installs rudderctl to GOPATH/bin.
func Install() error {
	ldflags := "-X " + versionPath + "=" + version()
	return sh.RunV("go", "install", "-ldflags", ldflags, cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
