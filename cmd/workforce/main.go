// Package main is the entry point for the workforce CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

var (
	// Version information (set by build)
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := newRootCommand(env{
		fs:     afero.NewOsFs(),
		stderr: os.Stderr,
	})
	return rootCmd.Execute()
}
