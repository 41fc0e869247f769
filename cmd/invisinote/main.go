package main

import (
	"os"

	"invisinote/cmd/invisinote/cli"
	"invisinote/internal/errors"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			cli.PrintError(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}
