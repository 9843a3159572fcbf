package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/ecopayback/internal/cli"
	"github.com/rshade/ecopayback/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.Full())
	return root.ExecuteContext(context.Background())
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func main() {
	err := run()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		// Invalid-input results were already rendered with their feedback.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
