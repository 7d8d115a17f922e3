// Package main contains the entrypoint for the autocorrect CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/edgard/autocorrect/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCommand()

	err := root.Execute()
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, "error:", err)

	return 1
}
