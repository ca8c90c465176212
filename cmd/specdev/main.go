package main

import (
	"fmt"
	"os"

	"github.com/specdevagent/specdev/internal/cli"
)

func main() {
	err := cli.Execute()
	if msg := cli.ExitMessage(err); msg != "" {
		fmt.Fprintf(os.Stderr, "specdev: %s\n", msg)
	}
	os.Exit(cli.ExitCode(err))
}
