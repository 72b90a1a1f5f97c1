// Command kazu spells numbers as Japanese numerals.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/kazu/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kazu: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
