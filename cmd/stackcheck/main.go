// Command stackcheck scans, parses, and type-checks stack-effect
// programs from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/mgrue/stacklang/cmd/stackcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
