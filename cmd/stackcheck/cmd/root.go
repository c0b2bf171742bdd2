package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0-dev"

	verbose  bool
	noColor  bool
	cacheDSN string
)

// runID tags a single invocation of the CLI for correlating diagnostics
// across a verbose run; it is not persisted anywhere.
var runID = uuid.NewString()

var rootCmd = &cobra.Command{
	Use:     "stackcheck",
	Short:   "Scanner, parser, and stack-effect type checker for a tiny concatenative language",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic detail")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cacheDSN, "cache", "", "path to a sqlite cache of checked results (disabled if empty)")
}

// colorEnabled reports whether stdout is a terminal and the user has not
// asked for plain output.
func colorEnabled() bool {
	return !noColor && isatty.IsTerminal(os.Stdout.Fd())
}

func colorize(code, s string) string {
	if !colorEnabled() {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, s)
}

func red(s string) string   { return colorize("31", s) }
func green(s string) string { return colorize("32", s) }
func dim(s string) string   { return colorize("2", s) }
