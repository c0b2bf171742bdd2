package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mgrue/stacklang"
	"github.com/mgrue/stacklang/internal/cache"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Scan, parse, and type-check a source file, printing each cycle's stack-effect type",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	source := string(content)

	var store *cache.Cache
	var digest string
	if cacheDSN != "" {
		store, err = cache.Open(cacheDSN)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer store.Close()

		digest = cache.Digest(source)
		if cached, hit, err := store.Lookup(digest); err != nil {
			return fmt.Errorf("reading cache: %w", err)
		} else if hit {
			fmt.Println(cached)
			if verbose {
				fmt.Fprintf(os.Stderr, "%s\n", dim(fmt.Sprintf("run %s: cache hit for %s", runID, args[0])))
			}
			return nil
		}
	}

	start := time.Now()
	ctx := stacklang.Check(source)
	elapsed := time.Since(start)

	if ctx.FatalErr != nil {
		return fmt.Errorf("%s", red(ctx.FatalErr.Error()))
	}

	// ctx.Results only holds cycles that checked successfully, so it is not
	// index-aligned with ctx.Cycles when an earlier cycle failed; report
	// successes and failures as two separate lists rather than a transcript.
	var out []byte
	for _, result := range ctx.Results {
		label := result.Name
		if label == "" {
			label = "term"
		}
		line := fmt.Sprintf("%s => %s", label, green(result.Type.String()))
		fmt.Println(line)
		out = append(out, []byte(line+"\n")...)
	}

	for _, diagErr := range ctx.Errors {
		fmt.Fprintln(os.Stderr, red(diagErr.Error()))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%s\n", dim(fmt.Sprintf(
			"run %s: %d cycles, %d errors, checked in %s",
			runID, len(ctx.Cycles), len(ctx.Errors), humanize.RelTime(start, start.Add(elapsed), "", ""),
		)))
	}

	if store != nil && len(ctx.Errors) == 0 {
		if err := store.Store(digest, string(out)); err != nil {
			return fmt.Errorf("writing cache: %w", err)
		}
	}

	if len(ctx.Errors) > 0 {
		return fmt.Errorf("%d cycle(s) failed to type-check", len(ctx.Errors))
	}
	return nil
}
