// Copyright (c) 2025 Neomantra Corp

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

///////////////////////////////////////////////////////////////////////////////

// exitCode is set by whichever RunE handler fails, so main can report the
// three-way exit status spec.md §6 demands (0 clean, 1 I/O error, 2
// malformed input or CLI error) instead of cobra's default binary
// success/failure signal.
var exitCode int

func main() {
	cobra.OnInitialize()

	bindRunFlags(rootCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(inspectJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		if exitCode == 0 {
			exitCode = 2
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(exitCode)
	}
	os.Exit(exitCode)
}

///////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:           "itch-lob",
	Short:         "itch-lob replays a NASDAQ TotalView-ITCH 5.0 capture into a single-symbol limit order book",
	Long:          "itch-lob decodes a raw ITCH 5.0 capture file, reconstructs one symbol's limit order book, and emits top-of-book snapshots as CSV or JSONL, optionally broadcasting them over a WebSocket as they're produced.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRun,
}
