package main

import (
	"github.com/spf13/cobra"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "mzpeaks",
	Short: "mzpeaks - peak list tooling for mass spectrometry",
	Long: `mzpeaks works with centroided peak lists: filtering by coordinate windows,
sorting, reindexing, and converting between neutral mass and m/z.

This is the command line companion of the mzpeaks data model library, a Go
port of the original Rust crate.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(mzCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
