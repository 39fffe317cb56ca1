package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mobra7/fm4ar/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "fm4ar",
	Short:         "fm4ar - Configuration tooling for atmospheric retrieval pipelines",
	Version:       GetVersion(),
	SilenceUsage:  true,  // Don't print usage on error
	SilenceErrors: false, // Do print errors
	Long: `fm4ar is the configuration tool for the fm4ar atmospheric retrieval
pipeline. It validates and inspects the YAML configs consumed by the
training, nested sampling, importance sampling, and plotting engines.

Config values may reference environment variables ($FM4AR_DATASETS_DIR,
$FM4AR_EXPERIMENTS_DIR); references are expanded before validation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger based on verbose flag if present
		// This runs before all subcommands
		if cmd.Flags().Changed("verbose") {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error getting verbose flag: %v\n", err)
				return
			}
			logger.SetVerbose(verbose)
		}
	},
}

// setupVersion configures the version display
func setupVersion() {
	rootCmd.SetVersionTemplate(GetVersionInfo() + "\n")
}

func Execute() {
	setupVersion()
	err := rootCmd.Execute()
	if err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func main() {
	Execute()
}
