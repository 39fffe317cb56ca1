package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mobra7/fm4ar/pkg/paths"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the resolved fm4ar base directories",
	Long: `Shows the base directories resolved from the FM4AR_DATASETS_DIR and
FM4AR_EXPERIMENTS_DIR environment variables. Config files reference these
via $NAME expansion; a load fails if a referenced variable is unset.`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	printDir(paths.EnvDatasetsDir, paths.DatasetsDir)
	printDir(paths.EnvExperimentsDir, paths.ExperimentsDir)
	return nil
}

func printDir(variable string, resolve func() (string, error)) {
	dir, err := resolve()
	if err != nil {
		fmt.Printf("%s: (not set)\n", variable)
		return
	}
	fmt.Printf("%s: %s\n", variable, dir)
}
