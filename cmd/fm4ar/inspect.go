package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mobra7/fm4ar/pkg/config"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file-or-experiment-dir]",
	Short: "Load a config and print a summary",
	Long: `Loads a config file (or the config.yaml inside an experiment
directory) through the full pipeline - environment expansion, schema
validation, semantic validation - and prints a summary of the result.

Examples:
  fm4ar inspect config.yaml
  fm4ar inspect $FM4AR_EXPERIMENTS_DIR/fmpe-run-1`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("file or experiment directory required")
	}

	cfg, err := config.LoadAny(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Kind: %s\n", cfg.Kind())
	printSummary(cfg)

	if warnings := config.Warnings(cfg); len(warnings) > 0 {
		fmt.Printf("\n⚠️  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	return nil
}

func printSummary(cfg config.Config) {
	switch c := cfg.(type) {
	case *config.TrainConfig:
		fmt.Printf("Dataset:      %s\n", c.Dataset.FilePath)
		fmt.Printf("Model type:   %s\n", c.Model.ModelType)
		fmt.Printf("Stages:       %d\n", len(c.Training.Stages))
		fmt.Printf("Device:       %s\n", c.Local.Device)
		if c.Local.WandB != nil {
			fmt.Printf("W&B project:  %s\n", c.Local.WandB.Project)
		}

	case *config.NestedSamplingConfig:
		fmt.Printf("Target:       %s (index %d)\n", c.TargetSpectrum.FilePath, c.TargetSpectrum.Index)
		fmt.Printf("Sampler:      %s (%d live points)\n", c.Sampler.Library, c.Sampler.NLivepoints)
		fmt.Printf("Parameters:   %d\n", len(c.Prior.Parameters))
		counts := actionCounts(c.Prior.Parameters)
		fmt.Printf("Actions:      %d infer / %d marginalize / %d condition\n",
			counts[config.ActionInfer], counts[config.ActionMarginalize], counts[config.ActionCondition])

	case *config.ImportanceSamplingConfig:
		fmt.Printf("Target:       %s (index %d)\n", c.TargetSpectrum.FilePath, c.TargetSpectrum.Index)
		fmt.Printf("Checkpoint:   %s\n", c.CheckpointName)
		fmt.Printf("Samples:      %d (chunks of %d)\n", c.DrawProposalSamples.NSamples, c.DrawProposalSamples.ChunkSize)
		fmt.Printf("Sigma:        %g\n", c.Likelihood.Sigma)

	case *config.PlotConfig:
		fmt.Printf("Results:      %d\n", len(c.Results))
		for _, r := range c.Results {
			fmt.Printf("  - %s: %s\n", r.Label, r.FilePath)
		}
		fmt.Printf("Figure:       %gx%g in, %d dpi, %s\n", c.Figure.Width, c.Figure.Height, c.Figure.DPI, c.Figure.Format)
	}
}

func actionCounts(parameters map[string]config.ParameterAction) map[config.ActionKind]int {
	counts := make(map[config.ActionKind]int, 3)
	for _, action := range parameters {
		counts[action.Action]++
	}
	return counts
}
