package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mobra7/fm4ar/pkg/config"
	"github.com/mobra7/fm4ar/pkg/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate configuration files against their schemas",
	Long: `Validates fm4ar YAML configs (training, nested sampling, importance
sampling, plotting) against their embedded JSON schemas.

Automatically detects the config kind from the document's top-level
sections. Can also explicitly specify the kind with the --kind flag.

Examples:
  fm4ar validate config.yaml
  fm4ar validate retrievals/nautilus.yaml --kind nested_sampling
  fm4ar validate plots/comparison.yaml --schema-only`,
	RunE: runValidate,
}

var (
	validateKind       string
	validateVerbose    bool
	validateSchemaOnly bool
)

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateKind, "kind", "auto", "Config kind: auto, train, nested_sampling, importance_sampling, plot")
	validateCmd.Flags().BoolVar(&validateVerbose, "verbose", false, "Show detailed validation errors")
	validateCmd.Flags().BoolVar(&validateSchemaOnly, "schema-only", false, "Only validate schema, skip semantic checks")

	// Bind flags to viper
	_ = viper.BindPFlag("kind", validateCmd.Flags().Lookup("kind"))
	_ = viper.BindPFlag("schema_only", validateCmd.Flags().Lookup("schema-only"))
}

func runValidate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("file path required")
	}

	filePath := args[0]
	data, kind, err := prepareValidation(filePath)
	if err != nil {
		return err
	}

	// Schema validation
	if err := performSchemaValidation(data, kind, filePath); err != nil {
		return err
	}

	// Semantic validation (if requested)
	if !viper.GetBool("schema_only") {
		if err := performSemanticValidation(filePath); err != nil {
			return err
		}
	}

	fmt.Printf("\n✅ %s is valid\n", filepath.Base(filePath))
	return nil
}

func prepareValidation(filePath string) ([]byte, config.ConfigKind, error) {
	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, "", fmt.Errorf("file not found: %s", filePath)
	}

	// Read file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	// Determine config kind
	kind := viper.GetString("kind")
	if kind == "" {
		kind = validateKind
	}
	if kind == "auto" {
		detected, err := config.DetectConfigKind(data)
		if err != nil {
			return nil, "", fmt.Errorf("could not auto-detect config kind: %w\nUse --kind to specify explicitly", err)
		}
		logger.Debug("detected config kind", "kind", detected, "file", filePath)
		return data, detected, nil
	}

	return data, config.ConfigKind(kind), nil
}

func performSchemaValidation(data []byte, kind config.ConfigKind, filePath string) error {
	fmt.Printf("Validating %s as kind '%s'...\n", filepath.Base(filePath), kind)

	result, err := config.ValidateWithSchema(data, kind)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid {
		fmt.Printf("❌ Schema validation failed for %s:\n", filePath)
		displayProblems(result.Errors, validateVerbose)
		return fmt.Errorf("schema validation failed with %d error(s)", len(result.Errors))
	}

	fmt.Printf("✅ Schema validation passed for %s\n", filePath)
	return nil
}

func performSemanticValidation(filePath string) error {
	fmt.Println("\nRunning semantic validation...")
	cfg, err := config.LoadAny(filePath)
	if err != nil {
		fmt.Printf("❌ Semantic validation failed:\n")
		fmt.Printf("  %s\n", err.Error())
		return err
	}

	warnings := config.Warnings(cfg)
	if len(warnings) > 0 {
		fmt.Printf("\n⚠️  Validation warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}
	} else {
		fmt.Println("✅ Semantic validation passed")
	}

	return nil
}

func displayProblems(problems []config.FieldProblem, verbose bool) {
	maxProblems := 5
	if verbose {
		maxProblems = len(problems)
	}

	displayed := 0
	for i, p := range problems {
		if i >= maxProblems {
			break
		}
		fmt.Printf("  - %s\n", p.String())
		displayed++
	}

	if !verbose && len(problems) > maxProblems {
		remaining := len(problems) - displayed
		fmt.Printf("\n  ... and %d more error(s) (use --verbose to see all)\n", remaining)
	}
}
