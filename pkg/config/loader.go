package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the conventional name of the config file inside an
// experiment directory.
const DefaultConfigName = "config.yaml"

// LoadTrainConfig loads and validates a training configuration.
func LoadTrainConfig(path string) (*TrainConfig, error) {
	return loadTypedConfig[TrainConfig, *TrainConfig](path, ConfigKindTrain)
}

// LoadNestedSamplingConfig loads and validates a nested sampling
// configuration.
func LoadNestedSamplingConfig(path string) (*NestedSamplingConfig, error) {
	return loadTypedConfig[NestedSamplingConfig, *NestedSamplingConfig](path, ConfigKindNestedSampling)
}

// LoadImportanceSamplingConfig loads and validates an importance sampling
// configuration.
func LoadImportanceSamplingConfig(path string) (*ImportanceSamplingConfig, error) {
	return loadTypedConfig[ImportanceSamplingConfig, *ImportanceSamplingConfig](path, ConfigKindImportanceSampling)
}

// LoadPlotConfig loads and validates a plotting configuration.
func LoadPlotConfig(path string) (*PlotConfig, error) {
	return loadTypedConfig[PlotConfig, *PlotConfig](path, ConfigKindPlot)
}

// LoadAny detects the config kind from the document and loads it with the
// matching shape.
func LoadAny(path string) (Config, error) {
	data, err := os.ReadFile(resolveConfigPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	kind, err := DetectConfigKind(data)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ConfigKindTrain:
		return LoadTrainConfig(path)
	case ConfigKindNestedSampling:
		return LoadNestedSamplingConfig(path)
	case ConfigKindImportanceSampling:
		return LoadImportanceSamplingConfig(path)
	case ConfigKindPlot:
		return LoadPlotConfig(path)
	}
	return nil, fmt.Errorf("unsupported config kind %q", kind)
}

// document is the loader-side contract of a typed configuration object.
type document interface {
	Config
	applyDefaults()
	check(c *checker)
}

// loadTypedConfig runs the full loading pipeline: read, parse, expand
// environment references, schema-validate, unmarshal, apply defaults, and
// semantic-validate. It either returns a fully populated object or an
// error; never both.
func loadTypedConfig[T any, PT interface {
	*T
	document
}](path string, kind ConfigKind) (PT, error) {
	path = resolveConfigPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if root.Kind == 0 {
		return nil, &ParseError{Path: path, Err: errors.New("document is empty")}
	}

	// Expansion happens before validation so that schema errors report the
	// values a consumer would actually see.
	if err := expandEnvNode(&root, ""); err != nil {
		return nil, err
	}

	result, err := validateNodeWithSchema(&root, kind)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationError{Kind: kind, Problems: result.Errors}
	}

	cfg := PT(new(T))
	if err := root.Decode(cfg); err != nil {
		// The schema admits a handful of values the typed decode does not,
		// e.g. condition values outside the float64 range.
		return nil, &ValidationError{Kind: kind, Problems: []FieldProblem{
			{Field: "root", Description: err.Error()},
		}}
	}

	cfg.applyDefaults()

	ck := &checker{}
	cfg.check(ck)
	if len(ck.problems) > 0 {
		return nil, &ValidationError{Kind: kind, Problems: ck.problems}
	}

	return cfg, nil
}

// resolveConfigPath maps an experiment directory to the config file inside
// it; file paths pass through unchanged.
func resolveConfigPath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, DefaultConfigName)
	}
	return path
}
