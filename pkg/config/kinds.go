package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ConfigKind identifies which configuration shape a YAML document is
// validated against.
type ConfigKind string

const (
	ConfigKindTrain              ConfigKind = "train"
	ConfigKindNestedSampling     ConfigKind = "nested_sampling"
	ConfigKindImportanceSampling ConfigKind = "importance_sampling"
	ConfigKindPlot               ConfigKind = "plot"
)

// Config is implemented by all typed configuration objects.
type Config interface {
	// Kind returns the config kind this object was validated against.
	Kind() ConfigKind
}

// DetectConfigKind attempts to detect the configuration kind from YAML data.
//
// fm4ar config files carry no explicit kind marker, so detection goes by
// the characteristic top-level sections of each kind.
func DetectConfigKind(yamlData []byte) (ConfigKind, error) {
	var data map[string]interface{}
	if err := yaml.Unmarshal(yamlData, &data); err != nil {
		return "", fmt.Errorf("failed to parse YAML: %w", err)
	}

	has := func(key string) bool {
		_, ok := data[key]
		return ok
	}

	switch {
	case has("sampler"):
		return ConfigKindNestedSampling, nil
	case has("draw_proposal_samples") || has("likelihood"):
		return ConfigKindImportanceSampling, nil
	case has("results") || has("figure"):
		return ConfigKindPlot, nil
	case has("model") || has("training") || has("dataset"):
		return ConfigKindTrain, nil
	}

	return "", fmt.Errorf("unable to detect config kind: no characteristic top-level section found")
}
