// Package config provides configuration loading and validation for the
// fm4ar pipeline.
//
// This package handles YAML-based configuration loading and validation for:
//   - Training runs (dataset, model, training stages, local settings)
//   - Nested sampling retrievals (target spectrum, prior, sampler, simulator)
//   - Importance sampling runs (proposal samples, likelihood settings)
//   - Result plotting (runs to compare, parameter subsets, figure styling)
//
// Configuration files are loaded from disk, environment variable references
// ($FM4AR_DATASETS_DIR and friends) are expanded, and the result is validated
// against an embedded JSON schema before being unmarshaled into a typed,
// immutable configuration object. A load either fully succeeds or fails;
// no partially populated object is ever returned.
//
// The package is organized into:
//   - kinds.go: Config kind identifiers and auto-detection
//   - loader.go: Loading functions for config files
//   - expand.go: Environment variable expansion over the YAML tree
//   - schema_validator.go: JSON schema validation (embedded schemas)
//   - types_*.go: Typed configuration objects per kind
//   - action.go: The parameter conditioning mini-syntax
//   - validator.go: Semantic validation beyond the schema
package config
