package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Embedded JSON schemas, one per config kind. Keeping them in the binary
// means validation never touches the network.
//
//go:embed schemas/*.json
var schemaFS embed.FS

// SchemaValidationResult contains the results of JSON schema validation.
type SchemaValidationResult struct {
	Valid  bool
	Errors []FieldProblem
}

// ValidateWithSchema validates YAML data against the embedded JSON schema
// for the given config kind. Environment variable references are expanded
// before validation, so an unset variable fails here as well.
func ValidateWithSchema(yamlData []byte, kind ConfigKind) (*SchemaValidationResult, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(yamlData, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := expandEnvNode(&root, ""); err != nil {
		return nil, err
	}

	return validateNodeWithSchema(&root, kind)
}

// validateNodeWithSchema validates an already parsed (and expanded) YAML
// tree against the schema for the given kind.
func validateNodeWithSchema(root *yaml.Node, kind ConfigKind) (*SchemaValidationResult, error) {
	// Convert the YAML tree to JSON for schema validation.
	var data interface{}
	if err := root.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode YAML tree: %w", err)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to JSON: %w", err)
	}

	schemaLoader, err := schemaLoaderForKind(kind)
	if err != nil {
		return nil, err
	}
	documentLoader := gojsonschema.NewBytesLoader(jsonData)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	validationResult := &SchemaValidationResult{
		Valid:  result.Valid(),
		Errors: make([]FieldProblem, 0),
	}

	if !result.Valid() {
		for _, resultError := range result.Errors() {
			validationResult.Errors = append(validationResult.Errors, FieldProblem{
				Field:       cleanFieldPath(resultError.Field()),
				Description: resultError.Description(),
				Value:       resultError.Value(),
			})
		}
	}

	return validationResult, nil
}

// schemaLoaderForKind returns a gojsonschema loader for the embedded schema
// of the given kind.
func schemaLoaderForKind(kind ConfigKind) (gojsonschema.JSONLoader, error) {
	data, err := schemaFS.ReadFile(fmt.Sprintf("schemas/%s.json", kind))
	if err != nil {
		return nil, fmt.Errorf("no schema for config kind %q: %w", kind, err)
	}
	return gojsonschema.NewBytesLoader(data), nil
}

// cleanFieldPath normalizes gojsonschema field paths for error messages.
func cleanFieldPath(field string) string {
	field = strings.TrimPrefix(field, "(root).")
	if field == "(root)" {
		return "root"
	}
	return field
}
