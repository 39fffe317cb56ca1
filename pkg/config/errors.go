package config

import (
	"fmt"
	"strings"
)

// ParseError reports malformed YAML syntax. The wrapped yaml.v3 error
// includes the line number of the offending construct where available.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying parser error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnresolvedReferenceError reports a $NAME reference to an environment
// variable that is not set in the process environment.
type UnresolvedReferenceError struct {
	// Variable is the name of the missing environment variable.
	Variable string

	// Field is the path of the field whose value contains the reference.
	Field string
}

// Error implements the error interface.
func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("environment variable $%s referenced at %s is not set", e.Variable, e.Field)
}

// FieldProblem describes a single validation failure at a field path.
type FieldProblem struct {
	// Field is the dotted path of the offending field (e.g. "dataset.file_path").
	Field string

	// Description explains what was expected vs. what was found.
	Description string

	// Value is the offending value, if available.
	Value interface{}
}

// String returns a one-line representation of the problem.
func (p FieldProblem) String() string {
	if p.Value != nil {
		return fmt.Sprintf("%s: %s (value: %v)", p.Field, p.Description, p.Value)
	}
	return fmt.Sprintf("%s: %s", p.Field, p.Description)
}

// ValidationError reports one or more schema or semantic validation
// failures. Each problem names the offending field path.
type ValidationError struct {
	// Kind is the config kind the document was validated against.
	Kind ConfigKind

	// Problems lists all validation failures found in the document.
	Problems []FieldProblem
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		lines = append(lines, fmt.Sprintf("  - %s", p.String()))
	}
	return fmt.Sprintf("%s configuration is not valid:\n%s", e.Kind, strings.Join(lines, "\n"))
}
