package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// expandEnvNode walks the YAML tree and expands $NAME references in every
// string scalar value from the process environment. Mapping keys are left
// untouched. A reference to an unset variable aborts the walk with an
// UnresolvedReferenceError naming the variable and the field path.
func expandEnvNode(node *yaml.Node, fieldPath string) error {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := expandEnvNode(child, fieldPath); err != nil {
				return err
			}
		}

	case yaml.MappingNode:
		// Content holds alternating key/value nodes.
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			value := node.Content[i+1]
			if err := expandEnvNode(value, joinFieldPath(fieldPath, key.Value)); err != nil {
				return err
			}
		}

	case yaml.SequenceNode:
		for i, child := range node.Content {
			if err := expandEnvNode(child, fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
				return err
			}
		}

	case yaml.ScalarNode:
		if node.Tag != "!!str" {
			return nil
		}
		expanded, err := expandEnvString(node.Value, fieldPath)
		if err != nil {
			return err
		}
		node.Value = expanded

	case yaml.AliasNode:
		// The anchor target is expanded when it is visited directly.
	}

	return nil
}

// expandEnvString replaces each $NAME token in s with the value of the
// named environment variable. $$ produces a literal dollar sign.
func expandEnvString(s, fieldPath string) (string, error) {
	if !strings.ContainsRune(s, '$') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '$' {
			b.WriteByte(s[i])
			i++
			continue
		}

		// Escaped dollar sign.
		if i+1 < len(s) && s[i+1] == '$' {
			b.WriteByte('$')
			i += 2
			continue
		}

		name := scanVariableName(s[i+1:])
		if name == "" {
			// A bare "$" with no variable name is kept as-is.
			b.WriteByte('$')
			i++
			continue
		}

		value, ok := os.LookupEnv(name)
		if !ok {
			return "", &UnresolvedReferenceError{Variable: name, Field: fieldPath}
		}
		b.WriteString(value)
		i += 1 + len(name)
	}

	return b.String(), nil
}

// scanVariableName returns the longest prefix of s that is a valid
// environment variable name ([A-Za-z_][A-Za-z0-9_]*).
func scanVariableName(s string) string {
	n := 0
	for n < len(s) {
		c := s[n]
		isAlpha := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if !isAlpha && !(n > 0 && isDigit) {
			break
		}
		n++
	}
	return s[:n]
}

func joinFieldPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
