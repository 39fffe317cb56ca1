package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	return &node
}

// decodeNode decodes the expanded tree into a generic map for inspection.
func decodeNode(t *testing.T, node *yaml.Node) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, node.Decode(&out))
	return out
}

func TestExpandEnvNode(t *testing.T) {
	t.Setenv("FM4AR_DATASETS_DIR", "/data/fm4ar")

	node := parseNode(t, `
dataset:
  file_path: $FM4AR_DATASETS_DIR/vasist_2023/train.hdf
  name: vasist_2023
`)
	require.NoError(t, expandEnvNode(node, ""))

	out := decodeNode(t, node)
	dataset := out["dataset"].(map[string]interface{})
	assert.Equal(t, "/data/fm4ar/vasist_2023/train.hdf", dataset["file_path"])
	assert.Equal(t, "vasist_2023", dataset["name"])
}

func TestExpandEnvNode_UnsetVariable(t *testing.T) {
	// t.Setenv registers the cleanup that restores the old value.
	t.Setenv("FM4AR_MISSING_VAR", "")
	require.NoError(t, os.Unsetenv("FM4AR_MISSING_VAR"))

	node := parseNode(t, `
dataset:
  file_path: $FM4AR_MISSING_VAR/train.hdf
`)
	err := expandEnvNode(node, "")
	require.Error(t, err)

	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "FM4AR_MISSING_VAR", unresolved.Variable)
	assert.Equal(t, "dataset.file_path", unresolved.Field)
}

func TestExpandEnvNode_SequenceFieldPath(t *testing.T) {
	node := parseNode(t, `
results:
  - label: fmpe
    file_path: $FM4AR_NO_SUCH_DIR/results.hdf
`)
	err := expandEnvNode(node, "")
	require.Error(t, err)

	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "results[0].file_path", unresolved.Field)
}

func TestExpandEnvNode_KeysNotExpanded(t *testing.T) {
	t.Setenv("FM4AR_KEY", "expanded")

	node := parseNode(t, `
$FM4AR_KEY: value
`)
	require.NoError(t, expandEnvNode(node, ""))

	out := decodeNode(t, node)
	_, ok := out["$FM4AR_KEY"]
	assert.True(t, ok, "mapping keys must be left untouched")
}

func TestExpandEnvNode_NonStringScalarsUntouched(t *testing.T) {
	node := parseNode(t, `
n_livepoints: 4000
use_amp: false
`)
	require.NoError(t, expandEnvNode(node, ""))

	out := decodeNode(t, node)
	assert.Equal(t, 4000, out["n_livepoints"])
	assert.Equal(t, false, out["use_amp"])
}

func TestExpandEnvString(t *testing.T) {
	t.Setenv("FM4AR_A", "alpha")
	t.Setenv("FM4AR_B", "beta")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no dollar", "plain/path", "plain/path"},
		{"single variable", "$FM4AR_A", "alpha"},
		{"variable with suffix", "$FM4AR_A/train.hdf", "alpha/train.hdf"},
		{"two variables", "$FM4AR_A/$FM4AR_B", "alpha/beta"},
		{"escaped dollar", "cost is $$5", "cost is $5"},
		{"bare dollar", "price: $ 5", "price: $ 5"},
		{"trailing dollar", "done$", "done$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandEnvString(tt.input, "field")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanVariableName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FM4AR_DATASETS_DIR/sub", "FM4AR_DATASETS_DIR"},
		{"_private", "_private"},
		{"1abc", ""},
		{"", ""},
		{"a1_b/rest", "a1_b"},
	}

	for _, tt := range tests {
		if got := scanVariableName(tt.input); got != tt.want {
			t.Errorf("scanVariableName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
