package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/mobra7/fm4ar/pkg/config"
)

const testPlotYAML = `results:
  - label: fmpe
    file_path: runs/fmpe/results.hdf
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestPrepareValidation(t *testing.T) {
	testFile := writeTestConfig(t, testPlotYAML)
	tmpDir := filepath.Dir(testFile)

	tests := []struct {
		name     string
		filePath string
		wantKind config.ConfigKind
		wantErr  bool
	}{
		{
			name:     "plot file with auto detection",
			filePath: testFile,
			wantKind: config.ConfigKindPlot,
		},
		{
			name:     "nonexistent file",
			filePath: filepath.Join(tmpDir, "nonexistent.yaml"),
			wantErr:  true,
		},
	}

	viper.Set("kind", "auto")
	defer viper.Set("kind", "auto")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, kind, err := prepareValidation(tt.filePath)
			if (err != nil) != tt.wantErr {
				t.Errorf("prepareValidation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if len(data) == 0 {
					t.Error("Expected non-empty data")
				}
				if kind != tt.wantKind {
					t.Errorf("prepareValidation() kind = %v, want %v", kind, tt.wantKind)
				}
			}
		})
	}
}

func TestPrepareValidationWithExplicitKind(t *testing.T) {
	testFile := writeTestConfig(t, testPlotYAML)

	viper.Set("kind", "plot")
	defer viper.Set("kind", "auto")

	data, kind, err := prepareValidation(testFile)
	if err != nil {
		t.Fatalf("prepareValidation() failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected non-empty data")
	}
	if kind != config.ConfigKindPlot {
		t.Errorf("Expected kind 'plot', got %s", kind)
	}
}

func TestPerformSchemaValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		kind    config.ConfigKind
		wantErr bool
	}{
		{
			name:    "valid plot data",
			data:    testPlotYAML,
			kind:    config.ConfigKindPlot,
			wantErr: false,
		},
		{
			name:    "missing results section",
			data:    "figure:\n  format: pdf\n",
			kind:    config.ConfigKindPlot,
			wantErr: true,
		},
		{
			name:    "unknown kind",
			data:    testPlotYAML,
			kind:    config.ConfigKind("bogus"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := performSchemaValidation([]byte(tt.data), tt.kind, "test.yaml")
			if (err != nil) != tt.wantErr {
				t.Errorf("performSchemaValidation() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPerformSemanticValidation(t *testing.T) {
	testFile := writeTestConfig(t, testPlotYAML)

	if err := performSemanticValidation(testFile); err != nil {
		t.Errorf("performSemanticValidation() failed: %v", err)
	}
}

func TestPerformSemanticValidation_InvalidConfig(t *testing.T) {
	testFile := writeTestConfig(t, `results:
  - label: same
    file_path: runs/a/results.hdf
  - label: same
    file_path: runs/b/results.hdf
`)

	if err := performSemanticValidation(testFile); err == nil {
		t.Error("Expected semantic validation to fail on duplicate labels")
	}
}

func TestRunValidate_NoArgs(t *testing.T) {
	if err := runValidate(validateCmd, nil); err == nil {
		t.Error("Expected an error when no file path is given")
	}
}
