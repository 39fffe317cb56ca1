package paths

import (
	"errors"
	"path/filepath"
	"testing"

	pkgerrors "github.com/mobra7/fm4ar/pkg/errors"
)

func TestDatasetsDir(t *testing.T) {
	t.Setenv(EnvDatasetsDir, "/data/fm4ar/datasets")

	dir, err := DatasetsDir()
	if err != nil {
		t.Fatalf("DatasetsDir failed: %v", err)
	}
	if dir != "/data/fm4ar/datasets" {
		t.Errorf("expected /data/fm4ar/datasets, got %s", dir)
	}
}

func TestDatasetsDir_Unset(t *testing.T) {
	t.Setenv(EnvDatasetsDir, "")

	_, err := DatasetsDir()
	if err == nil {
		t.Fatal("expected error when FM4AR_DATASETS_DIR is unset")
	}

	var ctxErr *pkgerrors.ContextualError
	if !errors.As(err, &ctxErr) {
		t.Fatalf("expected ContextualError, got %T", err)
	}
	if ctxErr.Component != "paths" {
		t.Errorf("expected component paths, got %s", ctxErr.Component)
	}
	if ctxErr.Details["variable"] != EnvDatasetsDir {
		t.Errorf("expected variable detail %s, got %v", EnvDatasetsDir, ctxErr.Details["variable"])
	}
}

func TestExperimentsDir(t *testing.T) {
	t.Setenv(EnvExperimentsDir, "/data/fm4ar/experiments")

	dir, err := ExperimentsDir()
	if err != nil {
		t.Fatalf("ExperimentsDir failed: %v", err)
	}
	if dir != "/data/fm4ar/experiments" {
		t.Errorf("expected /data/fm4ar/experiments, got %s", dir)
	}
}

func TestExperimentConfigPath(t *testing.T) {
	got := ExperimentConfigPath("/data/experiments/fmpe-run-1")
	want := filepath.Join("/data/experiments/fmpe-run-1", "config.yaml")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
