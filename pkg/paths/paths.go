// Package paths resolves the fm4ar base directories from the process
// environment.
//
// All datasets live under $FM4AR_DATASETS_DIR and all experiment
// directories under $FM4AR_EXPERIMENTS_DIR; config files reference both
// via $NAME expansion.
package paths

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/mobra7/fm4ar/pkg/errors"
)

// Environment variables holding the fm4ar base directories.
const (
	EnvDatasetsDir    = "FM4AR_DATASETS_DIR"
	EnvExperimentsDir = "FM4AR_EXPERIMENTS_DIR"
)

// DatasetsDir returns the base directory for datasets, from
// $FM4AR_DATASETS_DIR.
func DatasetsDir() (string, error) {
	return fromEnv("DatasetsDir", EnvDatasetsDir)
}

// ExperimentsDir returns the base directory for experiment directories,
// from $FM4AR_EXPERIMENTS_DIR.
func ExperimentsDir() (string, error) {
	return fromEnv("ExperimentsDir", EnvExperimentsDir)
}

// ExperimentConfigPath returns the path of the conventional config file
// inside an experiment directory.
func ExperimentConfigPath(experimentDir string) string {
	return filepath.Join(experimentDir, "config.yaml")
}

func fromEnv(operation, variable string) (string, error) {
	dir, ok := os.LookupEnv(variable)
	if !ok || dir == "" {
		return "", errors.New("paths", operation,
			stderrors.New("environment variable "+variable+" is not set"),
		).WithDetails(map[string]any{"variable": variable})
	}
	return dir, nil
}
