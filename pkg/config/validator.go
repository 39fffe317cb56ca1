package config

import (
	"fmt"
	"os"
)

// checker collects semantic validation problems and warnings while walking
// a typed configuration object.
type checker struct {
	problems []FieldProblem
	warns    []string
}

func (c *checker) problemf(field string, value interface{}, format string, args ...interface{}) {
	c.problems = append(c.problems, FieldProblem{
		Field:       field,
		Description: fmt.Sprintf(format, args...),
		Value:       value,
	})
}

func (c *checker) warnf(format string, args ...interface{}) {
	c.warns = append(c.warns, fmt.Sprintf(format, args...))
}

// warnIfMissing emits a warning when a referenced file does not exist.
// Missing files are not errors: configs are routinely validated on a
// different machine than the one the job runs on.
func (c *checker) warnIfMissing(field, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c.warnf("%s: file not found: %s", field, path)
	}
}

// Warnings returns the non-fatal findings for an already loaded config,
// such as referenced files that do not exist on this machine.
func Warnings(cfg Config) []string {
	doc, ok := cfg.(document)
	if !ok {
		return nil
	}
	ck := &checker{}
	doc.check(ck)
	return ck.warns
}

func (c *TrainConfig) check(ck *checker) {
	if err := checkFormatVersion(c.FormatVersion); err != nil {
		ck.problemf("format_version", c.FormatVersion, "%v", err)
	}

	ck.warnIfMissing("dataset.file_path", c.Dataset.FilePath)
	ck.warnIfMissing("theta_scaler.file_path", c.ThetaScaler.FilePath)

	if c.Local.Device == DeviceCUDA && c.Local.HTCondor != nil && c.Local.HTCondor.NGPUs == 0 {
		ck.warnf("local.device is %q but local.htcondor.n_gpus is 0", DeviceCUDA)
	}
}

func (c *NestedSamplingConfig) check(ck *checker) {
	if err := checkFormatVersion(c.FormatVersion); err != nil {
		ck.problemf("format_version", c.FormatVersion, "%v", err)
	}

	inferred := 0
	for _, action := range c.Prior.Parameters {
		if action.Action == ActionInfer {
			inferred++
		}
	}
	if inferred == 0 {
		ck.problemf("prior.parameters", nil, "at least one parameter must use the %q action", ActionInfer)
	}

	ck.warnIfMissing("target_spectrum.file_path", c.TargetSpectrum.FilePath)

	if c.Sampler.MaxRuntime > c.HTCondor.MaxRuntime {
		ck.warnf("sampler.max_runtime (%d) exceeds htcondor.max_runtime (%d); the job may be killed before the sampler finishes",
			c.Sampler.MaxRuntime, c.HTCondor.MaxRuntime)
	}
}

func (c *ImportanceSamplingConfig) check(ck *checker) {
	if err := checkFormatVersion(c.FormatVersion); err != nil {
		ck.problemf("format_version", c.FormatVersion, "%v", err)
	}

	ck.warnIfMissing("target_spectrum.file_path", c.TargetSpectrum.FilePath)

	if c.DrawProposalSamples.ChunkSize > c.DrawProposalSamples.NSamples {
		ck.warnf("draw_proposal_samples.chunk_size (%d) exceeds n_samples (%d)",
			c.DrawProposalSamples.ChunkSize, c.DrawProposalSamples.NSamples)
	}
}

func (c *PlotConfig) check(ck *checker) {
	if err := checkFormatVersion(c.FormatVersion); err != nil {
		ck.problemf("format_version", c.FormatVersion, "%v", err)
	}

	seen := make(map[string]bool, len(c.Results))
	groundTruths := 0
	for i, result := range c.Results {
		if seen[result.Label] {
			ck.problemf(fmt.Sprintf("results[%d].label", i), result.Label, "duplicate label")
		}
		seen[result.Label] = true

		if result.GroundTruth {
			groundTruths++
		}

		ck.warnIfMissing(fmt.Sprintf("results[%d].file_path", i), result.FilePath)
	}

	if groundTruths > 1 {
		ck.problemf("results", nil, "at most one entry may set ground_truth")
	}
}
