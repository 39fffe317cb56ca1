package config

// Defaults shared across the sampling config kinds. The max runtime
// default of eight hours matches the usual cluster job limit.
const (
	defaultRandomSeed   = 42
	defaultMaxRuntime   = 28_800
	defaultResolution   = 1000
	defaultTimeLimit    = 10
	defaultChunkSize    = 1_024
	defaultDataset      = "vasist_2023"
	defaultCheckpoint   = "model__best.pt"
	defaultCondorBid    = 15
	defaultCondorNCPUs  = 1
	defaultCondorMemory = 4_096
)

// NestedSamplingConfig is the full configuration for a nested sampling
// retrieval run.
type NestedSamplingConfig struct {
	FormatVersion  string               `yaml:"format_version,omitempty"`
	TargetSpectrum TargetSpectrumConfig `yaml:"target_spectrum"`
	Prior          PriorConfig          `yaml:"prior"`
	Sampler        SamplerConfig        `yaml:"sampler"`
	Simulator      SimulatorConfig      `yaml:"simulator"`
	HTCondor       HTCondorConfig       `yaml:"htcondor"`
}

// Kind implements the Config interface.
func (c *NestedSamplingConfig) Kind() ConfigKind { return ConfigKindNestedSampling }

// TargetSpectrumConfig selects the observed spectrum to run a retrieval on.
type TargetSpectrumConfig struct {
	FilePath string `yaml:"file_path"`
	Index    int    `yaml:"index"`
}

// PriorConfig names the prior and assigns an action to every parameter.
type PriorConfig struct {
	Dataset    string                     `yaml:"dataset"`
	Parameters map[string]ParameterAction `yaml:"parameters"`
}

// Nested sampling implementations for SamplerConfig.Library.
const (
	SamplerNautilus  = "nautilus"
	SamplerDynesty   = "dynesty"
	SamplerMultiNest = "multinest"
	SamplerUltraNest = "ultranest"
)

// SamplerConfig configures the nested sampling algorithm.
type SamplerConfig struct {
	Library     string `yaml:"library"`
	NLivepoints int    `yaml:"n_livepoints"`

	// MaxRuntime limits the sampler runtime in seconds, for example to
	// stay within a cluster job's walltime.
	MaxRuntime int  `yaml:"max_runtime"`
	RandomSeed *int `yaml:"random_seed,omitempty"`

	// SamplerKwargs is passed to the sampler constructor unchanged; it can
	// switch dynesty between normal and dynamic nested sampling, say.
	SamplerKwargs map[string]interface{} `yaml:"sampler_kwargs,omitempty"`

	// RunKwargs is passed to the sampler's run method unchanged, for
	// example to adjust the stopping criterion.
	RunKwargs map[string]interface{} `yaml:"run_kwargs,omitempty"`
}

// SimulatorConfig configures the forward simulator used for likelihood
// evaluations.
type SimulatorConfig struct {
	Dataset string `yaml:"dataset"`

	// Resolution is R = delta-lambda / lambda of the simulated spectra.
	Resolution int `yaml:"resolution"`

	// TimeLimit bounds a single simulator call, in seconds.
	TimeLimit int `yaml:"time_limit"`
}

// HTCondorConfig holds the cluster resource request for a job.
type HTCondorConfig struct {
	Bid          int    `yaml:"bid"`
	NCPUs        int    `yaml:"n_cpus"`
	NGPUs        int    `yaml:"n_gpus,omitempty"`
	MemoryCPUs   int    `yaml:"memory_cpus"`
	MemoryGPUs   int    `yaml:"memory_gpus,omitempty"`
	MaxRuntime   int    `yaml:"max_runtime"`
	Requirements string `yaml:"requirements,omitempty"`
	Retries      int    `yaml:"retries,omitempty"`
}

func (c *HTCondorConfig) applyDefaults() {
	if c.Bid == 0 {
		c.Bid = defaultCondorBid
	}
	if c.NCPUs == 0 {
		c.NCPUs = defaultCondorNCPUs
	}
	if c.MemoryCPUs == 0 {
		c.MemoryCPUs = defaultCondorMemory
	}
	if c.MaxRuntime == 0 {
		c.MaxRuntime = defaultMaxRuntime
	}
}

func (c *NestedSamplingConfig) applyDefaults() {
	if c.Prior.Dataset == "" {
		c.Prior.Dataset = defaultDataset
	}
	if c.Sampler.MaxRuntime == 0 {
		c.Sampler.MaxRuntime = defaultMaxRuntime
	}
	if c.Sampler.RandomSeed == nil {
		seed := defaultRandomSeed
		c.Sampler.RandomSeed = &seed
	}
	if c.Simulator.Dataset == "" {
		c.Simulator.Dataset = defaultDataset
	}
	if c.Simulator.Resolution == 0 {
		c.Simulator.Resolution = defaultResolution
	}
	if c.Simulator.TimeLimit == 0 {
		c.Simulator.TimeLimit = defaultTimeLimit
	}
	c.HTCondor.applyDefaults()
}

// ImportanceSamplingConfig is the full configuration for an importance
// sampling run against a trained model.
type ImportanceSamplingConfig struct {
	FormatVersion       string                    `yaml:"format_version,omitempty"`
	CheckpointName      string                    `yaml:"checkpoint_name"`
	TargetSpectrum      TargetSpectrumConfig      `yaml:"target_spectrum"`
	DrawProposalSamples DrawProposalSamplesConfig `yaml:"draw_proposal_samples"`
	Likelihood          LikelihoodConfig          `yaml:"likelihood"`
	ModelKwargs         map[string]interface{}    `yaml:"model_kwargs,omitempty"`
	HTCondor            *HTCondorConfig           `yaml:"htcondor,omitempty"`
}

// Kind implements the Config interface.
func (c *ImportanceSamplingConfig) Kind() ConfigKind { return ConfigKindImportanceSampling }

// DrawProposalSamplesConfig controls how many proposal samples are drawn
// and in what chunk sizes.
type DrawProposalSamplesConfig struct {
	NSamples  int `yaml:"n_samples"`
	ChunkSize int `yaml:"chunk_size"`
}

// LikelihoodConfig holds the noise level assumed for the likelihood.
type LikelihoodConfig struct {
	Sigma float64 `yaml:"sigma"`
}

func (c *ImportanceSamplingConfig) applyDefaults() {
	if c.CheckpointName == "" {
		c.CheckpointName = defaultCheckpoint
	}
	if c.DrawProposalSamples.ChunkSize == 0 {
		c.DrawProposalSamples.ChunkSize = defaultChunkSize
	}
	if c.HTCondor != nil {
		c.HTCondor.applyDefaults()
	}
}
