package config

// TrainConfig is the full configuration for a training run.
type TrainConfig struct {
	FormatVersion string            `yaml:"format_version,omitempty"`
	Dataset       DatasetConfig     `yaml:"dataset"`
	Model         ModelConfig       `yaml:"model"`
	ThetaScaler   ThetaScalerConfig `yaml:"theta_scaler"`
	Training      TrainingConfig    `yaml:"training"`
	Local         LocalConfig       `yaml:"local"`
}

// Kind implements the Config interface.
func (c *TrainConfig) Kind() ConfigKind { return ConfigKindTrain }

// DatasetConfig selects the dataset (an HDF file with theta, spectra, and
// wavelengths) to train on.
type DatasetConfig struct {
	FilePath   string   `yaml:"file_path"`
	Name       string   `yaml:"name,omitempty"`
	NSamples   *int     `yaml:"n_samples,omitempty"`
	Which      string   `yaml:"which"`
	NoiseLevel *float64 `yaml:"noise_level,omitempty"`

	// RandomSeed is a pointer so that an explicit seed of 0 can be told
	// apart from an omitted one (which defaults to 42).
	RandomSeed *int `yaml:"random_seed,omitempty"`
}

// Dataset split names for DatasetConfig.Which.
const (
	DatasetWhichTraining = "training"
	DatasetWhichTest     = "test"
)

// Model types for ModelConfig.ModelType.
const (
	ModelTypeFMPE              = "fmpe"
	ModelTypeNPE               = "npe"
	ModelTypeUnconditionalFlow = "unconditional_flow"
)

// ModelConfig describes the posterior model. The architecture block is
// free-form and interpreted by the training engine; the loader only checks
// that the model type is known and the embedding net blocks are well-formed.
type ModelConfig struct {
	ModelType    string                 `yaml:"model_type"`
	Architecture map[string]interface{} `yaml:"architecture,omitempty"`
	EmbeddingNet []EmbeddingBlock       `yaml:"embedding_net,omitempty"`
}

// EmbeddingBlock is a single stage of the embedding network. Everything
// besides the block type is passed through to the engine as keyword
// arguments.
type EmbeddingBlock struct {
	BlockType string                 `yaml:"block_type"`
	Kwargs    map[string]interface{} `yaml:",inline"`
}

// Theta scaler methods for ThetaScalerConfig.Method.
const (
	ThetaScalerStandardize = "standardize"
	ThetaScalerMinMax      = "min_max"
	ThetaScalerIdentity    = "identity"
)

// ThetaScalerConfig selects how theta samples are scaled before training.
type ThetaScalerConfig struct {
	Method   string `yaml:"method"`
	FilePath string `yaml:"file_path,omitempty"`
}

// TrainingConfig holds the ordered training stages.
type TrainingConfig struct {
	Stages []StageConfig `yaml:"stages"`
}

// StageConfig is a single training stage.
type StageConfig struct {
	Name             string                 `yaml:"name,omitempty"`
	Epochs           int                    `yaml:"epochs"`
	BatchSize        int                    `yaml:"batch_size"`
	LR               float64                `yaml:"lr"`
	Optimizer        map[string]interface{} `yaml:"optimizer,omitempty"`
	Scheduler        map[string]interface{} `yaml:"scheduler,omitempty"`
	EarlyStopping    *EarlyStoppingConfig   `yaml:"early_stopping,omitempty"`
	GradientClipping *float64               `yaml:"gradient_clipping,omitempty"`
	UseAMP           bool                   `yaml:"use_amp,omitempty"`
}

// EarlyStoppingConfig stops a stage after the given number of epochs
// without improvement.
type EarlyStoppingConfig struct {
	Patience int `yaml:"patience"`
}

// Devices for LocalConfig.Device.
const (
	DeviceCPU  = "cpu"
	DeviceCUDA = "cuda"
)

// LocalConfig holds machine-local settings: device placement, data loader
// workers, experiment tracking, and optional cluster resources.
type LocalConfig struct {
	Device             string          `yaml:"device"`
	NWorkers           int             `yaml:"n_workers"`
	CheckpointInterval int             `yaml:"checkpoint_interval"`
	WandB              *WandBConfig    `yaml:"wandb,omitempty"`
	HTCondor           *HTCondorConfig `yaml:"htcondor,omitempty"`
}

// WandBConfig configures Weights & Biases tracking. Extra keys are passed
// through to the engine unchanged.
type WandBConfig struct {
	Project string                 `yaml:"project"`
	Entity  string                 `yaml:"entity,omitempty"`
	Extras  map[string]interface{} `yaml:",inline"`
}

func (c *TrainConfig) applyDefaults() {
	if c.Dataset.Which == "" {
		c.Dataset.Which = DatasetWhichTraining
	}
	if c.Dataset.RandomSeed == nil {
		seed := defaultRandomSeed
		c.Dataset.RandomSeed = &seed
	}
	if c.ThetaScaler.Method == "" {
		c.ThetaScaler.Method = ThetaScalerStandardize
	}
	if c.Local.CheckpointInterval == 0 {
		c.Local.CheckpointInterval = 1
	}
	if c.Local.HTCondor != nil {
		c.Local.HTCondor.applyDefaults()
	}
}
