// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import (
	"time"
)

// Method selects the policy-gradient algorithm used for fine-tuning.
type Method string

// Supported fine-tuning methods.
const (
	MethodPPO  Method = "ppo"
	MethodGRPO Method = "grpo"
)

// ExperimentConfig is the top-level configuration container for a single
// fine-tuning experiment. It aggregates all sub-configurations and is
// populated by merging built-in defaults with overrides from environment
// variables.
//
// Struct tags:
//   - env — direct environment variable name for overridable fields
//     (caarlos0/env). Only HF_TOKEN, WANDB_PROJECT and METHOD are
//     consulted; every other field keeps its default unless set
//     programmatically.
type ExperimentConfig struct {
	// Model holds base-model, quantization, and LoRA adapter settings.
	Model ModelConfig

	// Data holds dataset selection and preprocessing limits.
	Data DataConfig

	// Training holds optimization, evaluation, RL-algorithm, and
	// generation hyperparameters.
	Training TrainingConfig

	// HF holds HuggingFace Hub publishing settings.
	HF HuggingFaceConfig

	// Seed is the global random seed for the experiment.
	Seed int

	// Method is the RL algorithm variant, "ppo" or "grpo".
	// Env: METHOD (case-insensitive)
	Method Method `env:"METHOD"`

	// UseWandb enables experiment tracking.
	UseWandb bool

	// WandbProject is the tracking project name.
	// Env: WANDB_PROJECT
	WandbProject string `env:"WANDB_PROJECT"`

	// WandbRunName is the tracking run name. Derived; see
	// [ExperimentConfig.ApplyNaming].
	WandbRunName string
}

// ModelConfig holds base-model, quantization, and LoRA adapter settings.
type ModelConfig struct {
	// ModelName is the full model repository name on the hub.
	ModelName string

	// Use4Bit enables 4-bit base-model quantization (QLoRA).
	Use4Bit bool

	// BnB4BitComputeDtype is the compute dtype used with 4-bit
	// quantization (e.g. "float16", "bfloat16").
	BnB4BitComputeDtype string

	// BnB4BitQuantType is the 4-bit quantization type ("nf4" or "fp4").
	BnB4BitQuantType string

	// UseNestedQuant enables double quantization.
	UseNestedQuant bool

	// LoRA adapter hyperparameters.
	LoraR             int
	LoraAlpha         int
	LoraDropout       float64
	LoraTargetModules []string

	// MaxSeqLength caps the tokenized sequence length.
	MaxSeqLength int

	// TrustRemoteCode allows model repositories to ship custom code.
	TrustRemoteCode bool
}

// DataConfig holds dataset selection and preprocessing limits.
type DataConfig struct {
	// DatasetName is "mbpp" or "humaneval".
	DatasetName string

	// Split is the dataset split to load. For MBPP: "train", "test",
	// "validation"; for HumanEval only "test" exists.
	Split string

	MaxPromptLength     int
	MaxCompletionLength int

	// TrainTestSplit is the train fraction, in (0, 1).
	TrainTestSplit float64

	// NumProc is the preprocessing parallelism degree.
	NumProc int

	// MaxSamples caps the number of samples; nil means no cap.
	MaxSamples *int
}

// TrainingConfig holds optimization, evaluation, RL-algorithm, and
// generation hyperparameters shared by both fine-tuning methods.
type TrainingConfig struct {
	// OutputDir is the checkpoint directory. Derived; see
	// [ExperimentConfig.ApplyNaming].
	OutputDir string

	PerDeviceTrainBatchSize   int
	PerDeviceEvalBatchSize    int
	GradientAccumulationSteps int
	NumTrainEpochs            int
	LearningRate              float64
	LRSchedulerType           string
	WarmupRatio               float64
	WeightDecay               float64
	MaxGradNorm               float64

	// Evaluation and logging intervals, in optimizer steps.
	EvalSteps      int
	LoggingSteps   int
	SaveSteps      int
	SaveTotalLimit int

	LoadBestModelAtEnd bool
	MetricForBestModel string
	GreaterIsBetter    bool

	// PPO holds knobs consulted only when the method is "ppo".
	PPO PPOConfig

	// GRPO holds knobs consulted only when the method is "grpo".
	GRPO GRPOConfig

	// Generation holds rollout sampling settings.
	Generation GenerationConfig

	// Reward holds reward computation settings.
	Reward RewardConfig
}

// PPOConfig holds PPO-specific hyperparameters.
type PPOConfig struct {
	Epochs        int
	MiniBatchSize int
	VFCoef        float64
	ClipRange     float64
	ClipRangeVF   float64
	Gamma         float64
	Lam           float64
	TargetKL      float64
}

// GRPOConfig holds GRPO-specific hyperparameters.
type GRPOConfig struct {
	// NumSamples is the number of completions generated per prompt for
	// grouped advantage estimation.
	NumSamples int

	KLCoeff      float64
	ClipRange    float64
	EntropyCoeff float64

	// UseAdvantageWhitening normalizes advantages to zero mean and unit
	// variance; AdvantageNormEps guards the variance division.
	UseAdvantageWhitening bool
	AdvantageNormEps      float64

	// TemperatureSchedule anneals the sampling temperature from
	// InitialTemperature down to MinTemperature over training.
	TemperatureSchedule bool
	InitialTemperature  float64
	MinTemperature      float64
}

// GenerationConfig holds rollout sampling settings.
type GenerationConfig struct {
	MaxNewTokens int
	DoSample     bool
	Temperature  float64
	TopP         float64
}

// RewardConfig holds reward computation settings.
type RewardConfig struct {
	// RewardModelPath points at a learned reward model; nil means the
	// reward comes from code execution alone.
	RewardModelPath *string

	// CodeExecutionTimeout bounds a single test-case execution.
	CodeExecutionTimeout time.Duration
}

// HuggingFaceConfig holds HuggingFace Hub publishing settings.
type HuggingFaceConfig struct {
	// HubModelID is the hub repository id to push to. Derived; see
	// [ExperimentConfig.ApplyNaming].
	HubModelID string

	// HubToken is the hub auth token; nil means unauthenticated.
	// Env: HF_TOKEN
	HubToken *string `env:"HF_TOKEN"`

	// PushToHub enables checkpoint upload.
	PushToHub bool

	// HubPrivateRepo creates the hub repository as private.
	HubPrivateRepo bool

	// HubStrategy selects when checkpoints are synced (e.g. "every_save").
	HubStrategy string
}

// DefaultModelConfig returns the model settings for CodeLlama 7B with QLoRA.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		ModelName:           "codellama/CodeLlama-7b-Python-hf",
		Use4Bit:             true,
		BnB4BitComputeDtype: "float16",
		BnB4BitQuantType:    "nf4",
		UseNestedQuant:      false,
		LoraR:               64,
		LoraAlpha:           16,
		LoraDropout:         0.1,
		LoraTargetModules: []string{
			"q_proj", "k_proj", "v_proj", "o_proj",
			"gate_proj", "up_proj", "down_proj",
		},
		MaxSeqLength:    1024,
		TrustRemoteCode: true,
	}
}

// DefaultDataConfig returns the default MBPP dataset settings.
func DefaultDataConfig() DataConfig {
	return DataConfig{
		DatasetName:         "mbpp",
		Split:               "train",
		MaxPromptLength:     512,
		MaxCompletionLength: 512,
		TrainTestSplit:      0.9,
		NumProc:             4,
		MaxSamples:          nil,
	}
}

// DefaultTrainingConfig returns the default training hyperparameters for
// both PPO and GRPO.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		OutputDir:                 "./checkpoints",
		PerDeviceTrainBatchSize:   12,
		PerDeviceEvalBatchSize:    12,
		GradientAccumulationSteps: 1,
		NumTrainEpochs:            2,
		LearningRate:              3e-6,
		LRSchedulerType:           "cosine",
		WarmupRatio:               0.05,
		WeightDecay:               0.01,
		MaxGradNorm:               0.5,

		EvalSteps:      250,
		LoggingSteps:   5,
		SaveSteps:      250,
		SaveTotalLimit: 5,

		LoadBestModelAtEnd: true,
		MetricForBestModel: "eval_test_pass_rate",
		GreaterIsBetter:    true,

		PPO: PPOConfig{
			Epochs:        4,
			MiniBatchSize: 1,
			VFCoef:        0.1,
			ClipRange:     0.2,
			ClipRangeVF:   0.15,
			Gamma:         1.0,
			Lam:           0.95,
			TargetKL:      0.5,
		},

		GRPO: GRPOConfig{
			NumSamples:            8,
			KLCoeff:               0.02,
			ClipRange:             0.2,
			EntropyCoeff:          0.01,
			UseAdvantageWhitening: true,
			AdvantageNormEps:      1e-8,
			TemperatureSchedule:   true,
			InitialTemperature:    1.0,
			MinTemperature:        0.7,
		},

		Generation: GenerationConfig{
			MaxNewTokens: 2048,
			DoSample:     true,
			Temperature:  0.2,
			TopP:         0.9,
		},

		Reward: RewardConfig{
			RewardModelPath:      nil,
			CodeExecutionTimeout: 3 * time.Second,
		},
	}
}

// DefaultHuggingFaceConfig returns the default hub publishing settings.
func DefaultHuggingFaceConfig() HuggingFaceConfig {
	return HuggingFaceConfig{
		HubModelID:     "codellama-7b-mbpp-qlora",
		HubToken:       nil,
		PushToHub:      true,
		HubPrivateRepo: false,
		HubStrategy:    "every_save",
	}
}

// DefaultExperimentConfig returns a complete experiment configuration
// with all defaults applied and the derived naming fields computed with
// the fallback short name. Every call yields an independent object
// graph; sub-configurations are never shared between instances.
func DefaultExperimentConfig() *ExperimentConfig {
	cfg := &ExperimentConfig{
		Model:    DefaultModelConfig(),
		Data:     DefaultDataConfig(),
		Training: DefaultTrainingConfig(),
		HF:       DefaultHuggingFaceConfig(),

		Seed:         42,
		Method:       MethodPPO,
		UseWandb:     true,
		WandbProject: "codellama-mbpp-finetuning",
	}
	cfg.ApplyNaming(nil)

	return cfg
}
