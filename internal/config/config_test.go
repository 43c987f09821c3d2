// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronin/code-rl-finetuning/internal/naming"
)

func TestDefaultExperimentConfig_Defaults(t *testing.T) {
	cfg := DefaultExperimentConfig()
	require.NotNil(t, cfg)

	// Experiment identity
	assert.Equal(t, 42, cfg.Seed)
	assert.Equal(t, MethodPPO, cfg.Method)
	assert.True(t, cfg.UseWandb)
	assert.Equal(t, "codellama-mbpp-finetuning", cfg.WandbProject)

	// Model
	assert.Equal(t, "codellama/CodeLlama-7b-Python-hf", cfg.Model.ModelName)
	assert.True(t, cfg.Model.Use4Bit)
	assert.Equal(t, "float16", cfg.Model.BnB4BitComputeDtype)
	assert.Equal(t, "nf4", cfg.Model.BnB4BitQuantType)
	assert.False(t, cfg.Model.UseNestedQuant)
	assert.Equal(t, 64, cfg.Model.LoraR)
	assert.Equal(t, 16, cfg.Model.LoraAlpha)
	assert.InDelta(t, 0.1, cfg.Model.LoraDropout, 1e-12)
	assert.Equal(t, []string{
		"q_proj", "k_proj", "v_proj", "o_proj",
		"gate_proj", "up_proj", "down_proj",
	}, cfg.Model.LoraTargetModules)
	assert.Equal(t, 1024, cfg.Model.MaxSeqLength)
	assert.True(t, cfg.Model.TrustRemoteCode)

	// Data
	assert.Equal(t, "mbpp", cfg.Data.DatasetName)
	assert.Equal(t, "train", cfg.Data.Split)
	assert.Equal(t, 512, cfg.Data.MaxPromptLength)
	assert.Equal(t, 512, cfg.Data.MaxCompletionLength)
	assert.InDelta(t, 0.9, cfg.Data.TrainTestSplit, 1e-12)
	assert.Equal(t, 4, cfg.Data.NumProc)
	assert.Nil(t, cfg.Data.MaxSamples)

	// Training
	assert.Equal(t, 12, cfg.Training.PerDeviceTrainBatchSize)
	assert.Equal(t, 12, cfg.Training.PerDeviceEvalBatchSize)
	assert.Equal(t, 1, cfg.Training.GradientAccumulationSteps)
	assert.Equal(t, 2, cfg.Training.NumTrainEpochs)
	assert.InDelta(t, 3e-6, cfg.Training.LearningRate, 1e-18)
	assert.Equal(t, "cosine", cfg.Training.LRSchedulerType)
	assert.Equal(t, 250, cfg.Training.EvalSteps)
	assert.Equal(t, 5, cfg.Training.LoggingSteps)
	assert.Equal(t, 5, cfg.Training.SaveTotalLimit)
	assert.True(t, cfg.Training.LoadBestModelAtEnd)
	assert.Equal(t, "eval_test_pass_rate", cfg.Training.MetricForBestModel)
	assert.True(t, cfg.Training.GreaterIsBetter)

	// PPO knobs
	assert.Equal(t, 4, cfg.Training.PPO.Epochs)
	assert.Equal(t, 1, cfg.Training.PPO.MiniBatchSize)
	assert.InDelta(t, 0.1, cfg.Training.PPO.VFCoef, 1e-12)
	assert.InDelta(t, 0.2, cfg.Training.PPO.ClipRange, 1e-12)
	assert.InDelta(t, 0.15, cfg.Training.PPO.ClipRangeVF, 1e-12)
	assert.InDelta(t, 1.0, cfg.Training.PPO.Gamma, 1e-12)
	assert.InDelta(t, 0.95, cfg.Training.PPO.Lam, 1e-12)
	assert.InDelta(t, 0.5, cfg.Training.PPO.TargetKL, 1e-12)

	// GRPO knobs
	assert.Equal(t, 8, cfg.Training.GRPO.NumSamples)
	assert.InDelta(t, 0.02, cfg.Training.GRPO.KLCoeff, 1e-12)
	assert.InDelta(t, 0.2, cfg.Training.GRPO.ClipRange, 1e-12)
	assert.InDelta(t, 0.01, cfg.Training.GRPO.EntropyCoeff, 1e-12)
	assert.True(t, cfg.Training.GRPO.UseAdvantageWhitening)
	assert.InDelta(t, 1e-8, cfg.Training.GRPO.AdvantageNormEps, 1e-20)
	assert.True(t, cfg.Training.GRPO.TemperatureSchedule)
	assert.InDelta(t, 1.0, cfg.Training.GRPO.InitialTemperature, 1e-12)
	assert.InDelta(t, 0.7, cfg.Training.GRPO.MinTemperature, 1e-12)

	// Generation
	assert.Equal(t, 2048, cfg.Training.Generation.MaxNewTokens)
	assert.True(t, cfg.Training.Generation.DoSample)
	assert.InDelta(t, 0.2, cfg.Training.Generation.Temperature, 1e-12)
	assert.InDelta(t, 0.9, cfg.Training.Generation.TopP, 1e-12)

	// Reward
	assert.Nil(t, cfg.Training.Reward.RewardModelPath)
	assert.Equal(t, 3*time.Second, cfg.Training.Reward.CodeExecutionTimeout)

	// Hub
	assert.Nil(t, cfg.HF.HubToken)
	assert.True(t, cfg.HF.PushToHub)
	assert.False(t, cfg.HF.HubPrivateRepo)
	assert.Equal(t, "every_save", cfg.HF.HubStrategy)
}

// TestDefaultExperimentConfig_DerivedNames verifies that construction
// applies the fallback naming derivation.
func TestDefaultExperimentConfig_DerivedNames(t *testing.T) {
	cfg := DefaultExperimentConfig()

	assert.Equal(t, "./checkpoints/codellama-7b-ppo-qlora", cfg.Training.OutputDir)
	assert.Equal(t, "codellama-7b-ppo-qlora", cfg.HF.HubModelID)
	assert.Equal(t, "codellama-7b-ppo-qlora", cfg.WandbRunName)
}

// TestDefaultExperimentConfig_Idempotent verifies that two default
// constructions are field-for-field equal.
func TestDefaultExperimentConfig_Idempotent(t *testing.T) {
	assert.Equal(t, DefaultExperimentConfig(), DefaultExperimentConfig())
	assert.Equal(t, DefaultModelConfig(), DefaultModelConfig())
	assert.Equal(t, DefaultDataConfig(), DefaultDataConfig())
	assert.Equal(t, DefaultTrainingConfig(), DefaultTrainingConfig())
	assert.Equal(t, DefaultHuggingFaceConfig(), DefaultHuggingFaceConfig())
}

// TestDefaultExperimentConfig_IndependentInstances verifies that separate
// constructions never share mutable state.
func TestDefaultExperimentConfig_IndependentInstances(t *testing.T) {
	a := DefaultExperimentConfig()
	b := DefaultExperimentConfig()

	a.Model.LoraR = 8
	a.Model.LoraTargetModules[0] = "mutated"
	a.Training.PPO.Gamma = 0.99

	assert.Equal(t, 64, b.Model.LoraR)
	assert.Equal(t, "q_proj", b.Model.LoraTargetModules[0])
	assert.InDelta(t, 1.0, b.Training.PPO.Gamma, 1e-12)
}

func TestApplyNaming(t *testing.T) {
	tests := []struct {
		name          string
		method        Method
		namer         naming.Namer
		wantOutputDir string
		wantHubID     string
	}{
		{
			name:          "nil namer falls back",
			method:        MethodPPO,
			namer:         nil,
			wantOutputDir: "./checkpoints/codellama-7b-ppo-qlora",
			wantHubID:     "codellama-7b-ppo-qlora",
		},
		{
			name:          "fallback namer with grpo",
			method:        MethodGRPO,
			namer:         naming.Fallback(),
			wantOutputDir: "./checkpoints/codellama-7b-grpo-qlora",
			wantHubID:     "codellama-7b-grpo-qlora",
		},
		{
			name:          "real namer uses model name",
			method:        MethodGRPO,
			namer:         naming.Default(),
			wantOutputDir: "./checkpoints/codellama-7b-grpo-qlora",
			wantHubID:     "codellama-7b-grpo-qlora",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultExperimentConfig()
			cfg.Method = tt.method

			cfg.ApplyNaming(tt.namer)

			assert.Equal(t, tt.wantOutputDir, cfg.Training.OutputDir)
			assert.Equal(t, tt.wantHubID, cfg.HF.HubModelID)
			assert.Equal(t, tt.wantHubID, cfg.WandbRunName)
		})
	}
}

// TestApplyNaming_OverwritesExplicitValues verifies that derivation
// unconditionally replaces previously set naming fields.
func TestApplyNaming_OverwritesExplicitValues(t *testing.T) {
	cfg := DefaultExperimentConfig()
	cfg.Training.OutputDir = "/tmp/custom"
	cfg.HF.HubModelID = "custom-id"
	cfg.WandbRunName = "custom-run"

	cfg.ApplyNaming(nil)

	assert.Equal(t, "./checkpoints/codellama-7b-ppo-qlora", cfg.Training.OutputDir)
	assert.Equal(t, "codellama-7b-ppo-qlora", cfg.HF.HubModelID)
	assert.Equal(t, "codellama-7b-ppo-qlora", cfg.WandbRunName)
}
