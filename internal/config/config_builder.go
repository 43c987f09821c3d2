package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/avoronin/code-rl-finetuning/internal/logger"
	"github.com/avoronin/code-rl-finetuning/internal/naming"
)

type configBuilder struct {
	configs []*ExperimentConfig
	environ map[string]string
	namer   naming.Namer
	log     *logger.Logger
	err     error
}

// Option customizes how the configuration is assembled.
type Option func(*configBuilder)

// WithEnviron makes the loader read the given map instead of the process
// environment.
func WithEnviron(environ map[string]string) Option {
	return func(b *configBuilder) {
		b.environ = environ
	}
}

// WithNamer injects the naming strategy used to derive the checkpoint
// directory, hub model id, and run name. Without it the derivation uses
// the fixed fallback short name.
func WithNamer(n naming.Namer) Option {
	return func(b *configBuilder) {
		b.namer = n
	}
}

// WithLogger makes the loader report applied environment overrides at
// debug level.
func WithLogger(log *logger.Logger) Option {
	return func(b *configBuilder) {
		b.log = log
	}
}

func newConfigBuilder(opts ...Option) *configBuilder {
	b := &configBuilder{
		configs: make([]*ExperimentConfig, 0, 2),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

func (b *configBuilder) build() (*ExperimentConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(ExperimentConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	// Derivation runs after the env overlay so the derived names always
	// reflect the final method.
	config.ApplyNaming(b.namer)

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &ExperimentConfig{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	envCfg.Method = Method(strings.ToLower(string(envCfg.Method)))
	b.logEnvOverrides(envCfg)

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, DefaultExperimentConfig())
	return b
}

func (b *configBuilder) logEnvOverrides(envCfg *ExperimentConfig) {
	if envCfg.HF.HubToken != nil {
		b.log.Debug().Msg("hub token overridden from environment")
	}
	if envCfg.WandbProject != "" {
		b.log.Debug().Str("wandb_project", envCfg.WandbProject).
			Msg("wandb project overridden from environment")
	}
	if envCfg.Method != "" {
		b.log.Debug().Str("method", string(envCfg.Method)).
			Msg("method overridden from environment")
	}
}

// Load assembles, merges, and validates the experiment configuration in
// the following priority order (earlier sources win for non-zero fields):
//  1. Environment variables (HF_TOKEN, WANDB_PROJECT, METHOD)
//  2. Built-in defaults
//
// Returns a fully populated *ExperimentConfig with the derived naming
// fields applied, or an error if the environment cannot be parsed or the
// merged config fails validation.
func Load(opts ...Option) (*ExperimentConfig, error) {
	return newConfigBuilder(opts...).
		withEnv().
		withDefaults().
		build()
}
