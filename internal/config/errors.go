package config

import "errors"

// Validation errors returned by [ExperimentConfig.validate] when the
// final merged configuration violates an invariant.
var (
	// ErrInvalidMethod indicates a fine-tuning method outside the
	// supported set ("ppo", "grpo"), e.g. from a mistyped METHOD
	// environment variable.
	ErrInvalidMethod = errors.New("invalid fine-tuning method")
)
