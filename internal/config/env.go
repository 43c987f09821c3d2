// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the
// caarlos0/env library. Fields are mapped via their `env` tags defined
// on [ExperimentConfig] and its nested types.
//
// When environ is non-nil it is used as the environment source instead
// of the process environment, which keeps tests deterministic without
// mutating real environment variables.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any, environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}

	err := env.ParseWithOptions(cfg, opts)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
