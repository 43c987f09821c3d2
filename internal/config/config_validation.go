// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import "fmt"

// validate checks that the final merged [ExperimentConfig] satisfies all
// invariants before it is handed to the training driver.
//
// Only the method enum is validated here. Out-of-range hyperparameters,
// unknown dataset names, and nonexistent paths are the driver's
// responsibility.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping [ErrInvalidMethod] otherwise.
func (cfg *ExperimentConfig) validate() error {
	switch cfg.Method {
	case MethodPPO, MethodGRPO:
		return nil
	default:
		return fmt.Errorf("%w: must be %q or %q, got %q",
			ErrInvalidMethod, MethodPPO, MethodGRPO, cfg.Method)
	}
}
