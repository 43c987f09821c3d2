// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import (
	"fmt"

	"github.com/avoronin/code-rl-finetuning/internal/naming"
)

// ApplyNaming recomputes the three derived naming fields from the model
// short name and the method:
//
//	Training.OutputDir = "./checkpoints/<short>-<method>-qlora"
//	HF.HubModelID      = "<short>-<method>-qlora"
//	WandbRunName       = "<short>-<method>-qlora"
//
// Any previously set value of these fields is overwritten: the model
// name and method may change after initial construction, so downstream
// naming must always be recomputed rather than trusted.
//
// A nil namer derives with [naming.FallbackShortName]. Callers that
// mutate Method or Model.ModelName after loading must call ApplyNaming
// again to keep the derived fields consistent.
func (cfg *ExperimentConfig) ApplyNaming(n naming.Namer) {
	short := naming.FallbackShortName
	if n != nil {
		short = n.ShortName(cfg.Model.ModelName)
	}

	base := fmt.Sprintf("%s-%s-qlora", short, cfg.Method)

	cfg.Training.OutputDir = "./checkpoints/" + base
	cfg.HF.HubModelID = base
	cfg.WandbRunName = base
}
