// Package config declares the typed configuration for a policy-gradient
// fine-tuning experiment and assembles it from defaults and environment
// variables.
//
// Configuration is merged from sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (HF_TOKEN, WANDB_PROJECT, METHOD)
//  2. Built-in defaults
//
// The main entry point is [Load], which returns a merged and validated
// [ExperimentConfig] with the derived naming fields recomputed. Each
// configuration group is also independently constructible via its
// Default* constructor for callers that build configuration
// programmatically.
package config
