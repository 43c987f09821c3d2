// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package naming derives short model names used in experiment artifact
// naming (checkpoint directories, hub model ids, run names).
//
// The training driver injects a [Namer] into the config loader; callers
// that do not care about model-sensitive names fall back to a fixed
// short name via [Fallback].
package naming

//go:generate mockgen -source=naming.go -destination=../mock/namer_mock.go -package=mock

import (
	"regexp"
	"strings"
)

// FallbackShortName is the short name used when no namer is available.
const FallbackShortName = "codellama-7b"

// Namer produces a short, filesystem- and hub-safe name for a model
// identified by its full repository name (e.g. "org/Model-7b-variant").
type Namer interface {
	ShortName(modelName string) string
}

// Func adapts an ordinary function to the [Namer] interface.
type Func func(modelName string) string

// ShortName calls f.
func (f Func) ShortName(modelName string) string {
	return f(modelName)
}

// Fallback returns a Namer that yields [FallbackShortName] for every
// input, regardless of the model name.
func Fallback() Namer {
	return Func(func(string) string {
		return FallbackShortName
	})
}

// Default returns a Namer backed by [ShortName].
func Default() Namer {
	return Func(ShortName)
}

// sizeToken matches a parameter-count token such as "7b" or "6.7b".
var sizeToken = regexp.MustCompile(`^\d+(\.\d+)?b$`)

// ShortName extracts a short model name from a full model repository name.
// The organization prefix is stripped, the rest is lower-cased, and
// everything after the parameter-size token is dropped:
//
//	"codellama/CodeLlama-7b-Python-hf"     → "codellama-7b"
//	"deepseek-ai/deepseek-coder-6.7b-base" → "deepseek-coder-6.7b"
//
// Names without a size token are returned whole (lower-cased); an empty
// name yields [FallbackShortName].
func ShortName(modelName string) string {
	name := modelName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FallbackShortName
	}

	parts := strings.Split(name, "-")
	for i, part := range parts {
		if sizeToken.MatchString(part) {
			return strings.Join(parts[:i+1], "-")
		}
	}
	return name
}
