// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn   ("0","1","2",...)
//   • rng           = nil           (pure unless seeded)
//   • weightFn      = DefaultWeightFn (constant 1)
//   • bidirectional = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn          IDFn
	rng           *rand.Rand // nil means no randomness
	weightFn      WeightFn
	bidirectional bool
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
