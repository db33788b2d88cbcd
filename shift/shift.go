// Copyright 2026 QGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shift

import (
	"context"

	"github.com/qgrad-ml/qgrad/internal/oracle"
	"github.com/qgrad-ml/qgrad/internal/shift"
	"github.com/qgrad-ml/qgrad/internal/tensor"
)

// Rule holds the coefficients of a two-term parameter-shift rule.
type Rule = shift.Rule

// DefaultRule is the standard ±π/2 shift with scale 1/2, exact for
// generators with eigenvalues ±1/2.
var DefaultRule = shift.DefaultRule

// RuleForShift returns the exact two-term rule for an arbitrary
// non-degenerate shift s, with scale 1/(2·sin s).
func RuleForShift(s float64) (Rule, error) {
	return shift.RuleForShift(s)
}

// Config holds configuration for a gradient computation.
type Config = shift.Config

// DefaultConfig returns a parallel configuration sized to the CPU count,
// for oracles that are cheap in-process functions.
func DefaultConfig() Config {
	return shift.DefaultConfig()
}

// Gradient computes the exact gradient of the oracle's expectation value
// with respect to every entry of params, at a cost of two oracle
// evaluations per entry.
//
// Example:
//
//	grad, err := shift.Gradient(expectation, params, inputs)
func Gradient(fn oracle.Oracle, params *tensor.Tensor, data []float64) (*tensor.Tensor, error) {
	return shift.Gradient(fn, params, data)
}

// GradientContext is Gradient with caller-controlled cancellation,
// concurrency, and shift rule.
//
// Example:
//
//	grad, err := shift.GradientContext(ctx, expectation, params, inputs,
//	    shift.Config{Workers: 8})
func GradientContext(ctx context.Context, fn oracle.Oracle, params *tensor.Tensor, data []float64, cfg Config) (*tensor.Tensor, error) {
	return shift.GradientContext(ctx, fn, params, data, cfg)
}
