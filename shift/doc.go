// Copyright 2026 QGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shift computes exact gradients of black-box quantum
// expectation oracles via the parameter-shift rule.
//
// # Overview
//
// For circuits built from gates whose generator has eigenvalues ±1/2
// (the Pauli rotations RX, RY, RZ), the derivative of the expectation
// value with respect to a gate parameter θ is exactly
//
//	dE/dθ = (E(θ + π/2) - E(θ - π/2)) / 2
//
// The rule needs nothing but forward evaluations of the circuit, so it
// works on real hardware where reverse-mode differentiation cannot see
// inside the device. The price is evaluation count: a full gradient of
// an (L, W) parameter tensor costs exactly 2·L·W circuit executions,
// against one execution per step for backpropagation on a simulator.
// Package cost models that trade-off.
//
// # Basic Usage
//
//	params, _ := tensor.FromRows([][]float64{
//	    {0.1, 0.2},
//	    {0.3, 0.4},
//	})
//	grad, err := shift.Gradient(expectation, params, inputs)
//
// # Parallel Evaluation
//
// The per-entry evaluations are mutually independent: each sees its own
// private copy of the parameter tensor. GradientContext fans them out
// over a bounded worker group when the oracle is safe for concurrent
// invocation:
//
//	grad, err := shift.GradientContext(ctx, expectation, params, inputs,
//	    shift.Config{Workers: 8})
//
// # Failure Semantics
//
// The first oracle error aborts the computation and is returned to the
// caller unmodified. No partial gradient is ever returned: a single
// failed evaluation invalidates the whole result.
package shift
