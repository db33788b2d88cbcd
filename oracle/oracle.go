// Copyright 2026 QGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package oracle defines the boundary to the external expectation
// evaluator.
//
// QGrad never simulates circuits itself: the device, simulator, or
// cloud service that produces expectation values is supplied by the
// caller as an Oracle function. The package also provides Counter, an
// explicit call-count handle for tracking how many circuit executions
// a computation consumed.
//
// Example:
//
//	counter := oracle.NewCounter(expectation)
//	grad, err := shift.Gradient(counter.Oracle(), params, inputs)
//	fmt.Println("circuit executions:", counter.Calls())
package oracle

import (
	"github.com/qgrad-ml/qgrad/internal/oracle"
)

// Oracle is the black-box expectation evaluator: it runs a fixed
// parametrized circuit with the given parameters on fixed input data
// and returns the measured expectation value.
type Oracle = oracle.Oracle

// Counter wraps an Oracle and counts how many times it is invoked.
// Safe for concurrent use.
type Counter = oracle.Counter

// NewCounter wraps fn in a call counter.
func NewCounter(fn Oracle) *Counter {
	return oracle.NewCounter(fn)
}
