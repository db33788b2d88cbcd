// Copyright 2026 QGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cost models the oracle-call budget of gradient-based
// optimization under the parameter-shift strategy.
//
// Every optimization step needs one full gradient, and each gradient
// costs two circuit executions per parameter, so a run of nSteps steps
// over nParams parameters executes 2·nParams·nSteps circuits. The
// reverse-mode baseline (backpropagation on a simulator) costs one
// execution per step regardless of parameter count. The functions here
// make that comparison explicit:
//
//	shiftBudget, _ := cost.ShiftEvaluations(13, 13)  // 338
//	backprop, _ := cost.BackpropEvaluations(13)      // 13
package cost

import (
	"github.com/qgrad-ml/qgrad/internal/cost"
)

// ErrNegativeInput reports a negative parameter or step count.
var ErrNegativeInput = cost.ErrNegativeInput

// ShiftEvaluations returns 2·nParams·nSteps, the total oracle budget of
// a parameter-shift gradient-descent run. Assumes one gradient per step
// and single-batch training.
func ShiftEvaluations(nParams, nSteps int) (int, error) {
	return cost.ShiftEvaluations(nParams, nSteps)
}

// BackpropEvaluations returns nSteps, the budget of the one-call-per-step
// reverse-mode baseline.
func BackpropEvaluations(nSteps int) (int, error) {
	return cost.BackpropEvaluations(nSteps)
}

// BatchedShiftEvaluations is ShiftEvaluations with an explicit batch
// multiplier. Batching is never inferred; callers opt in here.
func BatchedShiftEvaluations(nParams, nSteps, batchSize int) (int, error) {
	return cost.BatchedShiftEvaluations(nParams, nSteps, batchSize)
}
