package cost

import (
	"errors"
	"fmt"
)

// ErrNegativeInput reports a negative parameter or step count passed
// to the cost model.
var ErrNegativeInput = errors.New("negative input")

// ShiftEvaluations returns the total number of oracle evaluations a
// gradient-descent run needs under the parameter-shift strategy:
// one full gradient per step, each gradient costing 2·nParams calls.
//
// Assumes one gradient evaluation per optimization step and
// single-batch training.
func ShiftEvaluations(nParams, nSteps int) (int, error) {
	if nParams < 0 {
		return 0, fmt.Errorf("%w: nParams = %d", ErrNegativeInput, nParams)
	}
	if nSteps < 0 {
		return 0, fmt.Errorf("%w: nSteps = %d", ErrNegativeInput, nSteps)
	}
	return 2 * nParams * nSteps, nil
}

// BackpropEvaluations returns the oracle budget of a reverse-mode
// (backpropagation) baseline, which costs one evaluation per step
// regardless of parameter count.
func BackpropEvaluations(nSteps int) (int, error) {
	if nSteps < 0 {
		return 0, fmt.Errorf("%w: nSteps = %d", ErrNegativeInput, nSteps)
	}
	return nSteps, nil
}

// BatchedShiftEvaluations is ShiftEvaluations with an explicit batch
// multiplier: every sample in the batch pays the full 2·nParams cost
// per step. Batching is never inferred; callers opt in here.
func BatchedShiftEvaluations(nParams, nSteps, batchSize int) (int, error) {
	if batchSize < 0 {
		return 0, fmt.Errorf("%w: batchSize = %d", ErrNegativeInput, batchSize)
	}
	n, err := ShiftEvaluations(nParams, nSteps)
	if err != nil {
		return 0, err
	}
	return n * batchSize, nil
}
