package oracle

import (
	"sync/atomic"

	"github.com/qgrad-ml/qgrad/internal/tensor"
)

// Oracle is the black-box expectation evaluator: it runs a fixed
// parametrized circuit with the given parameters on fixed input data
// and returns the measured expectation value.
//
// An Oracle must not mutate data or params. It is assumed
// deterministic for a fixed parameter tensor (shot noise aside).
// Errors it returns are surfaced to callers unmodified.
type Oracle func(data []float64, params *tensor.Tensor) (float64, error)

// Counter wraps an Oracle and counts how many times it is invoked.
//
// It exists so that callers can account for circuit executions without
// relying on hidden device state: the counter is an explicit handle the
// caller owns. Safe for concurrent use.
type Counter struct {
	fn    Oracle
	calls atomic.Int64
}

// NewCounter wraps fn in a call counter.
func NewCounter(fn Oracle) *Counter {
	return &Counter{fn: fn}
}

// Oracle returns the counted oracle. Each invocation increments the
// counter before delegating to the wrapped function.
func (c *Counter) Oracle() Oracle {
	return func(data []float64, params *tensor.Tensor) (float64, error) {
		c.calls.Add(1)
		return c.fn(data, params)
	}
}

// Calls returns the number of invocations so far.
func (c *Counter) Calls() int {
	return int(c.calls.Load())
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	c.calls.Store(0)
}
