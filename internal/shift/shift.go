package shift

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/qgrad-ml/qgrad/internal/oracle"
	"github.com/qgrad-ml/qgrad/internal/tensor"
)

// Config holds configuration for a gradient computation.
type Config struct {
	// Workers bounds how many oracle evaluations run concurrently.
	// 0 or 1 evaluates sequentially. The oracle must be safe for
	// concurrent invocation when Workers > 1.
	Workers int

	// Rule overrides the shift rule. The zero value selects DefaultRule.
	Rule Rule
}

// DefaultConfig returns a parallel configuration sized to the CPU count,
// for oracles that are cheap in-process functions. Oracles backed by a
// shared device usually want an explicit, smaller bound.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

func (c Config) rule() Rule {
	if c.Rule == (Rule{}) {
		return DefaultRule
	}
	return c.Rule
}

// Gradient computes the exact gradient of the oracle's expectation
// value with respect to every entry of params, using the parameter-shift
// rule with the default ±π/2 shift.
//
// Each entry costs two oracle evaluations, 2·L·W in total for an (L, W)
// parameter tensor. Every evaluation sees a private copy of params with
// exactly one entry shifted; the caller's tensor and data are never
// mutated. The first oracle error aborts the computation and is returned
// unmodified, with no partial gradient.
func Gradient(fn oracle.Oracle, params *tensor.Tensor, data []float64) (*tensor.Tensor, error) {
	return GradientContext(context.Background(), fn, params, data, Config{})
}

// GradientContext is Gradient with caller-controlled cancellation,
// concurrency, and shift rule.
//
// With Config.Workers > 1 the per-entry evaluations are fanned out
// over a bounded worker group. Results land in disjoint entries of the
// output tensor, and the gradient is returned only once every entry
// has one. On error or context cancellation the whole gradient is
// discarded.
func GradientContext(ctx context.Context, fn oracle.Oracle, params *tensor.Tensor, data []float64, cfg Config) (*tensor.Tensor, error) {
	if params == nil || params.NumElements() == 0 {
		return nil, &tensor.ShapeError{Op: "Gradient", Details: "nil or empty parameter tensor"}
	}

	grad, err := tensor.New(params.Shape())
	if err != nil {
		return nil, err
	}
	rule := cfg.rule()

	if cfg.Workers <= 1 {
		for idx := 0; idx < params.NumElements(); idx++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v, err := shiftedPair(fn, params, data, idx, rule)
			if err != nil {
				return nil, err
			}
			grad.SetIndex(idx, v)
		}
		return grad, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for idx := 0; idx < params.NumElements(); idx++ {
		idx := idx
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			v, err := shiftedPair(fn, params, data, idx, rule)
			if err != nil {
				return err
			}
			// Disjoint flat indices, no two goroutines share an entry.
			grad.SetIndex(idx, v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grad, nil
}

// shiftedPair evaluates the two shifted circuits for one parameter
// entry and combines them into the derivative estimate.
func shiftedPair(fn oracle.Oracle, params *tensor.Tensor, data []float64, idx int, rule Rule) (float64, error) {
	base := params.AtIndex(idx)

	up := params.Clone()
	up.SetIndex(idx, base+rule.Shift)
	fPlus, err := fn(data, up)
	if err != nil {
		return 0, err
	}

	down := params.Clone()
	down.SetIndex(idx, base-rule.Shift)
	fMinus, err := fn(data, down)
	if err != nil {
		return 0, err
	}

	return rule.Scale * (fPlus - fMinus), nil
}
