// Copyright 2026 QGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense parameter and gradient tensors used
// throughout QGrad.
//
// # Overview
//
// A parametrized circuit with L layers and W wires is described by a
// parameter tensor of shape (L, W): one rotation angle per layer and
// wire. Gradients computed for such a tensor always have the identical
// shape. Tensors are:
//   - Dense float64, row-major
//   - Caller-owned, with deep-copy Clone semantics
//   - Validated at construction (ragged row input fails with *ShapeError)
//
// # Basic Usage
//
//	params, err := tensor.FromRows([][]float64{
//	    {0.1, 0.2},
//	    {0.3, 0.4},
//	    {0.5, 0.6},
//	})
//	if err != nil {
//	    // rows were ragged or empty
//	}
//	theta := params.At(1, 0)   // layer 1, wire 0
//	copy := params.Clone()     // shares no storage with params
//
// # Ownership
//
// Tensors are created fresh per gradient computation and discarded when
// the caller has consumed the result. Clone never aliases: a write to
// the copy is never observable through the original. Data exposes the
// backing slice directly for callers that need zero-copy reads.
package tensor
